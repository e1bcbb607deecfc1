package like

import (
	"context"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=like_test

type likesRepo interface {
	Summary(ctx context.Context, postID string, visitor common.Address) (*Summary, error)
	Like(ctx context.Context, postID string) error
	Unlike(ctx context.Context, postID string) error
}

type visitorProvider interface {
	VisitorAddress(ctx context.Context) (common.Address, error)
}

type Handler struct {
	repo    likesRepo
	visitor visitorProvider
}

func NewHandler(repo likesRepo, visitor visitorProvider) *Handler {
	return &Handler{
		repo:    repo,
		visitor: visitor,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, guards middleware.RouteGuards) {
	router.HandleFunc("/blog/{id:[0-9]+}/likes", handler.handleGet).Methods("GET").Name("get-likes")
	router.Handle("/blog/{id:[0-9]+}/like", guards.Send(handler.handleLike)).Methods("POST", "OPTIONS").Name("like-blog")
	router.Handle("/blog/{id:[0-9]+}/unlike", guards.Send(handler.handleUnlike)).Methods("POST", "OPTIONS").Name("unlike-blog")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.like.get")
	defer span.End()

	handler.writeSummary(ctx, w, mux.Vars(r)["id"])
}

func (handler *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.like.like")
	defer span.End()

	postID := mux.Vars(r)["id"]
	if err := handler.repo.Like(ctx, postID); err != nil {
		log.Errorf("like blog %s: %s", postID, err)
		http.Error(w, "like failed", point.HTTPStatus(err))
		return
	}

	handler.writeSummary(ctx, w, postID)
}

func (handler *Handler) handleUnlike(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.like.unlike")
	defer span.End()

	postID := mux.Vars(r)["id"]
	if err := handler.repo.Unlike(ctx, postID); err != nil {
		log.Errorf("unlike blog %s: %s", postID, err)
		http.Error(w, "unlike failed", point.HTTPStatus(err))
		return
	}

	handler.writeSummary(ctx, w, postID)
}

// writeSummary re-fetches the like list after a change, there is no optimistic update.
func (handler *Handler) writeSummary(ctx context.Context, w http.ResponseWriter, postID string) {
	visitor, err := handler.visitor.VisitorAddress(ctx)
	if err != nil {
		log.Errorf("likes for %s, resolve visitor: %s", postID, err)
		http.Error(w, "failed to resolve visitor", point.HTTPStatus(err))
		return
	}

	summary, err := handler.repo.Summary(ctx, postID, visitor)
	if err != nil {
		log.Errorf("likes for %s: %s", postID, err)
		http.Error(w, "failed to get likes", point.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}
