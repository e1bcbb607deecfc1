package install

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=install_test

type contractClient interface {
	Call(ctx context.Context, req point.CallRequest) (*point.Response, error)
	Send(ctx context.Context, req point.CallRequest) (*point.Response, error)
}

// Repo wraps the blog factory contract.
type Repo struct {
	contract contractClient
}

func NewRepo(contract contractClient) *Repo {
	return &Repo{
		contract: contract,
	}
}

func (r *Repo) IsCreated(ctx context.Context) (bool, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.install.isCreated")
	defer span.End()

	resp, err := r.contract.Call(ctx, point.NewBlogFactoryCall(point.IsBlogCreated))
	if err != nil {
		return false, fmt.Errorf("is blog created: %w", err)
	}

	var created bool
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &created); err != nil {
			return false, fmt.Errorf("is blog created: decode: %w", err)
		}
	}
	return created, nil
}

func (r *Repo) Create(ctx context.Context) error {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.install.create")
	defer span.End()

	if _, err := r.contract.Send(ctx, point.NewBlogFactoryCall(point.CreateBlog)); err != nil {
		return fmt.Errorf("create blog: %w", err)
	}
	return nil
}

type StatusResponse struct {
	Created bool `json:"created"`
}

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, guards middleware.RouteGuards) {
	router.HandleFunc("/install", handler.handleStatus).Methods("GET").Name("install-status")
	router.Handle("/install", guards.OwnerSend(handler.handleCreate)).Methods("POST", "OPTIONS").Name("install")
}

func (handler *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	created, err := handler.repo.IsCreated(r.Context())
	if err != nil {
		log.Errorf("install status: %s", err)
		http.Error(w, "failed to check blog installation", point.HTTPStatus(err))
		return
	}
	pkg.WriteJSON(w, StatusResponse{Created: created}, http.StatusOK)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	created, err := handler.repo.IsCreated(ctx)
	if err != nil {
		log.Errorf("install: %s", err)
		http.Error(w, "failed to check blog installation", point.HTTPStatus(err))
		return
	}
	if created {
		pkg.WriteJSON(w, StatusResponse{Created: true}, http.StatusOK)
		return
	}

	if err := handler.repo.Create(ctx); err != nil {
		log.Errorf("install: %s", err)
		http.Error(w, "failed to create blog", point.HTTPStatus(err))
		return
	}

	log.Infoln("blog created through the blog factory")
	pkg.WriteJSON(w, StatusResponse{Created: true}, http.StatusCreated)
}
