package comment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=comment_test

type commentsRepo interface {
	List(ctx context.Context, postID string) ([]Comment, error)
	Add(ctx context.Context, postID, text string) error
	Edit(ctx context.Context, postID, commentID, text string) error
	Delete(ctx context.Context, postID, commentID string) error
}

type visitorProvider interface {
	VisitorAddress(ctx context.Context) (common.Address, error)
}

type ListResponse struct {
	Comments []Comment `json:"comments"`
}

type commentRequest struct {
	Comment string `json:"comment"`
}

type Handler struct {
	repo    commentsRepo
	visitor visitorProvider
}

func NewHandler(repo commentsRepo, visitor visitorProvider) *Handler {
	return &Handler{
		repo:    repo,
		visitor: visitor,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, guards middleware.RouteGuards) {
	router.HandleFunc("/blog/{id:[0-9]+}/comments", handler.handleList).Methods("GET").Name("list-comments")
	router.Handle("/blog/{id:[0-9]+}/comments", guards.Send(handler.handleAdd)).Methods("POST", "OPTIONS").Name("add-comment")
	router.Handle("/blog/{id:[0-9]+}/comments/{commentId:[0-9]+}", guards.Send(handler.handleEdit)).Methods("PUT", "OPTIONS").Name("edit-comment")
	router.Handle("/blog/{id:[0-9]+}/comments/{commentId:[0-9]+}", guards.Send(handler.handleDelete)).Methods("DELETE").Name("delete-comment")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comment.list")
	defer span.End()

	handler.writeList(ctx, w, mux.Vars(r)["id"], http.StatusOK)
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comment.add")
	defer span.End()

	postID := mux.Vars(r)["id"]
	text, ok := readCommentText(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Add(ctx, postID, text); err != nil {
		handler.writeErr(w, "add comment", err)
		return
	}

	handler.writeList(ctx, w, postID, http.StatusCreated)
}

func (handler *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comment.edit")
	defer span.End()

	vars := mux.Vars(r)
	postID, commentID := vars["id"], vars["commentId"]
	text, ok := readCommentText(w, r)
	if !ok {
		return
	}

	if err := handler.checkAuthor(ctx, postID, commentID); err != nil {
		handler.writeErr(w, "edit comment", err)
		return
	}

	if err := handler.repo.Edit(ctx, postID, commentID, text); err != nil {
		handler.writeErr(w, "edit comment", err)
		return
	}

	handler.writeList(ctx, w, postID, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.comment.delete")
	defer span.End()

	vars := mux.Vars(r)
	postID, commentID := vars["id"], vars["commentId"]

	if err := handler.checkAuthor(ctx, postID, commentID); err != nil {
		handler.writeErr(w, "delete comment", err)
		return
	}

	if err := handler.repo.Delete(ctx, postID, commentID); err != nil {
		handler.writeErr(w, "delete comment", err)
		return
	}

	handler.writeList(ctx, w, postID, http.StatusOK)
}

// checkAuthor makes sure the comment exists and was written by the visitor.
func (handler *Handler) checkAuthor(ctx context.Context, postID, commentID string) error {
	visitor, err := handler.visitor.VisitorAddress(ctx)
	if err != nil {
		return err
	}

	comments, err := handler.repo.List(ctx, postID)
	if err != nil {
		return err
	}

	c, found := Find(comments, commentID)
	if !found {
		return ErrCommentNotFound
	}
	if c.CommentedBy != visitor {
		return ErrNotAuthor
	}
	return nil
}

func (handler *Handler) writeList(ctx context.Context, w http.ResponseWriter, postID string, status int) {
	comments, err := handler.repo.List(ctx, postID)
	if err != nil {
		handler.writeErr(w, "list comments", err)
		return
	}
	pkg.WriteJSON(w, ListResponse{Comments: comments}, status)
}

func (handler *Handler) writeErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrCommentEmpty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrCommentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrNotAuthor):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", point.HTTPStatus(err))
	}
}

func readCommentText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req commentRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Tracef("comment, unmarshal json params: %s", err)
			http.Error(w, "invalid comment request", http.StatusBadRequest)
			return "", false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "parse form error", http.StatusBadRequest)
			return "", false
		}
		req.Comment = r.Form.Get("comment")
	}

	if strings.TrimSpace(req.Comment) == "" {
		http.Error(w, ErrCommentEmpty.Error(), http.StatusBadRequest)
		return "", false
	}
	return req.Comment, true
}
