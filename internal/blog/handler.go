package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/comment"
	"github.com/pointnetwork/PointBlogSoftware/internal/like"
	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/profile"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=blog_test

const maxCoverImageBytes = 10 << 20

var ErrCoverNotImage = errors.New("cover image is not an image")

type appState interface {
	Blogs(ctx context.Context) ([]Post, error)
	RefreshBlogs(ctx context.Context) ([]Post, error)
	DeletedBlogs(ctx context.Context) ([]Post, error)
	DataFromStorage(ctx context.Context, hash string) (*Document, error)
	IsOwner(ctx context.Context) (bool, error)
	VisitorAddress(ctx context.Context) (common.Address, error)
	OwnerIdentity(ctx context.Context) (string, error)
	UserInfo(ctx context.Context) (*profile.UserInfo, error)
}

type blogRepo interface {
	Create(ctx context.Context, doc Document) (string, error)
	Edit(ctx context.Context, id string, doc Document) (string, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) error
	Unpublish(ctx context.Context, id string) error
	File(ctx context.Context, hash string) (*point.File, error)
	UploadFile(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

type likesRepo interface {
	Summary(ctx context.Context, postID string, visitor common.Address) (*like.Summary, error)
}

type commentsRepo interface {
	List(ctx context.Context, postID string) ([]comment.Comment, error)
}

type ListView struct {
	Blogs         []Post            `json:"blogs"`
	OwnerIdentity string            `json:"owner_identity"`
	Profile       *profile.UserInfo `json:"profile"`
}

type AdminView struct {
	Filter       Filter            `json:"filter"`
	Blogs        []Post            `json:"blogs"`
	Deleted      bool              `json:"deleted"`
	EmptyMessage string            `json:"empty_message,omitempty"`
	Profile      *profile.UserInfo `json:"profile"`
}

type DetailView struct {
	Blog       Post              `json:"blog"`
	CoverImage string            `json:"cover_image,omitempty"`
	Deleted    bool              `json:"deleted"`
	IsOwner    bool              `json:"is_owner"`
	Iterations []Iteration       `json:"iterations,omitempty"`
	Likes      *like.Summary     `json:"likes,omitempty"`
	Comments   []comment.Comment `json:"comments"`
}

type IterationView struct {
	Iteration  Iteration `json:"iteration"`
	Document   Document  `json:"document"`
	CoverImage string    `json:"cover_image,omitempty"`
}

type PostResponse struct {
	Blog Post `json:"blog"`
}

type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

type blogRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	CoverImage string `json:"coverImage"`
	Publish    bool   `json:"publish"`

	cover *coverUpload
}

type coverUpload struct {
	name        string
	contentType string
	data        []byte
}

type Handler struct {
	state    appState
	repo     blogRepo
	likes    likesRepo
	comments commentsRepo
	now      func() time.Time
}

func NewHandler(
	state appState,
	repo blogRepo,
	likes likesRepo,
	comments commentsRepo,
) *Handler {
	return &Handler{
		state:    state,
		repo:     repo,
		likes:    likes,
		comments: comments,
		now:      time.Now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, guards middleware.RouteGuards) {
	router.HandleFunc("/blogs", handler.handleList).Methods("GET").Name("list-blogs")
	router.Handle("/admin", guards.Owner(handler.handleAdmin)).Methods("GET").Name("admin")
	router.HandleFunc("/blog", handler.handleDetail).Methods("GET").Name("blog-detail")
	router.Handle("/blog/iteration", guards.Owner(handler.handleIteration)).Methods("GET").Name("blog-iteration")

	router.Handle("/blog", guards.OwnerSend(handler.handleCreate)).Methods("POST", "OPTIONS").Name("create-blog")
	router.Handle("/blog/{id:[0-9]+}", guards.OwnerSend(handler.handleEdit)).Methods("PUT", "OPTIONS").Name("edit-blog")
	router.Handle("/blog/{id:[0-9]+}", guards.OwnerSend(handler.handleDelete)).Methods("DELETE").Name("delete-blog")
	router.Handle("/blog/{id:[0-9]+}/publish", guards.OwnerSend(handler.handlePublish)).Methods("PATCH", "OPTIONS").Name("publish-blog")
	router.Handle("/blog/{id:[0-9]+}/unpublish", guards.OwnerSend(handler.handleUnpublish)).Methods("PATCH", "OPTIONS").Name("unpublish-blog")
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.list")
	defer span.End()

	posts, err := handler.state.Blogs(ctx)
	if err != nil {
		log.Errorf("list blogs: %s", err)
		http.Error(w, "failed to get blogs", point.HTTPStatus(err))
		return
	}

	ownerIdentity, err := handler.state.OwnerIdentity(ctx)
	if err != nil {
		log.Errorf("list blogs, owner identity: %s", err)
		http.Error(w, "failed to resolve blog owner", point.HTTPStatus(err))
		return
	}

	info, err := handler.state.UserInfo(ctx)
	if err != nil {
		log.Errorf("list blogs, user info: %s", err)
		http.Error(w, "failed to get profile", point.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, ListView{
		Blogs:         FilterPosts(posts, FilterPublished),
		OwnerIdentity: ownerIdentity,
		Profile:       info,
	}, http.StatusOK)
}

func (handler *Handler) handleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.admin")
	defer span.End()

	filter := ParseFilter(r.URL.Query().Get("filter"))

	var (
		posts []Post
		err   error
	)
	if filter == FilterTrash {
		// trash is never served from the cached list
		posts, err = handler.state.DeletedBlogs(ctx)
	} else {
		posts, err = handler.state.Blogs(ctx)
		posts = FilterPosts(posts, filter)
	}
	if err != nil {
		log.Errorf("admin view [%s]: %s", filter, err)
		http.Error(w, "failed to get blogs", point.HTTPStatus(err))
		return
	}
	if posts == nil {
		posts = []Post{}
	}

	info, err := handler.state.UserInfo(ctx)
	if err != nil {
		log.Errorf("admin view, user info: %s", err)
		http.Error(w, "failed to get profile", point.HTTPStatus(err))
		return
	}

	view := AdminView{
		Filter:  filter,
		Blogs:   posts,
		Deleted: filter == FilterTrash,
		Profile: info,
	}
	if len(posts) == 0 {
		view.EmptyMessage = filter.EmptyMessage()
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) handleDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.detail")
	defer span.End()

	hash := r.URL.Query().Get("id")
	if hash == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	deleted := parseBool(r.URL.Query().Get("deleted"))

	post, err := handler.findPost(ctx, hash, deleted)
	if err != nil {
		handler.writeFindErr(w, err)
		return
	}

	isOwner, err := handler.state.IsOwner(ctx)
	if err != nil {
		log.Errorf("blog detail, owner check: %s", err)
		http.Error(w, "failed to resolve blog owner", point.HTTPStatus(err))
		return
	}

	view := DetailView{
		Blog:    post,
		Deleted: deleted,
		IsOwner: isOwner,
	}

	if view.CoverImage, err = handler.coverDataURL(ctx, post.CoverImage); err != nil {
		log.Errorf("blog detail %s, cover image: %s", post.ID, err)
		http.Error(w, "failed to get cover image", point.HTTPStatus(err))
		return
	}

	if isOwner {
		view.Iterations = Iterations(post)
	}

	// likes and comments are fetched only after the base record resolved
	if !deleted {
		visitor, err := handler.state.VisitorAddress(ctx)
		if err != nil {
			log.Errorf("blog detail, visitor: %s", err)
			http.Error(w, "failed to resolve visitor", point.HTTPStatus(err))
			return
		}
		if view.Likes, err = handler.likes.Summary(ctx, post.ID, visitor); err != nil {
			log.Errorf("blog detail %s, likes: %s", post.ID, err)
			http.Error(w, "failed to get likes", point.HTTPStatus(err))
			return
		}
	}

	if view.Comments, err = handler.comments.List(ctx, post.ID); err != nil {
		log.Errorf("blog detail %s, comments: %s", post.ID, err)
		http.Error(w, "failed to get comments", point.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, view, http.StatusOK)
}

func (handler *Handler) handleIteration(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.iteration")
	defer span.End()

	hash := r.URL.Query().Get("id")
	iterationHash := r.URL.Query().Get("iteration")
	if hash == "" || iterationHash == "" {
		http.Error(w, "error, id or iteration empty", http.StatusBadRequest)
		return
	}

	post, err := handler.findPost(ctx, hash, parseBool(r.URL.Query().Get("deleted")))
	if err != nil {
		handler.writeFindErr(w, err)
		return
	}

	iteration, ok := FindIteration(post, iterationHash)
	if !ok {
		http.Error(w, "no such iteration of this blog post", http.StatusNotFound)
		return
	}

	doc, err := handler.state.DataFromStorage(ctx, iterationHash)
	if err != nil {
		log.Errorf("blog iteration %s: %s", iterationHash, err)
		http.Error(w, "failed to get blog iteration", point.HTTPStatus(err))
		return
	}

	coverImage, err := handler.coverDataURL(ctx, doc.CoverImage)
	if err != nil {
		log.Errorf("blog iteration %s, cover image: %s", iterationHash, err)
		http.Error(w, "failed to get cover image", point.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, IterationView{
		Iteration:  iteration,
		Document:   *doc,
		CoverImage: coverImage,
	}, http.StatusOK)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.create")
	defer span.End()

	req, err := parseBlogRequest(r)
	if err != nil {
		log.Tracef("new blog, parse request: %s", err)
		http.Error(w, badRequestMessage(err, "add blog failed"), http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Content == "" {
		http.Error(w, "error, title or content empty", http.StatusBadRequest)
		return
	}

	doc, err := handler.buildDocument(ctx, req, "")
	if err != nil {
		log.Errorf("new blog, cover image: %s", err)
		http.Error(w, "failed to upload cover image", point.HTTPStatus(err))
		return
	}

	hash, err := handler.repo.Create(ctx, doc)
	if err != nil {
		handler.writeMutationErr(w, "add new blog", err)
		return
	}

	posts, err := handler.state.RefreshBlogs(ctx)
	if err != nil {
		handler.writeMutationErr(w, "refresh blogs after create", err)
		return
	}

	post, found := FindByStorageHash(posts, hash)
	if !found {
		log.Errorf("new blog %s missing from the refreshed list", hash)
		http.Error(w, "blog created but not listed yet", http.StatusBadGateway)
		return
	}

	if req.Publish {
		if err := handler.repo.Publish(ctx, post.ID); err != nil {
			handler.writeMutationErr(w, "publish new blog", err)
			return
		}
		if post, err = handler.refreshAndFind(ctx, post.ID); err != nil {
			handler.writeMutationErr(w, "refresh blogs after publish", err)
			return
		}
	}

	log.Tracef("new blog %s: [%s] added", post.ID, post.Title)
	pkg.WriteJSON(w, PostResponse{Blog: post}, http.StatusCreated)
}

func (handler *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.edit")
	defer span.End()

	id := mux.Vars(r)["id"]

	req, err := parseBlogRequest(r)
	if err != nil {
		log.Tracef("edit blog, parse request: %s", err)
		http.Error(w, badRequestMessage(err, "edit blog failed"), http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Content == "" {
		http.Error(w, "error, title or content empty", http.StatusBadRequest)
		return
	}

	posts, err := handler.state.Blogs(ctx)
	if err != nil {
		handler.writeMutationErr(w, "edit blog", err)
		return
	}
	current, found := FindByID(posts, id)
	if !found {
		http.Error(w, NotFoundMessage, http.StatusNotFound)
		return
	}

	doc, err := handler.buildDocument(ctx, req, current.CoverImage)
	if err != nil {
		log.Errorf("edit blog, cover image: %s", err)
		http.Error(w, "failed to upload cover image", point.HTTPStatus(err))
		return
	}

	if _, err := handler.repo.Edit(ctx, id, doc); err != nil {
		handler.writeMutationErr(w, "edit blog", err)
		return
	}

	post, err := handler.refreshAndFind(ctx, id)
	if err != nil {
		handler.writeMutationErr(w, "refresh blogs after edit", err)
		return
	}

	pkg.WriteJSON(w, PostResponse{Blog: post}, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.delete")
	defer span.End()

	id := mux.Vars(r)["id"]
	if err := handler.repo.Delete(ctx, id); err != nil {
		handler.writeMutationErr(w, "delete blog "+id, err)
		return
	}

	if _, err := handler.state.RefreshBlogs(ctx); err != nil {
		handler.writeMutationErr(w, "refresh blogs after delete", err)
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	handler.togglePublished(w, r, true)
}

func (handler *Handler) handleUnpublish(w http.ResponseWriter, r *http.Request) {
	handler.togglePublished(w, r, false)
}

func (handler *Handler) togglePublished(w http.ResponseWriter, r *http.Request, publish bool) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.blog.togglePublished")
	defer span.End()

	id := mux.Vars(r)["id"]
	op := handler.repo.Unpublish
	if publish {
		op = handler.repo.Publish
	}
	if err := op(ctx, id); err != nil {
		handler.writeMutationErr(w, fmt.Sprintf("set blog %s published=%t", id, publish), err)
		return
	}

	post, err := handler.refreshAndFind(ctx, id)
	if err != nil {
		handler.writeMutationErr(w, "refresh blogs after publish toggle", err)
		return
	}

	pkg.WriteJSON(w, PostResponse{Blog: post}, http.StatusOK)
}

// findPost resolves a post by storage hash from the live list, or from a fresh fetch of
// the deleted list.
func (handler *Handler) findPost(ctx context.Context, hash string, deleted bool) (Post, error) {
	var (
		posts []Post
		err   error
	)
	if deleted {
		posts, err = handler.state.DeletedBlogs(ctx)
	} else {
		posts, err = handler.state.Blogs(ctx)
	}
	if err != nil {
		return Post{}, err
	}

	post, found := FindByStorageHash(posts, hash)
	if !found {
		return Post{}, ErrBlogNotFound
	}
	return post, nil
}

func (handler *Handler) refreshAndFind(ctx context.Context, id string) (Post, error) {
	posts, err := handler.state.RefreshBlogs(ctx)
	if err != nil {
		return Post{}, err
	}
	post, found := FindByID(posts, id)
	if !found {
		return Post{}, ErrBlogNotFound
	}
	return post, nil
}

func (handler *Handler) coverDataURL(ctx context.Context, hash string) (string, error) {
	if hash == "" {
		return "", nil
	}
	f, err := handler.repo.File(ctx, hash)
	if err != nil {
		return "", err
	}
	return f.DataURL(), nil
}

// buildDocument uploads a new cover image if one came with the request. Without one, the
// cover hash from the request or the current cover is kept.
func (handler *Handler) buildDocument(ctx context.Context, req *blogRequest, currentCover string) (Document, error) {
	doc := Document{
		Title:       req.Title,
		Content:     req.Content,
		CoverImage:  currentCover,
		PublishDate: handler.now().UTC().Format(time.DateOnly),
	}
	if req.CoverImage != "" {
		doc.CoverImage = req.CoverImage
	}

	if req.cover != nil {
		hash, err := handler.repo.UploadFile(ctx, req.cover.name, req.cover.contentType, bytes.NewReader(req.cover.data))
		if err != nil {
			return Document{}, err
		}
		doc.CoverImage = hash
	}
	return doc, nil
}

func (handler *Handler) writeFindErr(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrBlogNotFound) {
		http.Error(w, NotFoundMessage, http.StatusNotFound)
		return
	}
	log.Errorf("find blog: %s", err)
	http.Error(w, "failed to get blogs", point.HTTPStatus(err))
}

func (handler *Handler) writeMutationErr(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrTitleOrContentEmpty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrBlogNotFound):
		http.Error(w, NotFoundMessage, http.StatusNotFound)
	default:
		log.Errorf("%s failed: %s", op, err)
		http.Error(w, op+" failed", point.HTTPStatus(err))
	}
}

func parseBlogRequest(r *http.Request) (*blogRequest, error) {
	req := &blogRequest{}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, err
		}
		return req, nil
	}

	if err := r.ParseMultipartForm(maxCoverImageBytes); err != nil {
		return nil, err
	}
	req.Title = r.FormValue("title")
	req.Content = r.FormValue("content")
	req.CoverImage = r.FormValue("coverImage")
	req.Publish = parseBool(r.FormValue("publish"))

	file, header, err := r.FormFile("cover_image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return req, nil
	case err != nil:
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCoverImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxCoverImageBytes {
		return nil, errors.New("cover image too large")
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", ErrCoverNotImage, mt.String())
	}

	req.cover = &coverUpload{
		name:        header.Filename,
		contentType: mt.String(),
		data:        data,
	}
	return req, nil
}

func badRequestMessage(err error, fallback string) string {
	if errors.Is(err, ErrCoverNotImage) {
		return ErrCoverNotImage.Error()
	}
	return fallback
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
