package profile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/pointnetwork/PointBlogSoftware/internal/middleware"
	"github.com/pointnetwork/PointBlogSoftware/internal/point"
	"github.com/pointnetwork/PointBlogSoftware/internal/telemetry/tracing"
	"github.com/pointnetwork/PointBlogSoftware/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=profile_test

const maxAvatarBytes = 5 << 20

type submitter interface {
	Submit(ctx context.Context, sub Submission) (*UserInfo, error)
	Submitting() bool
}

type userInfoProvider interface {
	UserInfo(ctx context.Context) (*UserInfo, error)
}

// View is the profile edit view.
type View struct {
	Avatar         string `json:"avatar"`
	About          string `json:"about"`
	AboutLength    int    `json:"about_length"`
	MaxAboutLength int    `json:"max_about_length"`
	CanSubmit      bool   `json:"can_submit"`
	Submitting     bool   `json:"submitting"`
}

func NewView(info *UserInfo, submitting bool) View {
	if info == nil {
		info = &UserInfo{}
	}
	return View{
		Avatar:         info.Avatar,
		About:          info.About,
		AboutLength:    AboutLength(info.About),
		MaxAboutLength: MaxAboutLength,
		CanSubmit:      info.Complete() && !submitting,
		Submitting:     submitting,
	}
}

type submitRequest struct {
	Avatar string `json:"avatar"`
	About  string `json:"about"`
}

type Handler struct {
	service submitter
	state   userInfoProvider
}

func NewHandler(service submitter, state userInfoProvider) *Handler {
	return &Handler{
		service: service,
		state:   state,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router, guards middleware.RouteGuards) {
	router.HandleFunc("/profile", handler.handleGet).Methods("GET").Name("get-profile")
	router.Handle("/profile", guards.OwnerSend(handler.handleCreate)).Methods("POST", "OPTIONS").Name("create-profile")
	router.Handle("/profile", guards.OwnerSend(handler.handleEdit)).Methods("PUT").Name("edit-profile")
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.get")
	defer span.End()

	info, err := handler.state.UserInfo(ctx)
	if err != nil {
		log.Errorf("get profile: %s", err)
		http.Error(w, "failed to get profile", point.HTTPStatus(err))
		return
	}

	pkg.WriteJSON(w, NewView(info, handler.service.Submitting()), http.StatusOK)
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	handler.submit(w, r, false)
}

func (handler *Handler) handleEdit(w http.ResponseWriter, r *http.Request) {
	handler.submit(w, r, true)
}

func (handler *Handler) submit(w http.ResponseWriter, r *http.Request, edit bool) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.profile.submit")
	defer span.End()

	req, err := parseSubmitRequest(r)
	if err != nil {
		log.Tracef("profile submit, parse request: %s", err)
		status := http.StatusBadRequest
		if !errors.Is(err, ErrAvatarNotImage) {
			err = errors.New("invalid profile request")
		}
		http.Error(w, err.Error(), status)
		return
	}

	// editing keeps the current avatar unless a new one is given
	if edit && req.Avatar == "" {
		current, err := handler.state.UserInfo(ctx)
		if err != nil {
			log.Errorf("edit profile, get current: %s", err)
			http.Error(w, "failed to get current profile", point.HTTPStatus(err))
			return
		}
		req.Avatar = current.Avatar
	}

	info, err := handler.service.Submit(ctx, Submission{
		Avatar: req.Avatar,
		About:  req.About,
	})
	switch {
	case errors.Is(err, ErrProfileIncomplete):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSubmissionInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		log.Errorf("profile submit: %s", err)
		http.Error(w, "failed to save profile", point.HTTPStatus(err))
		return
	}

	status := http.StatusCreated
	if edit {
		status = http.StatusOK
	}
	pkg.WriteJSON(w, NewView(info, handler.service.Submitting()), status)
}

// parseSubmitRequest reads a json body, or a multipart form with an "avatar" file and an
// "about" field.
func parseSubmitRequest(r *http.Request) (*submitRequest, error) {
	req := &submitRequest{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
			return nil, err
		}
		req.About = r.FormValue("about")

		file, _, err := r.FormFile("avatar")
		switch {
		case errors.Is(err, http.ErrMissingFile):
			return req, nil
		case err != nil:
			return nil, err
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
		if err != nil {
			return nil, err
		}
		if len(data) > maxAvatarBytes {
			return nil, errors.New("avatar too large")
		}
		if req.Avatar, err = AvatarDataURL(data); err != nil {
			return nil, err
		}
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return nil, err
	}
	avatar, err := NormalizeAvatar(req.Avatar)
	if err != nil {
		return nil, err
	}
	req.Avatar = avatar
	return req, nil
}
