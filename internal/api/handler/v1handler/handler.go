// Package v1handler implements the v1 JSON API on top of the page directory.
package v1handler

import (
	"context"
	"errors"
	"linkify/internal/pages"
	"linkify/pkg/assets"
	"linkify/pkg/logger"
	"linkify/pkg/serrors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Pages  pages.Service
	Assets assets.Store
	// MaxUploadBytes limits the size of an uploaded profile image.
	MaxUploadBytes int64
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register mounts the v1 routes on router. Routes under /v1/admin require a
// bearer token verified by sec.
func (h Handler) Register(router *mux.Router, sec *SecHandler) {
	router.HandleFunc("/assets/{key}", h.GetAsset).Methods(http.MethodGet, http.MethodHead)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/pages/{id}/availability", h.CheckAvailability).Methods(http.MethodGet)
	v1.HandleFunc("/pages/{id}", h.PublicPage).Methods(http.MethodGet)

	admin := v1.PathPrefix("/admin").Subrouter()
	admin.Use(sec.Middleware)

	admin.HandleFunc("/pages", h.CreatePage).Methods(http.MethodPost)
	admin.HandleFunc("/pages", h.ListPages).Methods(http.MethodGet)
	admin.HandleFunc("/pages/{id}", h.GetPage).Methods(http.MethodGet)
	admin.HandleFunc("/pages/{id}", h.RemovePage).Methods(http.MethodDelete)
	admin.HandleFunc("/pages/{id}/info", h.UpdatePageInfo).Methods(http.MethodPut)
	admin.HandleFunc("/pages/{id}/colors", h.UpdatePageColors).Methods(http.MethodPut)
	admin.HandleFunc("/pages/{id}/rename", h.RenamePage).Methods(http.MethodPost)
	admin.HandleFunc("/pages/{id}/image", h.UploadProfileImage).Methods(http.MethodPost)

	admin.HandleFunc("/pages/{id}/links", h.AddLink).Methods(http.MethodPost)
	admin.HandleFunc("/pages/{id}/links/order", h.ReorderLinks).Methods(http.MethodPut)
	admin.HandleFunc("/pages/{id}/links/{linkId}", h.UpdateLink).Methods(http.MethodPatch)
	admin.HandleFunc("/pages/{id}/links/{linkId}", h.RemoveLink).Methods(http.MethodDelete)

	admin.HandleFunc("/pages/{id}/social-links", h.AddSocialLink).Methods(http.MethodPost)
	admin.HandleFunc("/pages/{id}/social-links/order", h.ReorderSocialLinks).Methods(http.MethodPut)
	admin.HandleFunc("/pages/{id}/social-links/{linkId}", h.UpdateSocialLink).Methods(http.MethodPatch)
	admin.HandleFunc("/pages/{id}/social-links/{linkId}", h.RemoveSocialLink).Methods(http.MethodDelete)
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

// NewError maps err to a response. Semantic errors keep their message;
// dependency and internal failures are logged and answered with a generic one.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	var status int
	var message string
	switch kind {
	case serrors.ErrInvalidArgument:
		status, message = http.StatusBadRequest, "invalid argument"
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "resource not found"
	case serrors.ErrConflict:
		status, message = http.StatusConflict, "conflict"
	case serrors.ErrUnauthorized:
		status, message = http.StatusUnauthorized, "unauthorized"
	case serrors.ErrDependency:
		logger.Error(ctx, "dependency failure", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusServiceUnavailable,
			Response:   ErrorResponse{Code: kind.Error(), Message: "internal error"},
		}
	default:
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}
	logger.Debug(ctx, "request failed", zap.String("code", kind.Error()), zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: message},
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func (h Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	respondJSON(w, res.StatusCode, res.Response)
}

// decodeJSON reads a JSON body into dst rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrInvalidArgument, err, "invalid request body")
	}

	return nil
}
