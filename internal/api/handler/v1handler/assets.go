package v1handler

import (
	"errors"
	"fmt"
	"io"
	"linkify/pkg/assets"
	"linkify/pkg/serrors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

const (
	uploadField  = "file"
	cacheControl = "public, max-age=31536000, immutable"
)

// ImageResponse is the response of UploadProfileImage.
type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadProfileImage accepts a multipart form with the image in the "file"
// field and answers with its public URL.
func (h Handler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	if h.deps.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxUploadBytes)
	}

	file, _, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(w, r, serrors.With(serrors.ErrInvalidArgument,
				"image exceeds %d bytes", tooLarge.Limit))

			return
		}
		h.respondError(w, r, serrors.Wrap(serrors.ErrInvalidArgument, err, "missing %s form field", uploadField))

		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		h.respondError(w, r, serrors.Wrap(serrors.ErrInvalidArgument, err, "could not read image"))

		return
	}

	url, err := h.deps.Pages.UploadProfileImage(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), data)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, ImageResponse{ImageURL: url})
}

// GetAsset serves an uploaded object. Keys never change content so the
// response is cacheable forever.
func (h Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	obj, err := h.deps.Assets.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, assets.ErrNotFound) {
			h.respondError(w, r, serrors.With(serrors.ErrNotFound, "asset %q not found", key))

			return
		}
		h.respondError(w, r, serrors.Wrap(serrors.ErrDependency, err, "could not read asset"))

		return
	}

	contentType := obj.ContentType
	if !inlineType(contentType) {
		contentType = "application/octet-stream"
		w.Header().Set("Content-Disposition", "attachment")
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Length", strconv.Itoa(len(obj.Data)))
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("ETag", fmt.Sprintf("%q", key))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(obj.Data)
	}
}

// inlineType reports whether content of type ct may be rendered by the
// browser. Everything else is served as a download. SVG can carry scripts.
func inlineType(ct string) bool {
	return strings.HasPrefix(ct, "image/") && !strings.HasPrefix(ct, "image/svg")
}
