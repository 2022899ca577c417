package v1handler

import (
	"linkify/internal/pages"
	"linkify/pkg/domain"
	"net/http"

	"github.com/gorilla/mux"
)

// Availability is the response of CheckAvailability.
type Availability struct {
	ID        domain.PageID `json:"id"`
	Available bool          `json:"available"`
}

// RenameRequest is the body of RenamePage.
type RenameRequest struct {
	NewID domain.PageID `json:"newId"`
}

// PageList is the response of ListPages.
type PageList struct {
	Items []domain.Page `json:"items"`
}

func pageID(r *http.Request) domain.PageID {
	return domain.PageID(mux.Vars(r)["id"])
}

// CheckAvailability reports whether a page id is free.
func (h Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id := pageID(r)
	available, err := h.deps.Pages.CheckAvailability(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, Availability{ID: id, Available: available})
}

// PublicPage returns a page for public rendering.
func (h Handler) PublicPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.deps.Pages.PublicPage(r.Context(), pageID(r))
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var req pages.CreatePageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	page, err := h.deps.Pages.CreatePage(r.Context(), GetOwnerFromContext(r.Context()), req)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, page)
}

func (h Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Pages.ListPages(r.Context(), GetOwnerFromContext(r.Context()))
	if err != nil {
		h.respondError(w, r, err)

		return
	}
	if list == nil {
		list = []domain.Page{}
	}

	respondJSON(w, http.StatusOK, PageList{Items: list})
}

func (h Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.deps.Pages.GetPage(r.Context(), GetOwnerFromContext(r.Context()), pageID(r))
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, page)
}

func (h Handler) RemovePage(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Pages.RemovePage(r.Context(), GetOwnerFromContext(r.Context()), pageID(r)); err != nil {
		h.respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) UpdatePageInfo(w http.ResponseWriter, r *http.Request) {
	var info domain.BioInfo
	if err := decodeJSON(r, &info); err != nil {
		h.respondError(w, r, err)

		return
	}

	updated, err := h.deps.Pages.UpdatePageInfo(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), info)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h Handler) UpdatePageColors(w http.ResponseWriter, r *http.Request) {
	var colors domain.PageColors
	if err := decodeJSON(r, &colors); err != nil {
		h.respondError(w, r, err)

		return
	}

	updated, err := h.deps.Pages.UpdatePageColors(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), colors)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h Handler) RenamePage(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	page, err := h.deps.Pages.RenamePage(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), req.NewID)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, page)
}
