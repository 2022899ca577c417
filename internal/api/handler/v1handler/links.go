package v1handler

import (
	"linkify/pkg/domain"
	"net/http"

	"github.com/gorilla/mux"
)

// LinkRequest is the body of link add and update calls. Fields left empty on
// update keep their current value.
type LinkRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// SocialLinkRequest is the body of social link add and update calls.
type SocialLinkRequest struct {
	URL string `json:"url"`
}

// ReorderRequest carries the complete new order of a link collection.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// LinkList is the response of ReorderLinks.
type LinkList struct {
	Items []domain.Link `json:"items"`
}

// SocialLinkList is the response of ReorderSocialLinks.
type SocialLinkList struct {
	Items []domain.SocialLink `json:"items"`
}

func linkID(r *http.Request) string {
	return mux.Vars(r)["linkId"]
}

func (h Handler) AddLink(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	link, err := h.deps.Pages.AddLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r),
		domain.Link{URL: req.URL, Name: req.Name})
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, link)
}

func (h Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req LinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	link, err := h.deps.Pages.UpdateLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r),
		domain.Link{ID: linkID(r), URL: req.URL, Name: req.Name})
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, link)
}

func (h Handler) RemoveLink(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Pages.RemoveLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), linkID(r)); err != nil {
		h.respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) ReorderLinks(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	links, err := h.deps.Pages.ReorderLinks(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), req.IDs)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, LinkList{Items: links})
}

func (h Handler) AddSocialLink(w http.ResponseWriter, r *http.Request) {
	var req SocialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	link, err := h.deps.Pages.AddSocialLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r),
		domain.SocialLink{URL: req.URL})
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, link)
}

func (h Handler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req SocialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	link, err := h.deps.Pages.UpdateSocialLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r),
		domain.SocialLink{ID: linkID(r), URL: req.URL})
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, link)
}

func (h Handler) RemoveSocialLink(w http.ResponseWriter, r *http.Request) {
	err := h.deps.Pages.RemoveSocialLink(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), linkID(r))
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h Handler) ReorderSocialLinks(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)

		return
	}

	links, err := h.deps.Pages.ReorderSocialLinks(r.Context(), GetOwnerFromContext(r.Context()), pageID(r), req.IDs)
	if err != nil {
		h.respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, SocialLinkList{Items: links})
}
