package v1handler

import (
	"net/http"

	"catalog/pkg/domain"
)

type tagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

func (h *Handler) listStoreTags(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tags, err := h.catalog.StoreTags(r.Context(), domain.StoreID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, tags)
}

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req tagRequest
	if !decode(w, r, &req) {
		return
	}

	tag, err := h.catalog.CreateTag(r.Context(), domain.StoreID(id), req.Name)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *Handler) getTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tag, err := h.catalog.Tag(r.Context(), domain.TagID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, tag)
}

func (h *Handler) deleteTag(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteTag(r.Context(), domain.TagID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "tag deleted"})
}

func (h *Handler) linkTag(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	tagID, ok := pathUUID(w, r, "tagID")
	if !ok {
		return
	}

	tag, err := h.catalog.LinkTag(r.Context(), domain.ItemID(itemID), domain.TagID(tagID))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *Handler) unlinkTag(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "itemID")
	if !ok {
		return
	}
	tagID, ok := pathUUID(w, r, "tagID")
	if !ok {
		return
	}

	if err := h.catalog.UnlinkTag(r.Context(), domain.ItemID(itemID), domain.TagID(tagID)); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "tag removed from item"})
}
