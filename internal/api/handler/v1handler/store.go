package v1handler

import (
	"net/http"

	"catalog/pkg/domain"
)

type storeRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.catalog.Stores(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, stores)
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	var req storeRequest
	if !decode(w, r, &req) {
		return
	}

	store, err := h.catalog.CreateStore(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, store)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	store, err := h.catalog.Store(r.Context(), domain.StoreID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, store)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteStore(r.Context(), domain.StoreID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "store deleted"})
}
