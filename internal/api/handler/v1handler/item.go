package v1handler

import (
	"net/http"

	"catalog/internal/catalog"
	"catalog/pkg/domain"

	"github.com/google/uuid"
)

type createItemRequest struct {
	Name        string  `json:"name" validate:"required,max=80"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	StoreID     string  `json:"store_id" validate:"required,uuid"`
}

type putItemRequest struct {
	Name        string  `json:"name" validate:"required,max=80"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"required,gte=0"`
	StoreID     *string `json:"store_id" validate:"omitempty,uuid"`
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.Items(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if !decode(w, r, &req) {
		return
	}

	// the uuid tag already validated the format
	storeID := uuid.MustParse(req.StoreID)

	item, err := h.catalog.CreateItem(r.Context(), catalog.CreateItemParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		StoreID:     domain.StoreID(storeID),
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.catalog.Item(r.Context(), domain.ItemID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, item)
}

// putItem updates the item when it exists and creates it under the given ID
// when it does not.
func (h *Handler) putItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req putItemRequest
	if !decode(w, r, &req) {
		return
	}

	params := catalog.UpsertItemParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if req.StoreID != nil {
		storeID := domain.StoreID(uuid.MustParse(*req.StoreID))
		params.StoreID = &storeID
	}

	item, created, err := h.catalog.UpsertItem(r.Context(), domain.ItemID(id), params)
	if err != nil {
		writeError(w, r, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteItem(r.Context(), domain.ItemID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "item deleted"})
}
