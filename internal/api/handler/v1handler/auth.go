package v1handler

import (
	"net/http"

	"catalog/pkg/domain"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decode(w, r, &req) {
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}

	pair, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// refresh exchanges the refresh token carried as a bearer for a new access
// token.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	token, err := bearerToken(r)
	if err != nil {
		writeError(w, r, err)

		return
	}

	access, err := h.auth.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, refreshResponse{AccessToken: access})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, errMissingClaims())

		return
	}

	if err := h.auth.Logout(r.Context(), *claims); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "successfully logged out"})
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.auth.User(r.Context(), domain.UserID(id))
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.auth.DeleteUser(r.Context(), domain.UserID(id)); err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, messageBody{Message: "user deleted"})
}
