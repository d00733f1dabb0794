// Package v1handler implements the v1 REST endpoints over net/http.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"catalog/internal/auth"
	"catalog/internal/catalog"
	"catalog/pkg/logger"
	"catalog/pkg/serrors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate checks decoded request payloads. Struct tags carry the rules.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Deps carries the services the handlers delegate to.
type Deps struct {
	Auth    auth.Auth
	Catalog catalog.Catalog
}

// Handler holds the v1 endpoint implementations.
type Handler struct {
	auth    auth.Auth
	catalog catalog.Catalog
}

// New constructs a Handler from its dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		auth:    deps.Auth,
		catalog: deps.Catalog,
	}
}

// Register installs all v1 routes on the mux using method patterns.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/auth/register", h.register)
	mux.HandleFunc("POST /v1/auth/login", h.login)
	mux.HandleFunc("POST /v1/auth/refresh", h.refresh)
	mux.HandleFunc("POST /v1/auth/logout", h.withAuth(h.logout))

	mux.HandleFunc("GET /v1/users/{id}", h.getUser)
	mux.HandleFunc("DELETE /v1/users/{id}", h.withAdminAuth(h.deleteUser))

	mux.HandleFunc("GET /v1/stores", h.listStores)
	mux.HandleFunc("POST /v1/stores", h.createStore)
	mux.HandleFunc("GET /v1/stores/{id}", h.getStore)
	mux.HandleFunc("DELETE /v1/stores/{id}", h.deleteStore)

	mux.HandleFunc("GET /v1/items", h.withAuth(h.listItems))
	mux.HandleFunc("POST /v1/items", h.withFreshAuth(h.createItem))
	mux.HandleFunc("GET /v1/items/{id}", h.withAuth(h.getItem))
	mux.HandleFunc("PUT /v1/items/{id}", h.withAuth(h.putItem))
	mux.HandleFunc("DELETE /v1/items/{id}", h.withAdminAuth(h.deleteItem))

	mux.HandleFunc("GET /v1/stores/{id}/tags", h.listStoreTags)
	mux.HandleFunc("POST /v1/stores/{id}/tags", h.createTag)
	mux.HandleFunc("GET /v1/tags/{id}", h.getTag)
	mux.HandleFunc("DELETE /v1/tags/{id}", h.deleteTag)

	mux.HandleFunc("POST /v1/items/{itemID}/tags/{tagID}", h.linkTag)
	mux.HandleFunc("DELETE /v1/items/{itemID}/tags/{tagID}", h.unlinkTag)
}

// errorBody is the wire format of all error responses.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// messageBody is the wire format of plain acknowledgement responses.
type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusForKind maps semantic error kinds to HTTP status codes. All token
// error kinds are authentication failures.
func statusForKind(k serrors.Kind) int {
	switch k {
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized,
		auth.ErrTokenExpired,
		auth.ErrInvalidToken,
		auth.ErrTokenRevoked,
		auth.ErrAuthRequired,
		auth.ErrFreshRequired:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders an error response. Semantic errors keep their kind as a
// lower-cased machine-readable code; anything else becomes an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *serrors.Error
	if errors.As(err, &se) && se.Kind() != nil {
		status := statusForKind(se.Kind())
		if status == http.StatusInternalServerError {
			logger.Error(r.Context(), err.Error())
		}

		msg := se.Message()
		if msg == "" {
			msg = http.StatusText(status)
		}
		writeJSON(w, status, errorBody{
			Code:    strings.ToLower(se.Kind().Error()),
			Message: msg,
		})

		return
	}

	logger.Error(r.Context(), err.Error())
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Code:    "internal",
		Message: "internal server error",
	})
}

// pathUUID parses a UUID path segment, writing a 400 response on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid %s", name))

		return uuid.Nil, false
	}

	return id, true
}

// errMissingClaims reports a middleware wiring bug: a protected handler ran
// without claims in its context.
func errMissingClaims() error {
	return serrors.With(serrors.ErrInternal, "no token claims in request context")
}

// decode reads and validates a JSON request body into dst. It writes the
// error response itself and reports whether decoding succeeded.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body"))

		return false
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field())
			}
			writeError(w, r, serrors.With(serrors.ErrBadRequest,
				"invalid fields: %s", strings.Join(fields, ", ")))

			return false
		}

		writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request"))

		return false
	}

	return true
}
