// AngelaMos | 2026
// handler.go

package startup

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, optionalAuth func(http.Handler) http.Handler,
) {
	r.With(optionalAuth).Get("/startups", h.Showcase)

	r.Group(func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/dashboard", h.Dashboard)

		r.Route("/my/startups", func(r chi.Router) {
			r.Get("/", h.ListOwn)
			r.Post("/", h.Create)
			r.Put("/{startupID}", h.Update)
			r.Delete("/{startupID}", h.Delete)
			r.Post("/{startupID}/visibility", h.ToggleVisibility)
		})
	})
}

// Showcase serves the public gallery. Auth is optional and private startups
// never appear here no matter who asks.
func (h *Handler) Showcase(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	sort := ParseSortOrder(r.URL.Query().Get("sort"))

	resp, err := h.service.Showcase(r.Context(), search, sort)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	resp, err := h.service.Dashboard(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		core.Unauthorized(w, "")
		return
	}

	startups, err := h.service.ListOwn(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToStartupResponseList(startups))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req CreateStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	startup, err := h.service.Create(r.Context(), actor, req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.Created(w, ToStartupResponse(startup))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var req UpdateStartupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	startup, err := h.service.Update(
		r.Context(),
		actor,
		chi.URLParam(r, "startupID"),
		req,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToStartupResponse(startup))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "startupID"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ToggleVisibility(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	startup, err := h.service.ToggleVisibility(
		r.Context(),
		actor,
		chi.URLParam(r, "startupID"),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	core.OK(w, ToStartupResponse(startup))
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (Actor, bool) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "")
		return Actor{}, false
	}

	return Actor{ID: claims.UserID, Email: claims.Email}, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if appErr, ok := core.AsAppError(err); ok {
		core.JSONError(w, appErr)
		return
	}

	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, "startup")
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "you can only modify your own startups")
	default:
		core.InternalServerError(w, err)
	}
}
