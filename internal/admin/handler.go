// AngelaMos | 2026
// handler.go

package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solacehq/solace/internal/core"
	"github.com/solacehq/solace/internal/middleware"
	"github.com/solacehq/solace/internal/startup"
)

type Handler struct {
	service *Service
	stats   *StatsHandler
}

func NewHandler(service *Service, stats *StatsHandler) *Handler {
	return &Handler{
		service: service,
		stats:   stats,
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/overview", h.Overview)
		r.Delete("/users/{userID}", h.DeleteUser)
		r.Delete("/startups/{startupID}", h.DeleteStartup)
		r.Post("/startups/{startupID}/visibility", h.ToggleStartupVisibility)

		if h.stats != nil {
			r.Get("/stats", h.stats.GetSystemStats)
		}
	})
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Overview(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, resp)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "user")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) DeleteStartup(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	err := h.service.DeleteStartup(
		r.Context(),
		actor,
		chi.URLParam(r, "startupID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "startup")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) ToggleStartupVisibility(
	w http.ResponseWriter,
	r *http.Request,
) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	updated, err := h.service.ToggleStartupVisibility(
		r.Context(),
		actor,
		chi.URLParam(r, "startupID"),
	)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "startup")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, startup.ToStartupResponse(updated))
}

func (h *Handler) actor(
	w http.ResponseWriter,
	r *http.Request,
) (startup.Actor, bool) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		core.Unauthorized(w, "")
		return startup.Actor{}, false
	}

	return startup.Actor{ID: claims.UserID, Email: claims.Email}, true
}
