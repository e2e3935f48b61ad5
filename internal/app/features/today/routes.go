// internal/app/features/today/routes.go
package today

import (
	"github.com/go-chi/chi/v5"
	"github.com/jvetere1999/passion-os/internal/app/system/auth"
)

// Routes returns the subrouter for the Today API; mounted under /api/today.
// Every route requires a signed-in session user.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.ServeToday)
	r.Post("/momentum/shown", h.ServeMomentumShown)
	r.Post("/momentum/dismiss", h.ServeMomentumDismiss)
	r.Post("/soft-landing/activate", h.ServeSoftLandingActivate)
	r.Post("/soft-landing/clear", h.ServeSoftLandingClear)

	return r
}
