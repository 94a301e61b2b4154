package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
)

// AdminApp is the small ops-facing server: liveness and readiness only.
// It runs on its own port so the main API can be fronted separately.
type AdminApp struct {
	router *chi.Mux
	db     *sqlx.DB
}

// NewAdminApp creates the admin application
func NewAdminApp(db *sqlx.DB) *AdminApp {
	app := &AdminApp{
		router: chi.NewRouter(),
		db:     db,
	}

	app.router.Use(middleware.Recoverer)
	app.router.Get("/healthz", app.handleHealth)
	app.router.Get("/readyz", app.handleReady)

	return app
}

func (a *AdminApp) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *AdminApp) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := a.db.PingContext(r.Context()); err != nil {
		http.Error(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ready"))
}

// Router exposes the admin mux
func (a *AdminApp) Router() http.Handler {
	return a.router
}

// Run starts the admin server on the given address
func (a *AdminApp) Run(addr string) error {
	return http.ListenAndServe(addr, a.router)
}
