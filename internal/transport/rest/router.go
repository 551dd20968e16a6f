package rest

import "net/http"

// Handlers bundles every REST handler the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
	Catalog *CatalogHandler
	Forms   *FormsHandler
}

// NewRouter mounts all routes on a ServeMux. Authentication and the rest of
// the middleware chain wrap the returned mux in app wiring.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)
	mux.HandleFunc("POST /auth/password", h.Auth.ChangePassword)
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("POST /admin/users", h.Admin.CreateUser)
	mux.HandleFunc("GET /admin/users", h.Admin.ListUsers)
	mux.HandleFunc("GET /admin/users/{id}", h.Admin.GetUser)
	mux.HandleFunc("PUT /admin/users/{id}/grants", h.Admin.UpdateGrants)

	mux.HandleFunc("POST /catalog/{collection}", h.Catalog.Create)
	mux.HandleFunc("GET /catalog/{collection}", h.Catalog.List)
	mux.HandleFunc("GET /catalog/{collection}/{id}", h.Catalog.Get)
	mux.HandleFunc("GET /catalog/{collection}/slug/{slug}", h.Catalog.GetBySlug)
	mux.HandleFunc("PUT /catalog/{collection}/{id}", h.Catalog.Update)
	mux.HandleFunc("DELETE /catalog/{collection}/{id}", h.Catalog.Delete)

	mux.HandleFunc("POST /forms/{collection}/open", h.Forms.Open)
	mux.HandleFunc("GET /forms/{collection}", h.Forms.Get)
	mux.HandleFunc("PATCH /forms/{collection}/field", h.Forms.SetField)
	mux.HandleFunc("POST /forms/{collection}/navigate", h.Forms.Navigate)
	mux.HandleFunc("POST /forms/{collection}/submit", h.Forms.Submit)
	mux.HandleFunc("POST /forms/{collection}/draft/restore", h.Forms.RestoreDraft)
	mux.HandleFunc("DELETE /forms/{collection}/draft", h.Forms.DiscardDraft)
	mux.HandleFunc("POST /forms/{collection}/close/request", h.Forms.RequestClose)
	mux.HandleFunc("POST /forms/{collection}/close", h.Forms.ResolveClose)

	return mux
}
