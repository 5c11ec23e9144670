package handler

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/view"
)

// PageHandler serves the landing page, logout and the not-found page.
type PageHandler struct {
	clients *Clients
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(clients *Clients) *PageHandler {
	return &PageHandler{clients: clients}
}

// HandleHome renders the landing page with the hero's flow.
// GET /{$}
func (h *PageHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	view.HomePage(c.Page(), c.snapshot(flow.ScreenHero)).Render(r.Context(), w)
}

// HandleLogout clears the session and returns to the landing page. The
// stored users and the current-user slot are kept.
// POST /logout
func (h *PageHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.clients.For(r).Session.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleNotFound renders the not-found page for any unmatched path.
func (h *PageHandler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(h.clients.For(r).Page()))
}

// renderStatus writes status before rendering a full page.
func renderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	c.Render(r.Context(), w)
}
