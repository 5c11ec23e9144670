package handler

import (
	"net/http"

	"github.com/msomdec/youth-portal/internal/service"
)

// APIHandler exposes the catalog and the client's state as JSON.
type APIHandler struct {
	clients *Clients
	quizzes *service.QuizService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(clients *Clients, quizzes *service.QuizService) *APIHandler {
	return &APIHandler{clients: clients, quizzes: quizzes}
}

// HandleQuizzes returns the catalog filtered like the quizzes page.
// GET /api/quizzes?tab=&q=
func (h *APIHandler) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	tab, err := service.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown tab")
		return
	}

	attempted := map[string]bool{}
	if user, ok := h.clients.For(r).Session.User(); ok {
		attempted, err = h.quizzes.AttemptedQuizIDs(r.Context(), user.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusOK, toQuizDTOs(h.quizzes.Filter(tab, r.URL.Query().Get("q")), attempted))
}

// HandleSession reports the client's login state.
// GET /api/session
func (h *APIHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	dto := SessionDTO{}
	if user, ok := h.clients.For(r).Session.User(); ok {
		dto.LoggedIn = true
		dto.User = &user
	}
	writeJSON(w, http.StatusOK, dto)
}

// HandleUsers returns the client's stored users in registration order.
// GET /api/users
func (h *APIHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.clients.For(r).Users.ListAll(r.Context()))
}
