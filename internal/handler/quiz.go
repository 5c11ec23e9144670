package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/view"
)

// MsgInvalidSubmission is shown above the quiz when a submission is rejected.
const MsgInvalidSubmission = "Please choose a valid language and answer the questions shown."

// QuizHandler serves the quiz catalog, quiz taking, results and certificates.
type QuizHandler struct {
	clients *Clients
	quizzes *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(clients *Clients, quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{clients: clients, quizzes: quizzes}
}

// HandleList renders the catalog for the selected tab and search query.
// GET /quizzes
func (h *QuizHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)

	tab, err := service.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		renderStatus(w, r, http.StatusBadRequest, view.ErrorPage(c.Page(), "Invalid tab", "The selected quiz tab does not exist."))
		return
	}

	attempted, err := h.attempted(r, c)
	if err != nil {
		slog.Error("list attempted quizzes", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query().Get("q")
	view.QuizzesPage(c.Page(), tab, query, h.quizzes.Filter(tab, query), attempted).Render(r.Context(), w)
}

// HandleShow renders the instructions, language choice and questions.
// GET /quiz/{quizId}
func (h *QuizHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	if !c.Session.IsLoggedIn() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	quiz, err := h.quizzes.Get(r.PathValue("quizId"))
	if err != nil {
		renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(c.Page()))
		return
	}
	view.QuizPage(c.Page(), *quiz, "").Render(r.Context(), w)
}

// HandleSubmit scores the posted answers and redirects to the result.
// POST /quiz/{quizId}
func (h *QuizHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user, ok := c.Session.User()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	quiz, err := h.quizzes.Get(r.PathValue("quizId"))
	if err != nil {
		renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(c.Page()))
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	answers := make([]int, quiz.TotalQuestions())
	for i := range answers {
		n, err := strconv.Atoi(r.FormValue("q" + strconv.Itoa(i)))
		if err != nil {
			n = -1
		}
		answers[i] = n
	}

	attempt, err := h.quizzes.Submit(r.Context(), user.ID, quiz.ID, r.FormValue("language"), answers)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			renderStatus(w, r, http.StatusUnprocessableEntity, view.QuizPage(c.Page(), *quiz, MsgInvalidSubmission))
		case errors.Is(err, domain.ErrUnauthorized):
			http.Redirect(w, r, "/", http.StatusSeeOther)
		default:
			slog.Error("submit quiz", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/quiz-thank-you?attempt="+strconv.FormatInt(attempt.ID, 10), http.StatusSeeOther)
}

// HandleThankYou shows the score of an attempt owned by the session user.
// GET /quiz-thank-you
func (h *QuizHandler) HandleThankYou(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user, ok := c.Session.User()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("attempt"), 10, 64)
	if err != nil {
		renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(c.Page()))
		return
	}

	attempt, err := h.quizzes.GetAttempt(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(c.Page()))
			return
		}
		slog.Error("get quiz attempt", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	quiz, err := h.quizzes.Get(attempt.QuizID)
	if err != nil {
		renderStatus(w, r, http.StatusNotFound, view.NotFoundPage(c.Page()))
		return
	}
	view.ThankYouPage(c.Page(), *attempt, *quiz).Render(r.Context(), w)
}

// HandleCertificate renders the certificate for a passed attempt, or an
// inline "No certificate available" message.
// GET /certificate
func (h *QuizHandler) HandleCertificate(w http.ResponseWriter, r *http.Request) {
	c := h.clients.For(r)
	user, ok := c.Session.User()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.URL.Query().Get("attempt"), 10, 64)
	if err != nil {
		view.CertificatePage(c.Page(), nil, nil).Render(r.Context(), w)
		return
	}

	attempt, quiz, err := h.quizzes.Certificate(r.Context(), user.ID, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("get certificate", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		attempt, quiz = nil, nil
	}
	view.CertificatePage(c.Page(), attempt, quiz).Render(r.Context(), w)
}

func (h *QuizHandler) attempted(r *http.Request, c Client) (map[string]bool, error) {
	user, ok := c.Session.User()
	if !ok {
		return map[string]bool{}, nil
	}
	return h.quizzes.AttemptedQuizIDs(r.Context(), user.ID)
}
