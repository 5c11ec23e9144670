package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/session"
)

// Deps is everything the HTTP layer is built from.
type Deps struct {
	Tokens     *session.Tokens
	Sessions   *session.Registry
	Flows      *flow.Registry
	Storage    domain.KeyValueStore
	Quizzes    *service.QuizService
	Profiles   *service.ProfileService
	Images     *service.ImageService
	OTPLimiter *service.TokenBucket

	AllowedOrigins []string
	CookieSecure   bool
}

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, d Deps) {
	clients := NewClients(d.Sessions, d.Flows, d.Storage)

	pages := NewPageHandler(clients)
	flows := NewFlowHandler(clients, d.OTPLimiter)
	quizzes := NewQuizHandler(clients, d.Quizzes)
	profiles := NewProfileHandler(clients, d.Profiles, d.Images)
	api := NewAPIHandler(clients, d.Quizzes)
	health := NewHealthHandler(d.Sessions, d.Flows)

	mux.HandleFunc("GET /healthz", health.HandleHealthz)

	mux.HandleFunc("GET /{$}", pages.HandleHome)
	mux.HandleFunc("POST /logout", pages.HandleLogout)

	mux.HandleFunc("POST /flow/{screen}/open/{modal}", flows.HandleOpen)
	mux.HandleFunc("POST /flow/{screen}/close", flows.HandleClose)
	mux.HandleFunc("POST /flow/{screen}/login", flows.HandleLogin)
	mux.HandleFunc("POST /flow/{screen}/otp/send", flows.HandleSendOTP)
	mux.HandleFunc("POST /flow/{screen}/otp/verify", flows.HandleVerifyOTP)
	mux.HandleFunc("POST /flow/{screen}/otp/resend", flows.HandleResendOTP)
	mux.HandleFunc("POST /flow/{screen}/register", flows.HandleRegister)

	mux.HandleFunc("GET /quizzes", quizzes.HandleList)
	mux.HandleFunc("GET /quiz/{quizId}", quizzes.HandleShow)
	mux.HandleFunc("POST /quiz/{quizId}", quizzes.HandleSubmit)
	mux.HandleFunc("GET /quiz-thank-you", quizzes.HandleThankYou)
	mux.HandleFunc("GET /certificate", quizzes.HandleCertificate)

	mux.HandleFunc("GET /profile", profiles.HandleProfile)
	mux.HandleFunc("POST /profile", profiles.HandleSaveProfile)
	mux.HandleFunc("GET /profile/image", profiles.HandleServeImage)
	mux.HandleFunc("POST /profile/image", profiles.HandleUploadImage)
	mux.HandleFunc("GET /basic-info", profiles.HandleBasicInfo)
	mux.HandleFunc("POST /basic-info", profiles.HandleSaveBasicInfo)

	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/quizzes", api.HandleQuizzes)
	apiMux.HandleFunc("GET /api/session", api.HandleSession)
	apiMux.HandleFunc("GET /api/users", api.HandleUsers)
	apiMux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	mux.Handle("/api/", apiCORS(d.AllowedOrigins).Handler(apiMux))

	mux.HandleFunc("/", pages.HandleNotFound)
}

// New builds the full handler: routes wrapped in the middleware chain.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, d)

	var h http.Handler = mux
	h = ClientIdentity(d.Tokens, d.CookieSecure, h)
	h = SecurityHeaders(h)
	h = middleware.Recoverer(h)
	h = RequestLogger(h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)
	return h
}

// apiCORS allows the configured origins on /api. With none configured every
// cross-origin request is refused.
func apiCORS(origins []string) *cors.Cors {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(origins) == 0 {
		opts.AllowedOrigins = nil
		opts.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(opts)
}
