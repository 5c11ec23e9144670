package handler

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/view"
)

// MsgRateLimited replaces the modal message when a client asks for codes
// too quickly.
const MsgRateLimited = "Too many OTP requests. Please wait a minute and try again."

// FlowHandler drives the identity modals over datastar SSE.
type FlowHandler struct {
	clients *Clients
	limiter *service.TokenBucket
}

// NewFlowHandler creates a new FlowHandler.
func NewFlowHandler(clients *Clients, limiter *service.TokenBucket) *FlowHandler {
	return &FlowHandler{clients: clients, limiter: limiter}
}

// HandleOpen opens the login or mobile-register modal.
// POST /flow/{screen}/open/{modal}
func (h *FlowHandler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	screen, ok := parseScreen(w, r)
	if !ok {
		return
	}

	m := h.clients.For(r).Flow(screen)
	switch r.PathValue("modal") {
	case "login":
		m.OpenLogin()
	case "mobile-register":
		m.OpenMobileRegister()
	default:
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	patchModal(w, r, screen, m.Snapshot())
}

// HandleClose closes the modal and clears its inputs.
// POST /flow/{screen}/close
func (h *FlowHandler) HandleClose(w http.ResponseWriter, r *http.Request) {
	screen, ok := parseScreen(w, r)
	if !ok {
		return
	}

	m := h.clients.For(r).Flow(screen)
	m.Close()

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.IdentityModal(screen, m.Snapshot()),
		datastar.WithSelectorID(view.ModalContainerID(screen)),
		datastar.WithModeInner(),
	)
	sse.MarshalAndPatchSignals(view.ClearedFlowSignals(screen))
}

// HandleLogin submits the login identifier and, on success, issues a code.
// POST /flow/{screen}/login
func (h *FlowHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	screen, fields, ok := readFlowSignals(w, r)
	if !ok {
		return
	}

	c := h.clients.For(r)
	m := c.Flow(screen)
	if !h.allow(r) {
		patchRateLimited(w, r, screen, m.Snapshot())
		return
	}
	err := m.SubmitLogin(r.Context(), c.Env(), fields.Identifier, fields.Terms)
	h.respond(w, r, screen, m, err)
}

// HandleSendOTP validates the mobile number and issues a registration code.
// POST /flow/{screen}/otp/send
func (h *FlowHandler) HandleSendOTP(w http.ResponseWriter, r *http.Request) {
	screen, fields, ok := readFlowSignals(w, r)
	if !ok {
		return
	}

	m := h.clients.For(r).Flow(screen)
	if !h.allow(r) {
		patchRateLimited(w, r, screen, m.Snapshot())
		return
	}
	err := m.SendOTP(r.Context(), fields.Mobile)
	h.respond(w, r, screen, m, err)
}

// HandleResendOTP issues a fresh code to the pending contact.
// POST /flow/{screen}/otp/resend
func (h *FlowHandler) HandleResendOTP(w http.ResponseWriter, r *http.Request) {
	screen, ok := parseScreen(w, r)
	if !ok {
		return
	}

	m := h.clients.For(r).Flow(screen)
	if !h.allow(r) {
		patchRateLimited(w, r, screen, m.Snapshot())
		return
	}
	err := m.ResendOTP(r.Context())
	h.respond(w, r, screen, m, err)
}

// HandleVerifyOTP checks the entered code. A verified login code completes
// the flow and sends the browser back to the page it came from.
// POST /flow/{screen}/otp/verify
func (h *FlowHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	screen, fields, ok := readFlowSignals(w, r)
	if !ok {
		return
	}

	c := h.clients.For(r)
	m := c.Flow(screen)
	err := m.VerifyOTP(r.Context(), c.Env(), fields.OTP)
	h.respond(w, r, screen, m, err)
}

// HandleRegister submits the registration form.
// POST /flow/{screen}/register
func (h *FlowHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	screen, fields, ok := readFlowSignals(w, r)
	if !ok {
		return
	}

	c := h.clients.For(r)
	m := c.Flow(screen)
	err := m.SubmitRegister(r.Context(), c.Env(), registrationForm(fields))
	h.respond(w, r, screen, m, err)
}

// respond re-renders the modal after an action. A flow that closed because
// the user logged in redirects instead.
func (h *FlowHandler) respond(w http.ResponseWriter, r *http.Request, screen flow.Screen, m *flow.Machine, err error) {
	if err != nil && !errors.Is(err, domain.ErrInvalidTransition) {
		slog.Error("flow action", "screen", screen, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	snap := m.Snapshot()
	if err == nil && snap.State == flow.Closed && h.clients.For(r).Session.IsLoggedIn() {
		sse := datastar.NewSSE(w, r)
		sse.MarshalAndPatchSignals(view.ClearedFlowSignals(screen))
		sse.Redirect(returnPath(r))
		return
	}
	patchModal(w, r, screen, snap)
}

func (h *FlowHandler) allow(r *http.Request) bool {
	if h.limiter == nil {
		return true
	}
	return h.limiter.Allow(clientIP(r))
}

func parseScreen(w http.ResponseWriter, r *http.Request) (flow.Screen, bool) {
	screen, err := flow.ParseScreen(r.PathValue("screen"))
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return "", false
	}
	return screen, true
}

func readFlowSignals(w http.ResponseWriter, r *http.Request) (flow.Screen, view.FlowFields, bool) {
	screen, ok := parseScreen(w, r)
	if !ok {
		return "", view.FlowFields{}, false
	}

	var signals view.FlowSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return "", view.FlowFields{}, false
	}
	return screen, signals.For(screen), true
}

func patchModal(w http.ResponseWriter, r *http.Request, screen flow.Screen, snap flow.Snapshot) {
	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(
		view.IdentityModal(screen, snap),
		datastar.WithSelectorID(view.ModalContainerID(screen)),
		datastar.WithModeInner(),
	)
}

func patchRateLimited(w http.ResponseWriter, r *http.Request, screen flow.Screen, snap flow.Snapshot) {
	snap.Message = MsgRateLimited
	patchModal(w, r, screen, snap)
}

func registrationForm(f view.FlowFields) flow.RegistrationForm {
	form := flow.RegistrationForm{
		FirstName:             f.FirstName,
		LastName:              f.LastName,
		Email:                 f.Email,
		Mobile:                f.RegMobile,
		Gender:                f.Gender,
		BloodGroup:            f.BloodGroup,
		State:                 f.State,
		District:              f.District,
		Pincode:               f.Pincode,
		YouthType:             f.YouthType,
		SportsTalent:          f.SportsTalent,
		KheloIndiaParticipant: f.KheloIndia,
		Username:              f.Username,
	}
	form.SetDateOfBirth(f.DobDay, f.DobMonth, f.DobYear)
	if domain.AreaType(f.AreaType) == domain.AreaRural {
		form.SetRuralArea(f.Block, f.Panchayat, f.Village)
	} else {
		form.SetUrbanArea(f.ULB)
	}
	return form
}

// returnPath is the same-site path of the page that issued the request.
func returnPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
