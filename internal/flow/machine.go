package flow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msomdec/youth-portal/internal/domain"
)

// Inline messages shown inside the open modal.
const (
	MsgIdentifierRequired = "Enter your mobile number or username."
	MsgNoAccount          = "No account found with this mobile number or username."
	MsgTermsRequired      = "Please accept the Terms of Use."
	MsgInvalidMobile      = "Enter a valid 10-digit mobile number."
	MsgOTPMismatch        = "Invalid OTP. Please try again."
	MsgOTPExpired         = "OTP has expired. Please request a new one."
	MsgSendFailed         = "Could not send OTP. Please try again."
)

// UserStore is the part of the local user store the flow reads and writes.
type UserStore interface {
	FindByMobileOrUsername(ctx context.Context, key string) (domain.User, bool)
	Append(ctx context.Context, user domain.User)
}

// SessionLogin marks a user as logged in for the current client.
type SessionLogin interface {
	Login(user domain.User)
}

// Env carries the collaborators an action needs. It is supplied per call so
// the machine never holds on to a client's store or session.
type Env struct {
	Users   UserStore
	Session SessionLogin
}

// Snapshot is a read-only copy of the machine for rendering.
type Snapshot struct {
	State         State
	Message       string
	Identifier    string
	TermsAccepted bool
	Mobile        string
	Contact       string
	Purpose       Purpose
	ExpiresAt     time.Time
	Form          RegistrationForm
}

// Machine is one screen's identity modal flow. All methods are safe for
// concurrent use.
type Machine struct {
	mu    sync.Mutex
	otp   *OTPIssuer
	newID func() string

	state      State
	message    string
	identifier string
	terms      bool
	mobile     string
	purpose    Purpose
	challenge  *Challenge
	matched    *domain.User
	form       RegistrationForm
}

// NewMachine creates a closed machine issuing codes through otp.
func NewMachine(otp *OTPIssuer) *Machine {
	return &Machine{
		otp:   otp,
		newID: uuid.NewString,
	}
}

// WithIDGenerator replaces the user id generator. Intended for tests.
func (m *Machine) WithIDGenerator(fn func() string) *Machine {
	m.newID = fn
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Snapshot returns a copy of everything a view needs.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		State:         m.state,
		Message:       m.message,
		Identifier:    m.identifier,
		TermsAccepted: m.terms,
		Mobile:        m.mobile,
		Purpose:       m.purpose,
		Form:          m.form,
	}
	if m.challenge != nil {
		s.Contact = m.challenge.Contact
		s.ExpiresAt = m.challenge.ExpiresAt
	}
	return s
}

// OpenLogin opens the login modal from any state.
func (m *Machine) OpenLogin() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearPending()
	m.state = Login
}

// OpenMobileRegister opens the mobile registration modal from any state.
func (m *Machine) OpenMobileRegister() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearPending()
	m.state = MobileRegister
}

// Close closes whatever is open and forgets the entered values.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

// SubmitLogin looks the identifier up and, when found with terms accepted,
// issues a login code.
func (m *Machine) SubmitLogin(ctx context.Context, env Env, identifier string, termsAccepted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.expect(Login, "submit login"); err != nil {
		return err
	}

	identifier = strings.TrimSpace(identifier)
	m.identifier = identifier
	m.terms = termsAccepted

	if identifier == "" {
		m.message = MsgIdentifierRequired
		return nil
	}
	user, ok := env.Users.FindByMobileOrUsername(ctx, identifier)
	if !ok {
		m.message = MsgNoAccount
		return nil
	}
	if !termsAccepted {
		m.message = MsgTermsRequired
		return nil
	}

	if !m.issue(ctx, identifier) {
		return nil
	}
	m.purpose = PurposeLogin
	m.matched = &user
	m.state = OTP
	return nil
}

// SendOTP validates a mobile number and issues a registration code.
func (m *Machine) SendOTP(ctx context.Context, mobile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.expect(MobileRegister, "send otp"); err != nil {
		return err
	}

	mobile = strings.TrimSpace(mobile)
	m.mobile = mobile
	if !ValidMobile(mobile) {
		m.message = MsgInvalidMobile
		return nil
	}

	if !m.issue(ctx, mobile) {
		return nil
	}
	m.purpose = PurposeRegister
	m.matched = nil
	m.form.Mobile = mobile
	m.state = OTP
	return nil
}

// ResendOTP issues a fresh code to the pending contact. The previous code
// stops being accepted.
func (m *Machine) ResendOTP(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.expect(OTP, "resend otp"); err != nil {
		return err
	}
	if m.challenge == nil {
		return fmt.Errorf("%w: no pending otp", domain.ErrInvalidTransition)
	}
	m.issue(ctx, m.challenge.Contact)
	return nil
}

// VerifyOTP checks the entered code. A registration code leads to the
// registration form; a login code logs the matched user in and closes.
func (m *Machine) VerifyOTP(ctx context.Context, env Env, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.expect(OTP, "verify otp"); err != nil {
		return err
	}
	if m.challenge == nil {
		return fmt.Errorf("%w: no pending otp", domain.ErrInvalidTransition)
	}

	if err := m.otp.Verify(*m.challenge, strings.TrimSpace(code)); err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPExpired):
			m.message = MsgOTPExpired
		default:
			m.message = MsgOTPMismatch
		}
		return nil
	}

	switch m.purpose {
	case PurposeLogin:
		if m.matched != nil {
			env.Session.Login(*m.matched)
		}
		m.reset()
	default:
		m.challenge = nil
		m.message = ""
		m.state = Register
	}
	return nil
}

// SubmitRegister validates the form, logs the new user in, and appends it to
// the stored users. An empty mobile falls back to the verified number.
func (m *Machine) SubmitRegister(ctx context.Context, env Env, form RegistrationForm) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.expect(Register, "submit registration"); err != nil {
		return err
	}

	if strings.TrimSpace(form.Mobile) == "" {
		form.Mobile = m.mobile
	}
	m.form = form

	if err := form.Validate(); err != nil {
		m.message = err.Error()
		return nil
	}

	user := form.User(m.newID())
	env.Session.Login(user)
	env.Users.Append(ctx, user)

	m.reset()
	return nil
}

// ValidMobile reports whether s is exactly ten digits.
func ValidMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m *Machine) expect(want State, action string) error {
	if m.state != want {
		return fmt.Errorf("%w: %s in state %s", domain.ErrInvalidTransition, action, m.state)
	}
	return nil
}

// issue sends a code to contact and records the challenge. On failure it sets
// the inline message and reports false.
func (m *Machine) issue(ctx context.Context, contact string) bool {
	ch, err := m.otp.Issue(ctx, contact)
	if err != nil {
		slog.ErrorContext(ctx, "issue otp", "error", err)
		m.message = MsgSendFailed
		return false
	}
	m.challenge = &ch
	m.message = ""
	return true
}

func (m *Machine) clearPending() {
	m.message = ""
	m.challenge = nil
	m.matched = nil
}

func (m *Machine) reset() {
	m.state = Closed
	m.message = ""
	m.identifier = ""
	m.terms = false
	m.mobile = ""
	m.purpose = PurposeRegister
	m.challenge = nil
	m.matched = nil
	m.form = RegistrationForm{}
}
