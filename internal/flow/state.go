// Package flow implements the identity modal state machine: login,
// mobile registration, OTP verification and the registration form.
package flow

import (
	"fmt"

	"github.com/msomdec/youth-portal/internal/domain"
)

// State is the single open modal, or Closed.
type State int

const (
	Closed State = iota
	Login
	MobileRegister
	OTP
	Register
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Login:
		return "login"
	case MobileRegister:
		return "mobileRegister"
	case OTP:
		return "otp"
	case Register:
		return "register"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Purpose records why an OTP was issued; it decides where a successful
// verification leads.
type Purpose int

const (
	PurposeRegister Purpose = iota
	PurposeLogin
)

// Screen names a page region embedding its own independent flow.
type Screen string

const (
	ScreenHeader Screen = "header"
	ScreenHero   Screen = "hero"
)

// ParseScreen validates a screen name taken from a URL.
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case ScreenHeader, ScreenHero:
		return Screen(s), nil
	}
	return "", fmt.Errorf("%w: unknown screen %q", domain.ErrInvalidInput, s)
}
