package flow

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/youth-portal/internal/domain"
)

// Sender delivers a one-time code to a contact.
type Sender interface {
	Send(ctx context.Context, contact, code string) error
}

// LogSender "delivers" codes by logging them. Nothing leaves the process.
type LogSender struct {
	Logger *slog.Logger
}

func (s LogSender) Send(ctx context.Context, contact, code string) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "otp issued", "contact", contact, "code", code)
	return nil
}

// Challenge is an issued code awaiting verification. Only its hash is kept.
type Challenge struct {
	Contact   string
	ExpiresAt time.Time
	hash      []byte
}

// OTPIssuer generates, sends and verifies six-digit codes.
type OTPIssuer struct {
	sender   Sender
	cost     int
	ttl      time.Duration
	generate func() (string, error)
	now      func() time.Time
}

// NewOTPIssuer creates an issuer hashing codes at the given bcrypt cost.
func NewOTPIssuer(sender Sender, bcryptCost int, ttl time.Duration) *OTPIssuer {
	return &OTPIssuer{
		sender:   sender,
		cost:     bcryptCost,
		ttl:      ttl,
		generate: randomCode,
		now:      time.Now,
	}
}

// WithGenerator replaces the code generator. Intended for tests.
func (o *OTPIssuer) WithGenerator(fn func() (string, error)) *OTPIssuer {
	o.generate = fn
	return o
}

// WithClock replaces the time source. Intended for tests.
func (o *OTPIssuer) WithClock(now func() time.Time) *OTPIssuer {
	o.now = now
	return o
}

// Issue creates a code for contact and sends it.
func (o *OTPIssuer) Issue(ctx context.Context, contact string) (Challenge, error) {
	code, err := o.generate()
	if err != nil {
		return Challenge{}, fmt.Errorf("generate otp: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), o.cost)
	if err != nil {
		return Challenge{}, fmt.Errorf("hash otp: %w", err)
	}

	if err := o.sender.Send(ctx, contact, code); err != nil {
		return Challenge{}, fmt.Errorf("send otp: %w", err)
	}

	return Challenge{
		Contact:   contact,
		ExpiresAt: o.now().Add(o.ttl),
		hash:      hash,
	}, nil
}

// Verify checks code against the challenge.
func (o *OTPIssuer) Verify(ch Challenge, code string) error {
	if o.now().After(ch.ExpiresAt) {
		return domain.ErrOTPExpired
	}
	if err := bcrypt.CompareHashAndPassword(ch.hash, []byte(code)); err != nil {
		return domain.ErrOTPMismatch
	}
	return nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
