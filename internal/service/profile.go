package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/msomdec/youth-portal/internal/domain"
)

// SessionUser is the logged-in state of one client.
type SessionUser interface {
	User() (domain.User, bool)
	Login(user domain.User)
}

// CurrentSlot is the client's persistent current-user record.
type CurrentSlot interface {
	Current(ctx context.Context) (domain.User, bool)
	OverwriteCurrent(ctx context.Context, user domain.User)
}

// ProfileService loads and saves the user record behind the profile and
// basic-info pages. The session and the current slot are written together;
// the stored users list is never touched.
type ProfileService struct{}

// NewProfileService creates a new ProfileService.
func NewProfileService() *ProfileService {
	return &ProfileService{}
}

// Load returns the session user, falling back to the current slot and then
// to an empty record.
func (s *ProfileService) Load(ctx context.Context, sess SessionUser, slot CurrentSlot) domain.User {
	if u, ok := sess.User(); ok {
		return u.Normalize()
	}
	if u, ok := slot.Current(ctx); ok {
		return u.Normalize()
	}
	return domain.User{}.Normalize()
}

// Save writes user to both the session and the current slot. A record
// without an ID gets a fresh one so quiz attempts can be attributed to it.
func (s *ProfileService) Save(ctx context.Context, sess SessionUser, slot CurrentSlot, user domain.User) domain.User {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user = user.Normalize()
	sess.Login(user)
	slot.OverwriteCurrent(ctx, user)
	return user
}

// ProfileUpdate holds the fields editable on the profile page.
type ProfileUpdate struct {
	FirstName              string
	LastName               string
	Email                  string
	Mobile                 string
	DateOfBirth            domain.DateOfBirth
	Gender                 string
	BloodGroup             string
	AreaType               domain.AreaType
	YouthType              string
	SportsTalent           string
	KheloIndiaParticipant  bool
	AreaOfInterest         string
	EducationQualification string
	Languages              []string
	ProfessionalSummary    string
}

// Apply returns u with the update's fields written over it. Switching the
// area type clears the location fields owned by the other area.
func (p ProfileUpdate) Apply(u domain.User) domain.User {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.Email = p.Email
	u.Mobile = p.Mobile
	u.DateOfBirth = p.DateOfBirth
	u.Gender = p.Gender
	u.BloodGroup = p.BloodGroup
	u.YouthType = p.YouthType
	u.SportsTalent = p.SportsTalent
	u.KheloIndiaParticipant = p.KheloIndiaParticipant
	u.AreaOfInterest = p.AreaOfInterest
	u.EducationQualification = p.EducationQualification
	u.Languages = p.Languages
	u.ProfessionalSummary = p.ProfessionalSummary

	switch p.AreaType {
	case domain.AreaRural:
		if u.AreaType != domain.AreaRural {
			u.ULB = ""
		}
		u.AreaType = domain.AreaRural
	default:
		if u.AreaType == domain.AreaRural {
			u.Block, u.Panchayat, u.Village = "", "", ""
		}
		u.AreaType = domain.AreaUrban
	}
	return u.Normalize()
}

// BasicInfoUpdate holds the fields editable on the basic-info page. The
// username is shown but not editable.
type BasicInfoUpdate struct {
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	Gender      string
	DateOfBirth domain.DateOfBirth
	BloodGroup  string
	State       string
	District    string
	Pincode     string
}

// Apply returns u with the update's fields written over it.
func (b BasicInfoUpdate) Apply(u domain.User) domain.User {
	u.FirstName = b.FirstName
	u.LastName = b.LastName
	u.Email = b.Email
	u.Mobile = b.Mobile
	u.Gender = b.Gender
	u.DateOfBirth = b.DateOfBirth
	u.BloodGroup = b.BloodGroup
	u.State = b.State
	u.District = b.District
	u.Pincode = b.Pincode
	return u.Normalize()
}
