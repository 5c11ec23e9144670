package flow

import (
	"strings"

	"github.com/msomdec/youth-portal/internal/domain"
)

// RegistrationForm is the typed registration record. Location sub-fields
// depend on the area type and are only set through SetAreaType and its
// helpers, so a form never carries both sets.
type RegistrationForm struct {
	FirstName             string
	LastName              string
	Email                 string
	Mobile                string
	Gender                string
	BloodGroup            string
	State                 string
	District              string
	Pincode               string
	YouthType             string
	SportsTalent          string
	KheloIndiaParticipant bool
	Username              string

	dob       domain.DateOfBirth
	area      domain.AreaType
	ulb       string
	block     string
	panchayat string
	village   string
}

// SetDateOfBirth sets all three parts of the date of birth.
func (f *RegistrationForm) SetDateOfBirth(day, month, year string) {
	f.dob = domain.DateOfBirth{Day: day, Month: month, Year: year}
}

// DateOfBirth returns the date of birth as entered.
func (f RegistrationForm) DateOfBirth() domain.DateOfBirth { return f.dob }

// SetAreaType switches the area and clears the sub-fields owned by the
// other one. Urban owns the ULB; rural owns block, panchayat and village.
func (f *RegistrationForm) SetAreaType(area domain.AreaType) {
	if area != domain.AreaRural {
		area = domain.AreaUrban
	}
	f.area = area
	if area == domain.AreaUrban {
		f.block, f.panchayat, f.village = "", "", ""
	} else {
		f.ulb = ""
	}
}

// SetUrbanArea marks the user as urban with the given ULB.
func (f *RegistrationForm) SetUrbanArea(ulb string) {
	f.SetAreaType(domain.AreaUrban)
	f.ulb = ulb
}

// SetRuralArea marks the user as rural with the given location.
func (f *RegistrationForm) SetRuralArea(block, panchayat, village string) {
	f.SetAreaType(domain.AreaRural)
	f.block, f.panchayat, f.village = block, panchayat, village
}

// AreaType returns the selected area, urban when none was chosen.
func (f RegistrationForm) AreaType() domain.AreaType {
	if f.area == "" {
		return domain.AreaUrban
	}
	return f.area
}

func (f RegistrationForm) ULB() string       { return f.ulb }
func (f RegistrationForm) Block() string     { return f.block }
func (f RegistrationForm) Panchayat() string { return f.panchayat }
func (f RegistrationForm) Village() string   { return f.village }

// FieldError reports a required field left empty.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required." }

func (e *FieldError) Unwrap() error { return domain.ErrInvalidInput }

// Validate checks the fields the registration step cannot proceed without.
func (f RegistrationForm) Validate() error {
	switch {
	case strings.TrimSpace(f.FirstName) == "":
		return &FieldError{Field: "First name"}
	case strings.TrimSpace(f.Mobile) == "":
		return &FieldError{Field: "Mobile number"}
	}
	return nil
}

// User builds the full record. Every field the form did not set is left
// at its empty default.
func (f RegistrationForm) User(id string) domain.User {
	return domain.User{
		ID:                    id,
		FirstName:             strings.TrimSpace(f.FirstName),
		LastName:              strings.TrimSpace(f.LastName),
		Email:                 strings.TrimSpace(f.Email),
		Mobile:                strings.TrimSpace(f.Mobile),
		DateOfBirth:           f.dob,
		Gender:                f.Gender,
		BloodGroup:            f.BloodGroup,
		State:                 f.State,
		District:              f.District,
		AreaType:              f.AreaType(),
		ULB:                   f.ulb,
		Block:                 f.block,
		Panchayat:             f.panchayat,
		Village:               f.village,
		Pincode:               strings.TrimSpace(f.Pincode),
		YouthType:             f.YouthType,
		SportsTalent:          f.SportsTalent,
		KheloIndiaParticipant: f.KheloIndiaParticipant,
		Username:              strings.TrimSpace(f.Username),
		Languages:             []string{},
	}
}
