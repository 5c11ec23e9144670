package domain

// AreaType classifies where a user lives. Each type owns its own
// location sub-fields on User.
type AreaType string

const (
	AreaUrban AreaType = "urban"
	AreaRural AreaType = "rural"
)

// DateOfBirth keeps the three parts as entered; none of them is validated.
type DateOfBirth struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// IsZero reports whether no part of the date has been set.
func (d DateOfBirth) IsZero() bool {
	return d.Day == "" && d.Month == "" && d.Year == ""
}

// User is the identity record created at registration and edited from the
// profile pages. Records are serialized as JSON into the client's local
// storage, so the field names follow the camelCase keys used there.
type User struct {
	ID                     string      `json:"id"`
	FirstName              string      `json:"firstName"`
	LastName               string      `json:"lastName"`
	Email                  string      `json:"email"`
	Mobile                 string      `json:"mobile"`
	DateOfBirth            DateOfBirth `json:"dateOfBirth"`
	Gender                 string      `json:"gender"`
	BloodGroup             string      `json:"bloodGroup"`
	State                  string      `json:"state"`
	District               string      `json:"district"`
	AreaType               AreaType    `json:"areaType"`
	ULB                    string      `json:"ulb"`
	Block                  string      `json:"block"`
	Panchayat              string      `json:"panchayat"`
	Village                string      `json:"village"`
	Pincode                string      `json:"pincode"`
	YouthType              string      `json:"youthType"`
	SportsTalent           string      `json:"sportsTalent"`
	KheloIndiaParticipant  bool        `json:"kheloIndiaParticipant"`
	ProfileImage           string      `json:"profileImage"`
	Username               string      `json:"username"`
	AreaOfInterest         string      `json:"areaOfInterest"`
	EducationQualification string      `json:"educationQualification"`
	Languages              []string    `json:"languages"`
	ProfessionalSummary    string      `json:"professionalSummary"`
}

// DisplayName returns the name shown in the header avatar and certificates.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return u.Mobile
	}
}

// Initials returns up to two upper-case letters for the avatar fallback.
func (u User) Initials() string {
	var out []rune
	for _, part := range []string{u.FirstName, u.LastName} {
		for _, r := range part {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			out = append(out, r)
			break
		}
	}
	if len(out) == 0 {
		return "U"
	}
	return string(out)
}

// Normalize replaces nil collections and empty enumerations with their
// defaults so a stored record never carries null values.
func (u User) Normalize() User {
	if u.AreaType == "" {
		u.AreaType = AreaUrban
	}
	if u.Languages == nil {
		u.Languages = []string{}
	}
	return u
}
