package view

import (
	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
)

// FlowFields are the client-side signals one identity modal binds to. The
// page declares one set per screen, keyed by screen name.
type FlowFields struct {
	Identifier   string `json:"identifier"`
	Terms        bool   `json:"terms"`
	Mobile       string `json:"mobile"`
	OTP          string `json:"otp"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Email        string `json:"email"`
	RegMobile    string `json:"regmobile"`
	DobDay       string `json:"dobday"`
	DobMonth     string `json:"dobmonth"`
	DobYear      string `json:"dobyear"`
	Gender       string `json:"gender"`
	BloodGroup   string `json:"bloodgroup"`
	State        string `json:"state"`
	District     string `json:"district"`
	AreaType     string `json:"areatype"`
	ULB          string `json:"ulb"`
	Block        string `json:"block"`
	Panchayat    string `json:"panchayat"`
	Village      string `json:"village"`
	Pincode      string `json:"pincode"`
	YouthType    string `json:"youthtype"`
	SportsTalent string `json:"sportstalent"`
	KheloIndia   bool   `json:"khelo"`
	Username     string `json:"username"`
}

// FlowSignals is the full signal tree posted by the identity modals.
type FlowSignals struct {
	Header FlowFields `json:"header"`
	Hero   FlowFields `json:"hero"`
}

func initialFlowSignals() FlowSignals {
	return FlowSignals{
		Header: FlowFields{AreaType: string(domain.AreaUrban)},
		Hero:   FlowFields{AreaType: string(domain.AreaUrban)},
	}
}

// For returns the fields of one screen.
func (s FlowSignals) For(screen flow.Screen) FlowFields {
	if screen == flow.ScreenHero {
		return s.Hero
	}
	return s.Header
}

// ClearedFlowSignals is the signal patch that empties one screen's inputs
// once its modal closes.
func ClearedFlowSignals(screen flow.Screen) map[string]FlowFields {
	return map[string]FlowFields{string(screen): {AreaType: string(domain.AreaUrban)}}
}
