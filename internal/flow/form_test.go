package flow_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
)

func TestSetAreaTypeClearsOtherArea(t *testing.T) {
	var f flow.RegistrationForm
	f.SetRuralArea("bella-mandal", "bela-panchayat", "bela-village")
	assert.Equal(t, domain.AreaRural, f.AreaType())

	f.SetUrbanArea("warangal-municipal")
	assert.Equal(t, domain.AreaUrban, f.AreaType())
	assert.Equal(t, "warangal-municipal", f.ULB())
	assert.Empty(t, f.Block())
	assert.Empty(t, f.Panchayat())
	assert.Empty(t, f.Village())

	f.SetAreaType(domain.AreaRural)
	assert.Empty(t, f.ULB())
}

func TestSetAreaTypeUnknownIsUrban(t *testing.T) {
	var f flow.RegistrationForm
	f.SetAreaType("suburban")
	assert.Equal(t, domain.AreaUrban, f.AreaType())
}

func TestFormUserCopiesFields(t *testing.T) {
	f := flow.RegistrationForm{
		FirstName:             " Asha ",
		LastName:              "Rao",
		Mobile:                "9876543210",
		District:              "warangal",
		YouthType:             "nss",
		KheloIndiaParticipant: true,
	}
	f.SetDateOfBirth("05", "11", "2001")
	f.SetRuralArea("warangal-mandal", "warangal-panchayat", "warangal-village")

	u := f.User("id-1")
	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, "Asha", u.FirstName)
	assert.Equal(t, domain.DateOfBirth{Day: "05", Month: "11", Year: "2001"}, u.DateOfBirth)
	assert.Equal(t, domain.AreaRural, u.AreaType)
	assert.Equal(t, "warangal-village", u.Village)
	assert.Empty(t, u.ULB)
	assert.True(t, u.KheloIndiaParticipant)
}

func TestValidateReportsField(t *testing.T) {
	err := flow.RegistrationForm{FirstName: "Asha"}.Validate()
	var fe *flow.FieldError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "Mobile number is required.", err.Error())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.NoError(t, flow.RegistrationForm{FirstName: "Asha", Mobile: "1"}.Validate())
}
