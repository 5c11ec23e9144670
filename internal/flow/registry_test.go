package flow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/youth-portal/internal/flow"
)

func TestRegistryScreensAreIndependent(t *testing.T) {
	r := flow.NewRegistry(flow.NewOTPIssuer(&recordingSender{}, 4, time.Minute), time.Hour)

	header := r.Get("client-a", flow.ScreenHeader)
	hero := r.Get("client-a", flow.ScreenHero)
	other := r.Get("client-b", flow.ScreenHeader)

	header.OpenLogin()
	assert.Equal(t, flow.Login, header.State())
	assert.Equal(t, flow.Closed, hero.State())
	assert.Equal(t, flow.Closed, other.State())

	assert.Same(t, header, r.Get("client-a", flow.ScreenHeader))
	assert.Equal(t, 3, r.Len())

	_, ok := r.Peek("client-c", flow.ScreenHero)
	assert.False(t, ok)
}
