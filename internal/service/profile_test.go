package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/localstore"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/session"
)

func TestProfileService_LoadFallbacks(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProfileService()
	store := localstore.New(newTestDB(t).LocalStorage(), "client-1")
	sess := session.NewContext()

	empty := svc.Load(ctx, sess, store)
	assert.Equal(t, "", empty.FirstName)
	assert.Equal(t, domain.AreaUrban, empty.AreaType)

	store.OverwriteCurrent(ctx, domain.User{ID: "slot", FirstName: "Slot"})
	assert.Equal(t, "Slot", svc.Load(ctx, sess, store).FirstName)

	sess.Login(domain.User{ID: "sess", FirstName: "Session"})
	assert.Equal(t, "Session", svc.Load(ctx, sess, store).FirstName)
}

func TestProfileService_SaveLeavesUsersSequence(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProfileService()
	store := localstore.New(newTestDB(t).LocalStorage(), "client-1")
	sess := session.NewContext()

	original := domain.User{ID: "u1", FirstName: "Asha", Mobile: "9876543210"}
	store.Append(ctx, original)
	sess.Login(original)

	updated := service.ProfileUpdate{FirstName: "Asha Devi", Mobile: "9876543210", Languages: []string{"telugu"}}.
		Apply(svc.Load(ctx, sess, store))
	svc.Save(ctx, sess, store, updated)

	u, ok := sess.User()
	assert.True(t, ok)
	assert.Equal(t, "Asha Devi", u.FirstName)

	cur, ok := store.Current(ctx)
	assert.True(t, ok)
	assert.Equal(t, "Asha Devi", cur.FirstName)
	assert.Equal(t, []string{"telugu"}, cur.Languages)

	users := store.ListAll(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, "Asha", users[0].FirstName)
}

func TestProfileUpdate_AreaSwitchClearsOtherFields(t *testing.T) {
	rural := domain.User{AreaType: domain.AreaRural, Block: "b", Panchayat: "p", Village: "v"}
	u := service.ProfileUpdate{AreaType: domain.AreaUrban}.Apply(rural)
	assert.Equal(t, domain.AreaUrban, u.AreaType)
	assert.Empty(t, u.Block)
	assert.Empty(t, u.Village)

	urban := domain.User{AreaType: domain.AreaUrban, ULB: "warangal-municipal"}
	u = service.ProfileUpdate{AreaType: domain.AreaRural}.Apply(urban)
	assert.Equal(t, domain.AreaRural, u.AreaType)
	assert.Empty(t, u.ULB)
}

func TestBasicInfoUpdate_KeepsUsername(t *testing.T) {
	u := service.BasicInfoUpdate{FirstName: "Ravi", District: "warangal"}.
		Apply(domain.User{Username: "ravi01", YouthType: "nss"})
	assert.Equal(t, "ravi01", u.Username)
	assert.Equal(t, "nss", u.YouthType)
	assert.Equal(t, "warangal", u.District)
}

func TestProfileService_SaveAssignsID(t *testing.T) {
	ctx := context.Background()
	svc := service.NewProfileService()
	store := localstore.New(newTestDB(t).LocalStorage(), "client-1")
	sess := session.NewContext()

	saved := svc.Save(ctx, sess, store, domain.User{FirstName: "New"})
	assert.NotEmpty(t, saved.ID)

	again := svc.Save(ctx, sess, store, saved)
	assert.Equal(t, saved.ID, again.ID)
}
