package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberflow/salon-api/internal/catalog"
	"github.com/barberflow/salon-api/internal/httperr"
	"github.com/barberflow/salon-api/internal/state"
)

func newTestCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.New(context.Background(), state.NewMemoryStore())
}

func TestCatalog_SeedsWhenStoreEmpty(t *testing.T) {
	cat := newTestCatalog(t)

	assert.Len(t, cat.ListServices(), 4)
	assert.Len(t, cat.ListBarbers(), 3)

	svc, err := cat.GetService("s1")
	require.NoError(t, err)
	assert.Equal(t, "Classic Haircut", svc.Name)
	assert.Equal(t, 35.0, svc.Price)
}

func TestAddBarber_RosterDefaults(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	b, err := cat.AddBarber(ctx, catalog.BarberInput{
		Name:  "New Hire",
		Email: "new@yoursbeauty.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, b.Rating)
	assert.Equal(t, 0.0, b.Earnings)
	assert.Empty(t, b.OffDays)
	assert.True(t, b.Active)
}

func TestDeleteService_TombstoneStaysResolvable(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, cat.DeleteService(ctx, "s1"))

	// Gone from listings...
	for _, s := range cat.ListServices() {
		assert.NotEqual(t, "s1", s.ID)
	}

	// ...but historical booking references still resolve.
	svc, err := cat.GetService("s1")
	require.NoError(t, err)
	assert.False(t, svc.Active)

	// Deleting again is a not-found.
	err = cat.DeleteService(ctx, "s1")
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestDeleteBarber_Tombstone(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, cat.DeleteBarber(ctx, "b2"))
	assert.Len(t, cat.ListBarbers(), 2)

	b, err := cat.GetBarber("b2")
	require.NoError(t, err)
	assert.False(t, b.Active)
}

func TestUpdateService_PartialMerge(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	price := 40.0
	svc, err := cat.UpdateService(ctx, "s1", catalog.ServiceUpdate{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 40.0, svc.Price)
	assert.Equal(t, "Classic Haircut", svc.Name, "unset fields keep their values")

	bad := -5.0
	_, err = cat.UpdateService(ctx, "s1", catalog.ServiceUpdate{Price: &bad})
	assert.True(t, httperr.IsBusiness(err, "invalid_service"))
}

func TestUpdateProfile_MergesIntoRoster(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	name := "Marco R."
	specialties := []string{"Skin Fades"}
	b, err := cat.UpdateProfile(ctx, "b1", catalog.ProfileUpdate{
		Name:        &name,
		Specialties: &specialties,
	})
	require.NoError(t, err)
	assert.Equal(t, "Marco R.", b.Name)
	assert.Equal(t, []string{"Skin Fades"}, b.Specialties)

	// The roster view reflects the merge.
	got, err := cat.GetBarber("b1")
	require.NoError(t, err)
	assert.Equal(t, "Marco R.", got.Name)
	assert.Equal(t, "marco@yoursbeauty.com", got.Email, "untouched fields survive")
}

func TestSetBarberRating_OnlyTouchesRating(t *testing.T) {
	cat := newTestCatalog(t)
	ctx := context.Background()

	before, err := cat.GetBarber("b1")
	require.NoError(t, err)

	require.NoError(t, cat.SetBarberRating(ctx, "b1", 4.2))

	after, err := cat.GetBarber("b1")
	require.NoError(t, err)
	assert.Equal(t, 4.2, after.Rating)
	assert.Equal(t, before.Earnings, after.Earnings)
	assert.Equal(t, before.Name, after.Name)
}

func TestCatalog_PersistsAcrossReload(t *testing.T) {
	st := state.NewMemoryStore()
	ctx := context.Background()

	cat := catalog.New(ctx, st)
	_, err := cat.AddService(ctx, catalog.ServiceInput{
		Name:        "Hot Towel Refresh",
		Price:       15,
		DurationMin: 15,
		Icon:        "Wind",
	})
	require.NoError(t, err)
	require.NoError(t, cat.DeleteBarber(ctx, "b3"))

	reloaded := catalog.New(ctx, st)
	assert.Len(t, reloaded.ListServices(), 5)
	assert.Len(t, reloaded.ListBarbers(), 2)
}
