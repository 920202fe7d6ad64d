package state_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberflow/salon-api/internal/state"
)

func TestMemoryStore_Roundtrip(t *testing.T) {
	st := state.NewMemoryStore()
	ctx := context.Background()

	_, ok, err := st.Load(ctx, state.KeyBookings)
	require.NoError(t, err)
	assert.False(t, ok, "unwritten key is absent")

	require.NoError(t, st.Save(ctx, state.KeyBookings, []byte(`[{"id":"bk-1"}]`)))

	raw, ok, err := st.Load(ctx, state.KeyBookings)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"bk-1"}]`, string(raw))
}

func TestLoadJSON_MissingKeyLeavesTargetUntouched(t *testing.T) {
	st := state.NewMemoryStore()

	out := []string{"seed"}
	ok := state.LoadJSON(context.Background(), st, state.KeyGallery, &out)

	assert.False(t, ok)
	assert.Equal(t, []string{"seed"}, out)
}

func TestLoadJSON_CorruptPayloadFallsBack(t *testing.T) {
	st := state.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, state.KeyGallery, []byte("{not json")))

	var out []string
	ok := state.LoadJSON(ctx, st, state.KeyGallery, &out)

	assert.False(t, ok, "corrupt payload reads as absent so callers re-seed")
}

func TestSaveJSON_Roundtrip(t *testing.T) {
	st := state.NewMemoryStore()
	ctx := context.Background()

	type rec struct {
		ID string `json:"id"`
	}

	state.SaveJSON(ctx, st, state.KeyServices, []rec{{ID: "s1"}})

	var out []rec
	ok := state.LoadJSON(ctx, st, state.KeyServices, &out)
	require.True(t, ok)
	assert.Equal(t, []rec{{ID: "s1"}}, out)
}
