package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreVisibilityDefaultsToShow(t *testing.T) {
	store := NewMemoryStore()
	assert.Equal(t, VisibilityShow, store.SoldVisibility())
}

func TestMemoryStoreSetSoldVisibility(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.SetSoldVisibility(VisibilityHide))
	assert.Equal(t, VisibilityHide, store.SoldVisibility())

	require.NoError(t, store.SetSoldVisibility(VisibilityShow))
	assert.Equal(t, VisibilityShow, store.SoldVisibility())
}

func TestMemoryStoreUpsert(t *testing.T) {
	store := NewMemoryStore()

	created, err := store.Upsert("banner_text", "Open house", "Homepage banner")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	updated, err := store.Upsert("banner_text", "Closed", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Closed", updated.Value)
	// Boş description mevcut değeri korur
	assert.Equal(t, "Homepage banner", updated.Description)

	all, err := store.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestValidVisibility(t *testing.T) {
	assert.True(t, ValidVisibility(VisibilityShow))
	assert.True(t, ValidVisibility(VisibilityHide))
	assert.False(t, ValidVisibility(Visibility("maybe")))
	assert.False(t, ValidVisibility(Visibility("")))
}
