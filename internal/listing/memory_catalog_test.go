package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hazelview_backend/internal/model"
	"hazelview_backend/internal/settings"
)

func seedScenario(t *testing.T) (*MemoryCatalog, model.Property, model.Property) {
	t.Helper()
	catalog := NewMemoryCatalog()

	a, err := catalog.Create(model.Property{
		Title:     "Property A",
		Status:    model.PropertyStatusAvailable,
		Published: true,
		Price:     450000,
		Address:   "1 First St",
		City:      "Austin",
		Bedrooms:  2,
	})
	require.NoError(t, err)

	// B daha sonra güncellenmiş sayılır
	time.Sleep(2 * time.Millisecond)

	b, err := catalog.Create(model.Property{
		Title:     "Property B",
		Status:    model.PropertyStatusSold,
		Published: true,
		Price:     1200000,
		Address:   "2 Second St",
		City:      "Austin",
		Bedrooms:  4,
	})
	require.NoError(t, err)

	return catalog, a, b
}

func TestQueryVisibilityScenario(t *testing.T) {
	catalog, a, b := seedScenario(t)

	t.Run("public with policy show returns both, recency first", func(t *testing.T) {
		results, err := catalog.Query(Criteria{Sort: SortUpdated, Descending: true}, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Equal(t, []uint{b.ID, a.ID}, ids(results))
		assert.Equal(t, model.PropertyStatusSold, results[0].Status)
	})

	t.Run("public with policy hide drops sold", func(t *testing.T) {
		results, err := catalog.Query(Criteria{}, ContextPublic, settings.VisibilityHide)
		require.NoError(t, err)
		assert.Equal(t, []uint{a.ID}, ids(results))
	})

	t.Run("admin sees both regardless of policy", func(t *testing.T) {
		results, err := catalog.Query(Criteria{Sort: SortUpdated, Descending: true}, ContextAdmin, settings.VisibilityHide)
		require.NoError(t, err)
		assert.Equal(t, []uint{b.ID, a.ID}, ids(results))
	})
}

func TestQueryPublicationInvariant(t *testing.T) {
	catalog, _, _ := seedScenario(t)

	unpublished, err := catalog.Create(model.Property{
		Title:     "Hidden draft",
		Status:    model.PropertyStatusAvailable,
		Published: false,
		Price:     1,
	})
	require.NoError(t, err)

	// Draft hiçbir filtre kombinasyonunda public sonuçlara giremez
	criteria := []Criteria{
		{},
		{MaxPrice: floatPtr(10)},
		{Search: "hidden"},
	}
	for _, c := range criteria {
		results, err := catalog.Query(c, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.NotContains(t, ids(results), unpublished.ID)
	}

	results, err := catalog.Query(Criteria{}, ContextAdmin, settings.VisibilityShow)
	require.NoError(t, err)
	assert.Contains(t, ids(results), unpublished.ID)
}

func TestQueryRangeFilters(t *testing.T) {
	catalog, a, b := seedScenario(t)

	t.Run("price range bounds are inclusive", func(t *testing.T) {
		results, err := catalog.Query(Criteria{MinPrice: floatPtr(450000), MaxPrice: floatPtr(1200000)}, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Len(t, results, 2)
		for _, p := range results {
			assert.GreaterOrEqual(t, p.Price, 450000.0)
			assert.LessOrEqual(t, p.Price, 1200000.0)
		}
	})

	t.Run("narrow range keeps only matching", func(t *testing.T) {
		results, err := catalog.Query(Criteria{MaxPrice: floatPtr(500000)}, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Equal(t, []uint{a.ID}, ids(results))
	})

	t.Run("inverted range yields empty result, not error", func(t *testing.T) {
		results, err := catalog.Query(Criteria{MinPrice: floatPtr(2000000), MaxPrice: floatPtr(100)}, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("bedroom exact match as degenerate range", func(t *testing.T) {
		results, err := catalog.Query(Criteria{MinBedrooms: intPtr(4), MaxBedrooms: intPtr(4)}, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Equal(t, []uint{b.ID}, ids(results))
	})
}

func TestQueryIdempotentOrdering(t *testing.T) {
	catalog, _, _ := seedScenario(t)
	criteria := Criteria{Sort: SortPrice, Descending: false}

	first, err := catalog.Query(criteria, ContextPublic, settings.VisibilityShow)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := catalog.Query(criteria, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Equal(t, ids(first), ids(again))
	}
}

func TestGetRespectsPolicy(t *testing.T) {
	catalog, a, b := seedScenario(t)

	unpublished, err := catalog.Create(model.Property{
		Title:     "Pocket listing",
		Status:    model.PropertyStatusAvailable,
		Published: false,
	})
	require.NoError(t, err)

	t.Run("public gets published available", func(t *testing.T) {
		got, err := catalog.Get(a.ID, ContextPublic, settings.VisibilityShow)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("public gets not-found for unpublished by direct id", func(t *testing.T) {
		_, err := catalog.Get(unpublished.ID, ContextPublic, settings.VisibilityShow)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("public gets not-found for sold under hide policy", func(t *testing.T) {
		_, err := catalog.Get(b.ID, ContextPublic, settings.VisibilityHide)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("admin fetches anything by id", func(t *testing.T) {
		got, err := catalog.Get(unpublished.ID, ContextAdmin, settings.VisibilityHide)
		require.NoError(t, err)
		assert.Equal(t, unpublished.ID, got.ID)

		got, err = catalog.Get(b.ID, ContextAdmin, settings.VisibilityHide)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := catalog.Get(9999, ContextAdmin, settings.VisibilityShow)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestImageOrderingRoundTrip(t *testing.T) {
	catalog := NewMemoryCatalog()

	created, err := catalog.Create(model.Property{
		Title:     "Gallery house",
		Status:    model.PropertyStatusAvailable,
		Published: true,
		Images: []model.PropertyImage{
			{URL: "two.jpg", Order: 2},
			{URL: "zero.jpg", Order: 0},
			{URL: "one.jpg", Order: 1},
		},
	})
	require.NoError(t, err)

	got, err := catalog.Get(created.ID, ContextPublic, settings.VisibilityShow)
	require.NoError(t, err)
	require.Len(t, got.Images, 3)
	assert.Equal(t, "zero.jpg", got.Images[0].URL)
	assert.Equal(t, "one.jpg", got.Images[1].URL)
	assert.Equal(t, "two.jpg", got.Images[2].URL)
}

func TestCascadeDelete(t *testing.T) {
	catalog := NewMemoryCatalog()

	created, err := catalog.Create(model.Property{
		Title:     "Short-lived",
		Status:    model.PropertyStatusAvailable,
		Published: true,
		Images: []model.PropertyImage{
			{URL: "a.jpg", Order: 0},
			{URL: "b.jpg", Order: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(created.ID))

	_, err = catalog.Get(created.ID, ContextAdmin, settings.VisibilityShow)
	assert.ErrorIs(t, err, ErrNotFound)

	images, err := catalog.Images(created.ID)
	require.NoError(t, err)
	assert.Empty(t, images)

	assert.ErrorIs(t, catalog.Delete(created.ID), ErrNotFound)
}

func TestPartialUpdate(t *testing.T) {
	catalog, a, _ := seedScenario(t)

	t.Run("only supplied fields change", func(t *testing.T) {
		updated, err := catalog.Update(a.ID, PropertyUpdate{Price: floatPtr(475000)})
		require.NoError(t, err)
		assert.Equal(t, 475000.0, updated.Price)
		assert.Equal(t, "Property A", updated.Title)
		assert.Equal(t, model.PropertyStatusAvailable, updated.Status)
	})

	t.Run("status transition to sold", func(t *testing.T) {
		updated, err := catalog.Update(a.ID, PropertyUpdate{Status: statusPtr(model.PropertyStatusSold)})
		require.NoError(t, err)
		assert.Equal(t, model.PropertyStatusSold, updated.Status)

		// Artık hide politikasında public listede yok
		results, err := catalog.Query(Criteria{}, ContextPublic, settings.VisibilityHide)
		require.NoError(t, err)
		assert.NotContains(t, ids(results), a.ID)
	})

	t.Run("supplied images fully replace existing", func(t *testing.T) {
		_, err := catalog.AddImage(a.ID, model.PropertyImage{URL: "old.jpg", Order: 0})
		require.NoError(t, err)

		newImages := []model.PropertyImage{
			{URL: "new-1.jpg", Order: 0},
			{URL: "new-2.jpg", Order: 1},
		}
		updated, err := catalog.Update(a.ID, PropertyUpdate{Images: &newImages})
		require.NoError(t, err)
		require.Len(t, updated.Images, 2)
		assert.Equal(t, "new-1.jpg", updated.Images[0].URL)
		assert.Equal(t, "new-2.jpg", updated.Images[1].URL)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := catalog.Update(9999, PropertyUpdate{Price: floatPtr(1)})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAddAndDeleteImage(t *testing.T) {
	catalog, a, _ := seedScenario(t)

	img, err := catalog.AddImage(a.ID, model.PropertyImage{URL: "porch.jpg", Order: 0, Caption: "Front porch"})
	require.NoError(t, err)
	assert.NotZero(t, img.ID)
	assert.Equal(t, a.ID, img.PropertyID)

	require.NoError(t, catalog.DeleteImage(img.ID))
	assert.ErrorIs(t, catalog.DeleteImage(img.ID), ErrImageNotFound)

	_, err = catalog.AddImage(9999, model.PropertyImage{URL: "x.jpg"})
	assert.ErrorIs(t, err, ErrNotFound)
}
