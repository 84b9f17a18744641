package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCommunityApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	cc := NewCommunityController(db)
	app.Get("/api/communities", cc.List)
	app.Get("/api/communities/:id", cc.Get)
	app.Put("/api/communities/:id", cc.Update)
	return app
}

func TestDemoCommunitiesCarryFetchableIDs(t *testing.T) {
	app := newCommunityApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/communities", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	require.NotEmpty(t, listed)

	// Listedeki her id tekil lookup ile geri okunabilmeli
	for _, community := range listed {
		id, ok := community["ID"].(float64)
		require.True(t, ok)
		require.NotZero(t, id)

		single, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/api/communities/%d", int(id)), nil))
		require.NoError(t, err)
		defer single.Body.Close()
		assert.Equal(t, fiber.StatusOK, single.StatusCode)

		var got map[string]interface{}
		require.NoError(t, json.NewDecoder(single.Body).Decode(&got))
		assert.Equal(t, community["name"], got["name"])
	}

	missing, err := app.Test(httptest.NewRequest("GET", "/api/communities/999", nil))
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, missing.StatusCode)
}

func TestUpdateCommunitySurfacesReloadFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := newCommunityApp(db)

	mock.ExpectQuery(`SELECT \* FROM "communities"`).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).
			AddRow(5, "Cedar Hollow", "cedar-hollow"))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "communities" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	// Güncelleme sonrası reload başarısız
	mock.ExpectQuery(`SELECT \* FROM "communities"`).
		WillReturnError(errors.New("connection reset"))

	raw, err := json.Marshal(map[string]interface{}{
		"name":      "Cedar Hollow",
		"price_min": 320000,
		"price_max": 560000,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/communities/5", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
