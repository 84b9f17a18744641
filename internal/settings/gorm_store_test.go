package settings

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

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

	return NewGormStore(db), mock
}

func TestGormStoreSoldVisibilityDefault(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs(KeySoldVisibility, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

	assert.Equal(t, VisibilityShow, store.SoldVisibility())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreSoldVisibilityPersisted(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs(KeySoldVisibility, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, KeySoldVisibility, "hide"))

	assert.Equal(t, VisibilityHide, store.SoldVisibility())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreSoldVisibilityGarbageValue(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs(KeySoldVisibility, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(1, KeySoldVisibility, "maybe"))

	// Tanınmayan değer show'a düşer
	assert.Equal(t, VisibilityShow, store.SoldVisibility())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreUpsertInsertsWhenMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs("banner_text", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	setting, err := store.Upsert("banner_text", "Open house Saturday", "Homepage banner")
	require.NoError(t, err)
	assert.Equal(t, "banner_text", setting.Key)
	assert.Equal(t, "Open house Saturday", setting.Value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreUpsertUpdatesExisting(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "settings"`).
		WithArgs(KeySoldVisibility, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value"}).
			AddRow(3, KeySoldVisibility, "show"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := store.Upsert(KeySoldVisibility, "hide", "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
