package listing

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hazelview_backend/internal/settings"
)

func newMockCatalog(t *testing.T) (*GormCatalog, sqlmock.Sqlmock) {
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

	return NewGormCatalog(db), mock
}

func TestQueryEscapesSearchPattern(t *testing.T) {
	tests := []struct {
		name    string
		search  string
		pattern string
	}{
		{"percent is literal", "10%", `%10\%%`},
		{"underscore is literal", "unit_12", `%unit\_12%`},
		{"backslash is literal", `c:\photos`, `%c:\\photos%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, mock := newMockCatalog(t)

			mock.ExpectQuery(`SELECT \* FROM "properties"`).
				WithArgs(tt.pattern, tt.pattern, tt.pattern, true).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			_, err := catalog.Query(Criteria{Search: tt.search, Sort: SortUpdated, Descending: true},
				ContextPublic, settings.VisibilityShow)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQueryTitleSortIsCaseInsensitive(t *testing.T) {
	catalog, mock := newMockCatalog(t)

	mock.ExpectQuery(`ORDER BY LOWER\(title\) asc, id asc`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := catalog.Query(Criteria{Sort: SortTitle}, ContextPublic, settings.VisibilityShow)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
