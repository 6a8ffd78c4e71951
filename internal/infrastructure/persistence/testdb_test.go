package persistence

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tradedesk/backend/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory SQLite database with the full schema
// migrated. Each call returns an isolated database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PartyModel{},
		&models.CommodityModel{},
		&models.PaymentTermModel{},
		&models.BankDetailsModel{},
		&models.ContractModel{},
	)
	require.NoError(t, err)

	return db
}
