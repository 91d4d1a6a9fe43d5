package database

import (
	"fmt"
	"testing"

	"cardledger/internal/config"
	"cardledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

// CreateTestAccount inserts a minimal valid account for the given user
func CreateTestAccount(t *testing.T, db *DB, userID uuid.UUID, name string, position int) *models.Account {
	t.Helper()

	account := &models.Account{
		UserID:                userID,
		AccountName:           name,
		CreditLimit:           decimal.NewFromInt(5000),
		AmountOwed:            decimal.NewFromInt(1200),
		MinimumMonthlyPayment: decimal.NewFromInt(35),
		Position:              position,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"accounts",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
