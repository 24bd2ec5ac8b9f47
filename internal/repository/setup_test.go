package repository

import (
	"context"
	"testing"

	"github.com/nimasrn/biztime/pkg/pg"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testDB struct {
	*pg.DB
	rawDB *gorm.DB
}

func setupTestDB(t *testing.T) *testDB {
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every connection to :memory: is a fresh database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(Entities()...)
	require.NoError(t, err)

	return &testDB{
		DB:    pg.New(db, db),
		rawDB: db,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// seedCompanies inserts apple and ibm in that order.
func seedCompanies(t *testing.T, db *testDB) {
	ctx := context.Background()
	companies := []*CompanyEntity{
		{Code: "apple", Name: strPtr("Apple"), Description: strPtr("Maker of OSX.")},
		{Code: "ibm", Name: strPtr("IBM"), Description: strPtr("Big blue.")},
	}
	for _, c := range companies {
		require.NoError(t, db.Write(ctx).Create(c).Error)
	}
}
