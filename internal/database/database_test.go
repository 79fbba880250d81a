package database

import (
	"testing"
	"time"

	"ootd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestMigrate_CreatesSchema(t *testing.T) {
	db := openMemoryDB(t)

	for _, table := range []string{
		"users", "clothing_items", "outfits", "outfit_items",
		"collections", "collection_outfits", "posts", "reactions",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestMigrate_ReactionUniquenessConstraint(t *testing.T) {
	db := openMemoryDB(t)

	r := models.Reaction{PostID: 1, UserID: 2, Kind: models.ReactionLike, CreatedAt: time.Now()}
	require.NoError(t, db.Create(&r).Error)

	dup := models.Reaction{PostID: 1, UserID: 2, Kind: models.ReactionLike, CreatedAt: time.Now()}
	assert.Error(t, db.Create(&dup).Error, "duplicate (post, user, kind) must be rejected")

	other := models.Reaction{PostID: 1, UserID: 2, Kind: models.ReactionSave, CreatedAt: time.Now()}
	assert.NoError(t, db.Create(&other).Error, "a different kind for the same pair is allowed")
}
