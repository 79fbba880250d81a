package seed

import (
	"os"
	"path/filepath"
	"testing"

	"ootd/internal/database"
	"ootd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const presetYAML = `
user:
  email: demo@ootd.dev
  display_name: Demo Closet
items:
  - name: White Tee
    category: top
    color: white
    season: all
  - name: Black Jeans
    category: pants
    color: black
    warmth_level: 2
  - name: Leather Boots
    category: shoes
outfits:
  - name: Everyday Uniform
    mood: minimal
    weather_summary: Great for ~68°F
    favorite: true
    items: [White Tee, Black Jeans, Leather Boots]
collections:
  - name: Lisbon Trip
    tags: [Travel]
    outfits: [Everyday Uniform]
`

func openSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wardrobe.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreset_Apply(t *testing.T) {
	db := openSeedDB(t)

	preset, err := LoadPreset(writePreset(t, presetYAML))
	require.NoError(t, err)

	user, err := preset.Apply(db)
	require.NoError(t, err)
	assert.Equal(t, "demo@ootd.dev", user.Email)

	var outfit models.Outfit
	require.NoError(t, db.Preload("Items.Item").Where("name = ?", "Everyday Uniform").First(&outfit).Error)
	assert.True(t, outfit.IsFavorite)
	require.Len(t, outfit.Items, 3)
	assert.Equal(t, "White Tee", outfit.Items[0].Item.Name)
	assert.Equal(t, 2, outfit.Items[2].Position)

	var collection models.Collection
	require.NoError(t, db.Preload("Outfits").Where("name = ?", "Lisbon Trip").First(&collection).Error)
	assert.Equal(t, []string{"Travel"}, collection.Tags)
	require.Len(t, collection.Outfits, 1)
}

func TestPreset_DanglingItemReference(t *testing.T) {
	db := openSeedDB(t)

	bad := `
user:
  email: demo@ootd.dev
outfits:
  - name: Ghost Outfit
    items: [Nonexistent]
`
	preset, err := LoadPreset(writePreset(t, bad))
	require.NoError(t, err)

	_, err = preset.Apply(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown item")
}

func TestLoadPreset_RequiresEmail(t *testing.T) {
	_, err := LoadPreset(writePreset(t, "items: []\n"))
	require.Error(t, err)
}

func TestSeeder_Run(t *testing.T) {
	db := openSeedDB(t)
	s := NewSeeder(db)

	err := s.Run(Options{
		NumUsers:       2,
		ItemsPerUser:   6,
		OutfitsPerUser: 3,
		PostsPerUser:   1,
	})
	require.NoError(t, err)

	var users, items, outfits, posts int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.ClothingItem{}).Count(&items)
	db.Model(&models.Outfit{}).Count(&outfits)
	db.Model(&models.Post{}).Count(&posts)

	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(12), items)
	assert.Equal(t, int64(6), outfits)
	assert.Equal(t, int64(2), posts)
}
