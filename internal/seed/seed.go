package seed

import (
	"fmt"
	"log/slog"

	"ootd/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	ItemsPerUser   int
	OutfitsPerUser int
	PostsPerUser   int
	ShouldClean    bool
	PresetPath     string
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll truncates every seeded table.
func (s *Seeder) ClearAll() error {
	tables := []string{
		"reactions", "posts", "collection_outfits", "collections",
		"outfit_items", "outfits", "clothing_items", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}

// Run seeds the database per the options: an optional curated preset
// wardrobe first, then randomized users with closets, outfits,
// collections and feed posts.
func (s *Seeder) Run(opts Options) error {
	if opts.PresetPath != "" {
		preset, err := LoadPreset(opts.PresetPath)
		if err != nil {
			return err
		}
		user, err := preset.Apply(s.db)
		if err != nil {
			return fmt.Errorf("apply preset: %w", err)
		}
		slog.Info("applied preset wardrobe", "user", user.Email)
	}

	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		items := make([]*models.ClothingItem, 0, opts.ItemsPerUser)
		for j := 0; j < opts.ItemsPerUser; j++ {
			item, err := s.factory.CreateItem(user)
			if err != nil {
				return fmt.Errorf("create item: %w", err)
			}
			items = append(items, item)
		}

		outfits := make([]*models.Outfit, 0, opts.OutfitsPerUser)
		for j := 0; j < opts.OutfitsPerUser; j++ {
			picked := pickItems(items, 3+j%3)
			outfit, err := s.factory.CreateOutfit(user, picked)
			if err != nil {
				return fmt.Errorf("create outfit: %w", err)
			}
			outfits = append(outfits, outfit)
		}

		if len(outfits) > 0 {
			tags := [][]string{{"Travel"}, {"Holiday"}, {"Event"}, {"Daily"}}
			if _, err := s.factory.CreateCollection(user, outfits[:1], tags[i%len(tags)]); err != nil {
				return fmt.Errorf("create collection: %w", err)
			}

			for j := 0; j < opts.PostsPerUser && j < len(outfits); j++ {
				if _, err := s.factory.CreatePost(user, outfits[j]); err != nil {
					return fmt.Errorf("create post: %w", err)
				}
			}
		}

		slog.Info("seeded user wardrobe",
			"user", user.Email,
			"items", len(items),
			"outfits", len(outfits))
	}
	return nil
}

func pickItems(items []*models.ClothingItem, n int) []*models.ClothingItem {
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
