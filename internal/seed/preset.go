package seed

import (
	"fmt"
	"os"

	"ootd/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Preset is a curated starter wardrobe loaded from a YAML file. Unlike
// the random factories, presets are deterministic and human-authored,
// so demo environments always start with the same recognizable closet.
type Preset struct {
	User struct {
		Email       string `yaml:"email"`
		DisplayName string `yaml:"display_name"`
		AvatarURL   string `yaml:"avatar_url"`
	} `yaml:"user"`
	Items []struct {
		Name        string   `yaml:"name"`
		Category    string   `yaml:"category"`
		Color       string   `yaml:"color"`
		Season      string   `yaml:"season"`
		WarmthLevel int      `yaml:"warmth_level"`
		Formality   string   `yaml:"formality"`
		Tags        []string `yaml:"tags"`
	} `yaml:"items"`
	Outfits []struct {
		Name           string   `yaml:"name"`
		EventType      string   `yaml:"event_type"`
		Mood           string   `yaml:"mood"`
		WeatherSummary string   `yaml:"weather_summary"`
		Favorite       bool     `yaml:"favorite"`
		Items          []string `yaml:"items"` // item names, in wear order
	} `yaml:"outfits"`
	Collections []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Tags        []string `yaml:"tags"`
		Outfits     []string `yaml:"outfits"` // outfit names
	} `yaml:"collections"`
}

// LoadPreset parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	if p.User.Email == "" {
		return nil, fmt.Errorf("preset: user.email is required")
	}
	return &p, nil
}

// Apply persists the preset's user, closet, outfits and collections.
// Item and outfit references resolve by name within the preset; a
// dangling reference fails the whole apply rather than seeding a
// partial wardrobe.
func (p *Preset) Apply(db *gorm.DB) (*models.User, error) {
	user := &models.User{
		Email:       p.User.Email,
		DisplayName: p.User.DisplayName,
		AvatarURL:   p.User.AvatarURL,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}

	itemsByName := make(map[string]*models.ClothingItem, len(p.Items))
	for _, it := range p.Items {
		category := it.Category
		if category == "" {
			category = models.CategoryOther
		}
		item := &models.ClothingItem{
			UserID:      user.ID,
			Name:        it.Name,
			Category:    category,
			Color:       it.Color,
			Season:      it.Season,
			WarmthLevel: it.WarmthLevel,
			Formality:   it.Formality,
			Tags:        it.Tags,
		}
		if err := db.Create(item).Error; err != nil {
			return nil, err
		}
		itemsByName[it.Name] = item
	}

	outfitsByName := make(map[string]*models.Outfit, len(p.Outfits))
	for _, of := range p.Outfits {
		outfit := &models.Outfit{
			UserID:         user.ID,
			Name:           of.Name,
			EventType:      of.EventType,
			Mood:           of.Mood,
			WeatherSummary: of.WeatherSummary,
			IsFavorite:     of.Favorite,
		}
		for i, itemName := range of.Items {
			item, ok := itemsByName[itemName]
			if !ok {
				return nil, fmt.Errorf("preset: outfit %q references unknown item %q", of.Name, itemName)
			}
			outfit.Items = append(outfit.Items, models.OutfitItem{ItemID: item.ID, Position: i})
		}
		if err := db.Create(outfit).Error; err != nil {
			return nil, err
		}
		outfitsByName[of.Name] = outfit
	}

	for _, col := range p.Collections {
		collection := &models.Collection{
			UserID:      user.ID,
			Name:        col.Name,
			Description: col.Description,
			Tags:        col.Tags,
		}
		if err := db.Create(collection).Error; err != nil {
			return nil, err
		}
		for _, outfitName := range col.Outfits {
			outfit, ok := outfitsByName[outfitName]
			if !ok {
				return nil, fmt.Errorf("preset: collection %q references unknown outfit %q", col.Name, outfitName)
			}
			if err := db.Model(collection).Association("Outfits").Append(outfit); err != nil {
				return nil, err
			}
		}
	}

	return user, nil
}
