// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ootd/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var moods = []string{"sporty", "minimal", "trendy", "vintage", "date night", "office"}

var eventTypes = []string{"", "work", "date night", "travel", "brunch"}

var seasons = []string{"spring", "summer", "fall", "winter", "all"}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser persists a user with a generated profile.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Email:       gofakeit.Email(),
		DisplayName: gofakeit.FirstName() + " " + gofakeit.LastName(),
		AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", uuid.NewString()),
	}
	for _, o := range overrides {
		o(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateItem persists a clothing item for the user.
func (f *Factory) CreateItem(user *models.User, overrides ...func(*models.ClothingItem)) (*models.ClothingItem, error) {
	categories := []string{
		models.CategoryTop, models.CategoryPants, models.CategoryDress,
		models.CategoryOuterwear, models.CategoryShoes, models.CategoryAccessory,
	}
	item := &models.ClothingItem{
		UserID:          user.ID,
		Name:            gofakeit.AdjectiveDescriptive() + " " + gofakeit.NounConcrete(),
		Category:        categories[f.rand.Intn(len(categories))],
		Color:           gofakeit.Color(),
		Season:          seasons[f.rand.Intn(len(seasons))],
		WarmthLevel:     1 + f.rand.Intn(5),
		PrimaryImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/600/800", uuid.NewString()),
	}
	for _, o := range overrides {
		o(item)
	}
	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CreateOutfit persists an outfit built from the given items, preserving
// their order. Roughly a third of generated outfits carry a weather hint
// so today's picks has something to score.
func (f *Factory) CreateOutfit(user *models.User, items []*models.ClothingItem, overrides ...func(*models.Outfit)) (*models.Outfit, error) {
	outfit := &models.Outfit{
		UserID:    user.ID,
		Name:      gofakeit.AdjectiveDescriptive() + " " + gofakeit.NounAbstract(),
		Mood:      moods[f.rand.Intn(len(moods))],
		EventType: eventTypes[f.rand.Intn(len(eventTypes))],
		CreatedAt: time.Now().Add(-time.Duration(f.rand.Intn(120*24)) * time.Hour),
	}
	if f.rand.Intn(3) == 0 {
		outfit.WeatherSummary = fmt.Sprintf("Great for ~%d°F", 45+f.rand.Intn(50))
	}
	if f.rand.Intn(4) == 0 {
		outfit.IsFavorite = true
	}
	if f.rand.Intn(2) == 0 {
		worn := time.Now().Add(-time.Duration(f.rand.Intn(30*24)) * time.Hour)
		outfit.LastWornAt = &worn
	}
	for i, item := range items {
		outfit.Items = append(outfit.Items, models.OutfitItem{ItemID: item.ID, Position: i})
	}
	for _, o := range overrides {
		o(outfit)
	}
	if err := f.db.Create(outfit).Error; err != nil {
		return nil, err
	}
	return outfit, nil
}

// CreateCollection persists a collection over the given outfits.
func (f *Factory) CreateCollection(user *models.User, outfits []*models.Outfit, tags []string, overrides ...func(*models.Collection)) (*models.Collection, error) {
	collection := &models.Collection{
		UserID:      user.ID,
		Name:        gofakeit.City() + " " + gofakeit.NounAbstract(),
		Description: gofakeit.Sentence(8),
		Tags:        tags,
	}
	for _, o := range overrides {
		o(collection)
	}
	if err := f.db.Create(collection).Error; err != nil {
		return nil, err
	}
	for _, outfit := range outfits {
		if err := f.db.Model(collection).Association("Outfits").Append(outfit); err != nil {
			return nil, err
		}
	}
	return collection, nil
}

// CreatePost persists a feed post for one of the user's outfits.
func (f *Factory) CreatePost(user *models.User, outfit *models.Outfit, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		OutfitID:  outfit.ID,
		Caption:   gofakeit.Sentence(6),
		IsVisible: true,
		CityName:  gofakeit.City() + ", " + gofakeit.StateAbr(),
		Tags:      []string{moods[f.rand.Intn(len(moods))]},
		CreatedAt: time.Now().Add(-time.Duration(f.rand.Intn(72)) * time.Hour),
	}
	for _, o := range overrides {
		o(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}
