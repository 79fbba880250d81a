package service

import (
	"context"
	"testing"

	"ootd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type clothingRepoStub struct {
	createFn     func(ctx context.Context, item *models.ClothingItem) error
	getByIDFn    func(ctx context.Context, id uint) (*models.ClothingItem, error)
	listByUserFn func(ctx context.Context, userID uint, limit, offset int) ([]*models.ClothingItem, error)
	updateFn     func(ctx context.Context, item *models.ClothingItem) error
	deleteFn     func(ctx context.Context, id uint) error
}

func (s *clothingRepoStub) Create(ctx context.Context, item *models.ClothingItem) error {
	return s.createFn(ctx, item)
}

func (s *clothingRepoStub) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	return s.getByIDFn(ctx, id)
}

func (s *clothingRepoStub) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.ClothingItem, error) {
	return s.listByUserFn(ctx, userID, limit, offset)
}

func (s *clothingRepoStub) Update(ctx context.Context, item *models.ClothingItem) error {
	return s.updateFn(ctx, item)
}

func (s *clothingRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopClothingRepo() *clothingRepoStub {
	return &clothingRepoStub{
		createFn:  func(context.Context, *models.ClothingItem) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.ClothingItem, error) { return nil, gorm.ErrRecordNotFound },
		listByUserFn: func(context.Context, uint, int, int) ([]*models.ClothingItem, error) {
			return nil, nil
		},
		updateFn: func(context.Context, *models.ClothingItem) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
	}
}

func TestClosetService_CreateItem_Validation(t *testing.T) {
	t.Parallel()

	svc := NewClosetService(noopClothingRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreateItemInput
	}{
		{name: "Missing name", input: CreateItemInput{UserID: 1}},
		{name: "Unknown category", input: CreateItemInput{UserID: 1, Name: "Rain Jacket", Category: "spacesuit"}},
		{name: "Warmth out of range", input: CreateItemInput{UserID: 1, Name: "Rain Jacket", WarmthLevel: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateItem(ctx, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestClosetService_CreateItem_DefaultsCategory(t *testing.T) {
	t.Parallel()

	repo := noopClothingRepo()
	repo.createFn = func(_ context.Context, item *models.ClothingItem) error {
		item.ID = 3
		return nil
	}

	svc := NewClosetService(repo)

	item, err := svc.CreateItem(context.Background(), CreateItemInput{
		UserID: 1,
		Name:   "Mystery Accessory",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, item.Category)
}

func TestClosetService_GetItem_OtherUsersItemIsNotFound(t *testing.T) {
	t.Parallel()

	repo := noopClothingRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.ClothingItem, error) {
		return &models.ClothingItem{ID: id, UserID: 2, Name: "Linen Shirt"}, nil
	}

	svc := NewClosetService(repo)

	_, err := svc.GetItem(context.Background(), 1, 9)
	assertNotFoundError(t, err)
}

func TestClosetService_UpdateItem(t *testing.T) {
	t.Parallel()

	var saved *models.ClothingItem
	repo := noopClothingRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.ClothingItem, error) {
		return &models.ClothingItem{ID: id, UserID: 1, Name: "Old Name", Category: models.CategoryTop}, nil
	}
	repo.updateFn = func(_ context.Context, item *models.ClothingItem) error {
		saved = item
		return nil
	}

	svc := NewClosetService(repo)

	item, err := svc.UpdateItem(context.Background(), UpdateItemInput{
		UserID: 1,
		ItemID: 4,
		CreateItemInput: CreateItemInput{
			Name:        "Wool Coat",
			Color:       "camel",
			WarmthLevel: 5,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Wool Coat", item.Name)
	// Empty category on update keeps the stored one
	assert.Equal(t, models.CategoryTop, item.Category)
	assert.Equal(t, 5, item.WarmthLevel)
}

func TestClosetService_DeleteItem_ChecksOwnership(t *testing.T) {
	t.Parallel()

	deleted := false
	repo := noopClothingRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.ClothingItem, error) {
		return &models.ClothingItem{ID: id, UserID: 2}, nil
	}
	repo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	svc := NewClosetService(repo)

	err := svc.DeleteItem(context.Background(), 1, 4)
	assertNotFoundError(t, err)
	assert.False(t, deleted)
}
