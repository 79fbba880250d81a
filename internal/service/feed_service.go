package service

import (
	"context"
	"strings"
	"time"

	"ootd/internal/models"
	"ootd/internal/observability"
	"ootd/internal/repository"
)

type FeedService struct {
	postRepo   repository.PostRepository
	outfitRepo repository.OutfitRepository
	now        func() time.Time
}

type ListFeedInput struct {
	Limit         int
	Offset        int
	CurrentUserID uint
}

type CreatePostInput struct {
	UserID   uint
	OutfitID uint
	Caption  string
	CityName string
	Tags     []string
}

type ToggleReactionInput struct {
	UserID uint
	PostID uint
	Kind   string
}

func NewFeedService(postRepo repository.PostRepository, outfitRepo repository.OutfitRepository) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		outfitRepo: outfitRepo,
		now:        time.Now,
	}
}

// ListFeed returns the visible feed, newest first. While no real post
// exists the feed is synthesized from the viewer's own outfits; the
// seeded posts disappear as soon as anyone publishes a real post.
func (s *FeedService) ListFeed(ctx context.Context, in ListFeedInput) ([]*models.Post, error) {
	count, err := s.postRepo.CountVisible(ctx)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		outfits, err := s.outfitRepo.ListByUser(ctx, in.CurrentUserID)
		if err != nil {
			return nil, err
		}
		observability.FeedSeedServed.Inc()
		return seedPostsFromOutfits(outfits, s.now()), nil
	}

	return s.postRepo.List(ctx, in.Limit, in.Offset, in.CurrentUserID)
}

func (s *FeedService) GetPost(ctx context.Context, postID, currentUserID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, currentUserID)
	if err != nil {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// CreatePost publishes an outfit to the feed. The outfit reference and a
// non-empty caption are required; everything else defaults.
func (s *FeedService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.OutfitID == 0 {
		return nil, models.NewValidationError("outfit_id is required")
	}
	if strings.TrimSpace(in.Caption) == "" {
		return nil, models.NewValidationError("Caption is required")
	}

	outfit, err := s.outfitRepo.GetByID(ctx, in.OutfitID)
	if err != nil {
		return nil, models.NewNotFoundError("Outfit", in.OutfitID)
	}
	if outfit.UserID != in.UserID {
		return nil, models.NewNotFoundError("Outfit", in.OutfitID)
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &models.Post{
		UserID:    in.UserID,
		OutfitID:  in.OutfitID,
		Caption:   in.Caption,
		IsVisible: true,
		CityName:  in.CityName,
		Tags:      tags,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, in.UserID)
}

// ToggleReaction flips the (post, user, kind) reaction state and returns
// the post with counters recomputed from the reaction records. Because
// the counters are derived rather than incremented in place, a repeated
// or racing toggle can never drive them negative.
func (s *FeedService) ToggleReaction(ctx context.Context, in ToggleReactionInput) (*models.Post, error) {
	if !models.ValidReactionKind(in.Kind) {
		return nil, models.NewValidationError("Unsupported reaction kind")
	}

	if _, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID); err != nil {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	has, err := s.postRepo.HasReaction(ctx, in.UserID, in.PostID, in.Kind)
	if err != nil {
		return nil, err
	}

	if has {
		if err := s.postRepo.RemoveReaction(ctx, in.UserID, in.PostID, in.Kind); err != nil {
			return nil, err
		}
		observability.ReactionToggles.WithLabelValues(in.Kind, "removed").Inc()
	} else {
		if err := s.postRepo.AddReaction(ctx, in.UserID, in.PostID, in.Kind); err != nil {
			return nil, err
		}
		observability.ReactionToggles.WithLabelValues(in.Kind, "added").Inc()
	}

	return s.postRepo.GetByID(ctx, in.PostID, in.UserID)
}

func (s *FeedService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return models.NewNotFoundError("Post", postID)
	}
	if post.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}
