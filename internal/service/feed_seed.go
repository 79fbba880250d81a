package service

import (
	"time"

	"ootd/internal/models"
)

// seedAuthors is the fixed author pool for synthesized posts. Seeded
// authors have no account; their IDs live outside the real user ID space
// so a seeded post can never be attributed to an actual account.
var seedAuthors = []models.UserSummary{
	{ID: 0, DisplayName: "Style Maven", AvatarURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=80"},
	{ID: 0, DisplayName: "City Chic", AvatarURL: "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=80"},
}

var seedCities = []string{"San Diego, CA", "New York, NY", "Austin, TX"}

const (
	seedCaptionDefault   = "Today's look built around this hero piece."
	seedCaptionDateNight = "Date night uniform. Simple, polished, and comfy."
)

const maxSeedPosts = 5

// seedPostsFromOutfits synthesizes placeholder feed posts from up to the
// first five outfits, in the given order. Each post gets a round-robin
// author, a created_at staggered three hours further into the past per
// position, and starter counters. The posts are ephemeral: they are never
// persisted, and the feed stops serving them once a real post exists.
func seedPostsFromOutfits(outfits []*models.Outfit, now time.Time) []*models.Post {
	if len(outfits) == 0 {
		return []*models.Post{}
	}

	n := len(outfits)
	if n > maxSeedPosts {
		n = maxSeedPosts
	}

	posts := make([]*models.Post, 0, n)
	for i, outfit := range outfits[:n] {
		caption := seedCaptionDefault
		if outfit.EventType == "date night" {
			caption = seedCaptionDateNight
		}

		tags := []string{"casual day"}
		if outfit.Mood != "" {
			tags = []string{outfit.Mood}
		}

		posts = append(posts, &models.Post{
			OutfitID:     outfit.ID,
			Outfit:       outfit,
			Caption:      caption,
			IsVisible:    true,
			CityName:     seedCities[i%len(seedCities)],
			Tags:         tags,
			Author:       seedAuthors[i%len(seedAuthors)],
			LikeCount:    4 + i,
			SaveCount:    2 + i,
			CommentCount: 0,
			Liked:        false,
			Saved:        false,
			CreatedAt:    now.Add(-time.Duration(i+1) * 3 * time.Hour),
		})
	}
	return posts
}
