package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix       = "post:%d"
	FeedKeyPrefix       = "feed:%d:%d:%d"
	OutfitListPrefix    = "outfits:%d"
	CollectionKeyPrefix = "collections:%d"
	WeatherKey          = "weather:current"
)

const (
	PostTTL       = 30 * time.Minute
	FeedTTL       = 2 * time.Minute
	OutfitListTTL = 5 * time.Minute
	CollectionTTL = 10 * time.Minute
	WeatherTTL    = 15 * time.Minute
)

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// FeedKey is the cached feed page for a viewing user. Viewer-specific
// reaction flags make the feed uncacheable across users, so the key
// carries the viewer ID alongside the page bounds.
func FeedKey(userID uint, limit, offset int) string {
	return fmt.Sprintf(FeedKeyPrefix, userID, limit, offset)
}

func OutfitListKey(userID uint) string {
	return fmt.Sprintf(OutfitListPrefix, userID)
}

func CollectionListKey(userID uint) string {
	return fmt.Sprintf(CollectionKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateOutfitList(ctx context.Context, userID uint) {
	Invalidate(ctx, OutfitListKey(userID))
}

func InvalidateCollectionList(ctx context.Context, userID uint) {
	Invalidate(ctx, CollectionListKey(userID))
}

// InvalidateFeeds drops every cached feed. Reaction counters are
// viewer-visible on all feeds, so any write touching a post clears them all.
func InvalidateFeeds(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "feed:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
