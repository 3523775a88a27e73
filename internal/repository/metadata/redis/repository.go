package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/contentstudio/server/internal/repository/metadata"
	"github.com/redis/go-redis/v9"
)

type repo struct {
	rc             *redis.Client
	expireDuration time.Duration
}

func NewRepo(rc *redis.Client, expireDuration time.Duration) *repo {
	return &repo{
		rc:             rc,
		expireDuration: expireDuration,
	}
}

func (r repo) getMetadataKey(videoId string) string {
	return "video:" + videoId + ":metadata"
}

func (r repo) SetVideoMetadata(ctx context.Context, videoId string, md metadata.VideoMetadata) error {
	key := r.getMetadataKey(videoId)

	pipe := r.rc.TxPipeline()
	pipe.HSet(ctx, key, md)
	pipe.Expire(ctx, key, r.expireDuration)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store video metadata: %w", err)
	}

	return nil
}

func (r repo) GetVideoMetadata(ctx context.Context, videoId string) (metadata.VideoMetadata, error) {
	var md metadata.VideoMetadata
	key := r.getMetadataKey(videoId)
	if err := r.rc.HGetAll(ctx, key).Scan(&md); err != nil {
		return metadata.VideoMetadata{}, fmt.Errorf("failed to read video metadata: %w", err)
	}

	if md.Title == "" && md.ThumbnailURL == "" {
		return metadata.VideoMetadata{}, metadata.ErrNotFound
	}

	return md, nil
}
