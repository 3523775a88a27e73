package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/contentstudio/server/internal/reference"
	"github.com/contentstudio/server/internal/repository/metadata"
)

// startMetadataLookup runs off the read loop. It only fills the session's
// metadata slot and sends VIDEO_METADATA; player and intent state are never
// touched from here. Starting a lookup cancels the one for the previous video.
func (s service) startMetadataLookup(sess *Session, ref reference.Ref) {
	ctx, cancel := context.WithTimeout(sess.ctx, s.lookupTTL)
	sess.meta.want(ref, cancel)

	sess.lookups.Add(1)
	go func() {
		defer sess.lookups.Done()
		defer cancel()

		logger := s.sessionLogger(sess).With("video_id", ref.String())

		md, err := s.getVideoMetadata(ctx, ref)
		if errors.Is(err, context.Canceled) {
			logger.DebugContext(ctx, "video metadata lookup cancelled")
			return
		}
		if err != nil {
			logger.WarnContext(ctx, "failed to get video metadata", "error", err)
			return
		}

		if !sess.meta.set(ref, md) {
			logger.DebugContext(ctx, "dropping metadata for replaced video")
			return
		}

		if err := sess.sender.Send(TypeVideoMetadata, VideoMetadataPayload{
			VideoID:       ref,
			VideoMetadata: md,
		}); err != nil {
			logger.WarnContext(ctx, "failed to send video metadata", "error", err)
		}
	}()
}

func (s service) getVideoMetadata(ctx context.Context, ref reference.Ref) (metadata.VideoMetadata, error) {
	if s.metadataRepo != nil {
		md, err := s.metadataRepo.GetVideoMetadata(ctx, ref.String())
		if err == nil {
			return md, nil
		}
		if !errors.Is(err, metadata.ErrNotFound) {
			s.logger.WarnContext(ctx, "failed to read cached video metadata", "error", err)
		}
	}

	data, err := s.fetcher.Get(ctx, ref.String())
	if err != nil {
		return metadata.VideoMetadata{}, fmt.Errorf("failed to fetch video metadata: %w", err)
	}

	md := metadata.VideoMetadata{
		Title:        data.Title,
		AuthorName:   data.AuthorName,
		ThumbnailURL: data.ThumbnailUrl,
	}

	if s.metadataRepo != nil {
		if err := s.metadataRepo.SetVideoMetadata(ctx, ref.String(), md); err != nil {
			s.logger.WarnContext(ctx, "failed to cache video metadata", "error", err)
		}
	}

	return md, nil
}
