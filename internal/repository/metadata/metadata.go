package metadata

import "errors"

var ErrNotFound = errors.New("video metadata not found")

type VideoMetadata struct {
	Title        string `redis:"title" json:"title"`
	AuthorName   string `redis:"author_name" json:"author_name"`
	ThumbnailURL string `redis:"thumbnail_url" json:"thumbnail_url"`
}
