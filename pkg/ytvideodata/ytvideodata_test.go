package ytvideodata

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchPage = `<!DOCTYPE html>
<html><head>
<title>Any% speedrun in 12:34 - YouTube</title>
</head><body>
<span itemprop="author"><link itemprop="name" content="Runner"></span>
</body></html>`

func newTestClient(t *testing.T, oembedStatus int) *Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oembed", func(w http.ResponseWriter, r *http.Request) {
		if oembedStatus != http.StatusOK {
			w.WriteHeader(oembedStatus)
			return
		}
		assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", r.URL.Query().Get("url"))
		fmt.Fprint(w, `{"title":"Any% speedrun","author_name":"Runner","thumbnail_url":"https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg"}`)
	})
	mux.HandleFunc("/dQw4w9WgXcQ", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, watchPage)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestGetWithEmbed(t *testing.T) {
	c := newTestClient(t, http.StatusOK)

	data, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, &VideoData{
		Title:        "Any% speedrun",
		AuthorName:   "Runner",
		ThumbnailUrl: "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
	}, data)
}

func TestGetFallsBackToPage(t *testing.T) {
	c := newTestClient(t, http.StatusUnauthorized)

	data, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "Any% speedrun in 12:34", data.Title)
	assert.Equal(t, "Runner", data.AuthorName)
	assert.Equal(t, "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg", data.ThumbnailUrl)
}

func TestGetNotFound(t *testing.T) {
	c := newTestClient(t, http.StatusBadRequest)

	_, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrVideoNotFound)
}

func TestGetUnexpectedStatus(t *testing.T) {
	c := newTestClient(t, http.StatusInternalServerError)

	_, err := c.Get(context.Background(), "dQw4w9WgXcQ")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrVideoNotFound)
}
