package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON(t *testing.T) {
	var dst struct {
		URL string `json:"url"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"https://youtu.be/dQw4w9WgXcQ"}`))
	require.NoError(t, ReadJSON(r, &dst))
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", dst.URL)
}

func TestReadJSONRejects(t *testing.T) {
	tests := map[string]string{
		"empty":         ``,
		"unknown field": `{"link":"x"}`,
		"two values":    `{"url":"a"}{"url":"b"}`,
		"malformed":     `{"url":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			var dst struct {
				URL string `json:"url"`
			}
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			assert.Error(t, ReadJSON(r, &dst))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	require.NoError(t, WriteJSON(w, http.StatusCreated, Envelope{"data": "ok"}))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":"ok"}`, w.Body.String())
}
