package oembed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxy_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed", r.URL.Path)
		assert.Equal(t, "https://tidal.com/browse/track/77646164", r.URL.Query().Get("url"))
		_, _ = w.Write([]byte(`{"title":"Track","author_name":"Artist","thumbnail_url":"https://img"}`))
	}))
	defer srv.Close()

	p := NewProxy(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://tidal.com/browse/track/77646164")
	require.NoError(t, err)
	assert.Equal(t, "Track", md.Title)
	assert.Equal(t, "Artist", md.Artist)
	assert.Equal(t, "https://img", md.ArtworkURL)
}

func TestProxy_ErrorFieldMeansNoMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"no matching providers found","url":"https://music.amazon.com/albums/B0"}`))
	}))
	defer srv.Close()

	p := NewProxy(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://music.amazon.com/albums/B0")
	require.Error(t, err)
	assert.True(t, md.Empty())
}
