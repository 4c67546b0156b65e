package deezer

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

func TestOEmbed_FetchMapsThumbnail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oembed", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{"title":"One More Time","author_name":"Daft Punk","thumbnail":"https://cdn/img.jpg"}`))
	}))
	defer srv.Close()

	p := NewOEmbed(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://link.deezer.com/s/30Xz6Yw1b3c7QKp2")
	require.NoError(t, err)
	assert.Equal(t, "One More Time", md.Title)
	assert.Equal(t, "Daft Punk", md.Artist)
	assert.Equal(t, "https://cdn/img.jpg", md.ArtworkURL)
}

func TestOEmbed_ErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error":"invalid url"}`))
	}))
	defer srv.Close()

	p := NewOEmbed(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	_, err := p.Fetch(context.Background(), "https://link.deezer.com/s/x")
	require.Error(t, err)
}
