package applemusic

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

func TestLookup_FetchTrack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/lookup", r.URL.Path)
		assert.Equal(t, "456", r.URL.Query().Get("id"))
		assert.Equal(t, "br", r.URL.Query().Get("country"))
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		_, _ = w.Write([]byte(`{"resultCount":1,"results":[{"trackName":"Song","collectionName":"Album","artistName":"Artist","artworkUrl100":"https://is1.mzstatic.com/image/thumb/x/100x100bb.jpg"}]}`))
	}))
	defer srv.Close()

	p := NewLookup(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://music.apple.com/br/song/456")
	require.NoError(t, err)
	assert.Equal(t, "Song", md.Title)
	assert.Equal(t, "Artist", md.Artist)
	assert.Equal(t, "https://is1.mzstatic.com/image/thumb/x/600x600bb.jpg", md.ArtworkURL)
}

func TestLookup_TitleFallsBackToCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount":2,"results":[{"collectionName":"Album","artistName":"A"},{"trackName":"Other"}]}`))
	}))
	defer srv.Close()

	p := NewLookup(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://music.apple.com/us/album/1440857781")
	require.NoError(t, err)
	assert.Equal(t, "Album", md.Title)
	assert.Empty(t, md.ArtworkURL)
}

func TestLookup_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"resultCount":0,"results":[]}`))
	}))
	defer srv.Close()

	p := NewLookup(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://music.apple.com/us/album/1")
	require.NoError(t, err)
	assert.True(t, md.Empty())
}

func TestLookup_PlaylistHasNoCatalogID(t *testing.T) {
	p := NewLookup(adapters.NewHTTPClient(time.Second, ""), "http://127.0.0.1:1")
	_, err := p.Fetch(context.Background(), "https://music.apple.com/us/playlist/pl.f4d106fed2bd41149aaacabb233eb5eb")
	require.Error(t, err)
}
