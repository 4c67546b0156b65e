package spotify

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

const trackURL = "https://open.spotify.com/track/3Fuqn0M6R7z8hBvB22K1jR"

func TestOEmbed_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/oembed", r.URL.Path)
		assert.Equal(t, trackURL, r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"title":"X","author_name":"Y","thumbnail_url":"Z"}`))
	}))
	defer srv.Close()

	p := NewOEmbed(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), trackURL)
	require.NoError(t, err)
	assert.Equal(t, "X", md.Title)
	assert.Equal(t, "Y", md.Artist)
	assert.Equal(t, "Z", md.ArtworkURL)
}

func TestEmbedPage_FetchUsesEmbedPlayer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/embed/track/3Fuqn0M6R7z8hBvB22K1jR", r.URL.Path)
		_, _ = w.Write([]byte(`<script>{"entity":{"artists":[{"name":"Daft Punk","uri":"spotify:artist:4tZ"}]}}</script>`))
	}))
	defer srv.Close()

	p := NewEmbedPage(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	md, err := p.Fetch(context.Background(), "https://open.spotify.com/intl-de/track/3Fuqn0M6R7z8hBvB22K1jR?si=1")
	require.NoError(t, err)
	assert.Equal(t, "Daft Punk", md.Artist)
	assert.Empty(t, md.Title)
}

func TestEmbedPage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewEmbedPage(adapters.NewHTTPClient(time.Second, ""), srv.URL)
	_, err := p.Fetch(context.Background(), trackURL)
	require.Error(t, err)
}

func TestExtractArtist(t *testing.T) {
	cases := []struct {
		name string
		page string
		want string
	}{
		{
			name: "structured artists",
			page: `..."artists":[{"name":"Beyoncé"}]...<title>ignored by Nobody | Spotify</title>`,
			want: "Beyoncé",
		},
		{
			name: "title convention",
			page: `<html><head><title>Harder, Better, Faster, Stronger - song and lyrics by Daft Punk | Spotify</title></head></html>`,
			want: "Daft Punk",
		},
		{
			name: "escaped title",
			page: `<title>Song by Simon &amp; Garfunkel | Spotify</title>`,
			want: "Simon & Garfunkel",
		},
		{
			name: "no artist",
			page: `<title>Spotify</title>`,
			want: "",
		},
		{
			name: "empty page",
			page: ``,
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractArtist(tc.page))
		})
	}
}
