package oembed

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const defaultBaseURL = "https://noembed.com"

// Proxy is the best-effort provider for platforms without a public metadata
// API (Amazon Music, Tidal, Apple Music playlists, anything unrecognized). It goes through a
// generic oEmbed proxy, which answers unsupported URLs with an error field.
type Proxy struct {
	client  *resty.Client
	baseURL string
}

// NewProxy creates the proxy provider. An empty baseURL uses noembed.com.
func NewProxy(client *resty.Client, baseURL string) *Proxy {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Proxy{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *Proxy) Name() string { return "oembed-proxy" }

func (p *Proxy) Provides() ports.Field { return ports.AllFields }

func (p *Proxy) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	var resp adapters.OEmbed
	if err := adapters.GetJSON(ctx, p.client, p.baseURL+"/embed", map[string]string{"url": target}, &resp); err != nil {
		return domain.Metadata{}, errors.Wrap(err, "oembed proxy")
	}
	if resp.Error != "" {
		return domain.Metadata{}, errors.Errorf("oembed proxy: %s", resp.Error)
	}
	return domain.Metadata{
		Title:      resp.Title,
		Artist:     resp.AuthorName,
		ArtworkURL: resp.Artwork(),
	}, nil
}
