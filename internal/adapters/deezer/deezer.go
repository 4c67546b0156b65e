package deezer

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const defaultBaseURL = "https://api.deezer.com"

// OEmbed resolves Deezer share links through Deezer's oEmbed endpoint.
type OEmbed struct {
	client  *resty.Client
	baseURL string
}

// NewOEmbed creates the Deezer provider. An empty baseURL uses api.deezer.com.
func NewOEmbed(client *resty.Client, baseURL string) *OEmbed {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OEmbed{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *OEmbed) Name() string { return "deezer-oembed" }

func (p *OEmbed) Provides() ports.Field { return ports.AllFields }

func (p *OEmbed) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	var resp adapters.OEmbed
	params := map[string]string{"url": target, "format": "json"}
	if err := adapters.GetJSON(ctx, p.client, p.baseURL+"/oembed", params, &resp); err != nil {
		return domain.Metadata{}, errors.Wrap(err, "deezer: oembed")
	}
	if resp.Error != "" {
		return domain.Metadata{}, errors.Errorf("deezer: oembed error: %s", resp.Error)
	}
	return domain.Metadata{
		Title:      resp.Title,
		Artist:     resp.AuthorName,
		ArtworkURL: resp.Artwork(),
	}, nil
}
