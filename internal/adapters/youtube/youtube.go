package youtube

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const (
	defaultBaseURL = "https://www.youtube.com"
	topicSuffix    = " - Topic"
)

// OEmbed resolves YouTube Music links through YouTube's own oEmbed endpoint.
// The endpoint does not know the music host, so URLs are rewritten to www.
type OEmbed struct {
	client  *resty.Client
	baseURL string
}

// NewOEmbed creates the YouTube provider. An empty baseURL uses
// www.youtube.com.
func NewOEmbed(client *resty.Client, baseURL string) *OEmbed {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OEmbed{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *OEmbed) Name() string { return "youtube-oembed" }

func (p *OEmbed) Provides() ports.Field { return ports.AllFields }

func (p *OEmbed) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	var resp adapters.OEmbed
	params := map[string]string{
		"url":    strings.Replace(target, "://music.youtube.com/", "://www.youtube.com/", 1),
		"format": "json",
	}
	if err := adapters.GetJSON(ctx, p.client, p.baseURL+"/oembed", params, &resp); err != nil {
		return domain.Metadata{}, errors.Wrap(err, "youtube: oembed")
	}

	name, artist := parseVideoTitle(resp.Title)
	if author := strings.TrimSuffix(resp.AuthorName, topicSuffix); author != "" {
		// Auto-generated "Artist - Topic" channels carry the clean track title.
		if strings.HasSuffix(resp.AuthorName, topicSuffix) || artist == "" {
			name, artist = strings.TrimSpace(resp.Title), author
		}
	}

	return domain.Metadata{
		Title:      name,
		Artist:     artist,
		ArtworkURL: resp.Artwork(),
	}, nil
}

// -- Helpers -----------------------------------------------------------------

// parseVideoTitle attempts to split a YouTube video title into track name and
// artist. Common formats: "Artist - Track", "Artist - Track (Official Video)".
func parseVideoTitle(title string) (name, artist string) {
	// Remove common suffixes
	suffixes := []string{
		"(Official Video)", "(Official Music Video)", "(Official Audio)",
		"(Lyric Video)", "(Lyrics)", "(Audio)", "[Official Video]",
		"[Official Music Video]", "[Official Audio]", "(HD)", "(HQ)",
	}
	cleaned := title
	for _, suffix := range suffixes {
		cleaned = strings.TrimSpace(strings.Replace(cleaned, suffix, "", 1))
	}

	// Split on " - " separator
	parts := strings.SplitN(cleaned, " - ", 2)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[1]), strings.TrimSpace(parts[0])
	}

	return cleaned, ""
}
