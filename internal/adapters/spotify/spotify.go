package spotify

import (
	"context"
	"encoding/json"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const defaultBaseURL = "https://open.spotify.com"

var (
	artistsPattern = regexp.MustCompile(`"artists"\s*:\s*\[\s*\{[^{}]*?"name"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	titlePattern   = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	platformSuffix = regexp.MustCompile(`\s*\|\s*[^|]*$`)
)

// OEmbed fetches title, artwork and, when Spotify sends it, the artist from
// the public oEmbed endpoint.
type OEmbed struct {
	client  *resty.Client
	baseURL string
}

// NewOEmbed creates the oEmbed step. An empty baseURL uses open.spotify.com.
func NewOEmbed(client *resty.Client, baseURL string) *OEmbed {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OEmbed{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *OEmbed) Name() string { return "spotify-oembed" }

func (p *OEmbed) Provides() ports.Field { return ports.AllFields }

func (p *OEmbed) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	var resp adapters.OEmbed
	err := adapters.GetJSON(ctx, p.client, p.baseURL+"/oembed", map[string]string{"url": target}, &resp)
	if err != nil {
		return domain.Metadata{}, errors.Wrap(err, "spotify: oembed")
	}
	return domain.Metadata{
		Title:      resp.Title,
		Artist:     resp.AuthorName,
		ArtworkURL: resp.Artwork(),
	}, nil
}

// EmbedPage scrapes the artist from the embed player HTML. oEmbed does not
// include it for most content.
type EmbedPage struct {
	client  *resty.Client
	baseURL string
}

// NewEmbedPage creates the embed-page step. An empty baseURL uses
// open.spotify.com.
func NewEmbedPage(client *resty.Client, baseURL string) *EmbedPage {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &EmbedPage{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *EmbedPage) Name() string { return "spotify-embed" }

func (p *EmbedPage) Provides() ports.Field { return ports.FieldArtist }

func (p *EmbedPage) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	embedURL, err := p.embedURL(target)
	if err != nil {
		return domain.Metadata{}, err
	}

	body, err := adapters.GetBody(ctx, p.client, embedURL, nil)
	if err != nil {
		return domain.Metadata{}, errors.Wrap(err, "spotify: embed page")
	}
	return domain.Metadata{Artist: ExtractArtist(string(body))}, nil
}

// embedURL maps open.spotify.com/{intl-xx/}{type}/{id} to the embed player.
func (p *EmbedPage) embedURL(target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", errors.Wrap(err, "spotify: parse url")
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) > 0 && strings.HasPrefix(segs[0], "intl-") {
		segs = segs[1:]
	}
	if len(segs) < 2 {
		return "", errors.Errorf("spotify: no content id in %q", target)
	}
	return p.baseURL + "/embed/" + segs[0] + "/" + segs[1], nil
}

// ExtractArtist reads the artist from embed player HTML: the first
// "artists":[{"name":...}] occurrence, else the "<track> by <artist>" page
// title with its "| Spotify" suffix removed.
func ExtractArtist(page string) string {
	if m := artistsPattern.FindStringSubmatch(page); m != nil {
		var name string
		if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &name); err == nil && name != "" {
			return name
		}
	}

	m := titlePattern.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	title := strings.TrimSpace(html.UnescapeString(m[1]))
	title = platformSuffix.ReplaceAllString(title, "")
	idx := strings.LastIndex(title, " by ")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(title[idx+len(" by "):])
}
