package applemusic

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

const (
	defaultBaseURL = "https://itunes.apple.com"
	lowResArtwork  = "100x100bb"
	highResArtwork = "600x600bb"
)

var numericID = regexp.MustCompile(`^\d+$`)

// Lookup resolves Apple Music links through the public iTunes catalog
// lookup, using the storefront region of the link. The catalog has no
// playlists, so pl. ids fail here and are left to the next provider.
type Lookup struct {
	client  *resty.Client
	baseURL string
}

// NewLookup creates the Apple Music provider. An empty baseURL uses
// itunes.apple.com.
func NewLookup(client *resty.Client, baseURL string) *Lookup {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Lookup{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *Lookup) Name() string { return "itunes-lookup" }

func (p *Lookup) Provides() ports.Field { return ports.AllFields }

// -- API response types (internal) ------------------------------------------

type lookupResponse struct {
	ResultCount int            `json:"resultCount"`
	Results     []lookupResult `json:"results"`
}

type lookupResult struct {
	TrackName      string `json:"trackName"`
	CollectionName string `json:"collectionName"`
	ArtistName     string `json:"artistName"`
	ArtworkURL100  string `json:"artworkUrl100"`
}

// -- MetadataProvider implementation ----------------------------------------

func (p *Lookup) Fetch(ctx context.Context, target string) (domain.Metadata, error) {
	id, country, err := parseCatalogURL(target)
	if err != nil {
		return domain.Metadata{}, err
	}

	var resp lookupResponse
	params := map[string]string{"id": id, "country": country}
	if err := adapters.GetJSON(ctx, p.client, p.baseURL+"/lookup", params, &resp); err != nil {
		return domain.Metadata{}, errors.Wrap(err, "apple music: lookup")
	}
	if len(resp.Results) == 0 {
		return domain.Metadata{}, nil
	}

	first := resp.Results[0]
	return domain.Metadata{
		Title:      firstNonEmpty(first.TrackName, first.CollectionName),
		Artist:     first.ArtistName,
		ArtworkURL: strings.Replace(first.ArtworkURL100, lowResArtwork, highResArtwork, 1),
	}, nil
}

// parseCatalogURL extracts the catalog id and storefront from a canonical
// https://music.apple.com/{region}/{type}/{id} URL. A track shared from an
// album page keeps its id in the i= parameter.
func parseCatalogURL(target string) (id, country string, err error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", errors.Wrap(err, "apple music: parse url")
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	country = "us"
	if len(segs) > 0 && len(segs[0]) >= 2 && len(segs[0]) <= 3 {
		country = segs[0]
	}

	id = u.Query().Get("i")
	if id == "" {
		id = segs[len(segs)-1]
	}
	if !numericID.MatchString(id) {
		return "", "", errors.Errorf("apple music: no catalog id in %q", target)
	}
	return id, country, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
