package platform

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

var (
	schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	appleRegion  = regexp.MustCompile(`^[a-zA-Z]{2,3}$`)
	amazonHost   = regexp.MustCompile(`^music\.amazon\.([a-z.]+)$`)
	amazonRegion = regexp.MustCompile(`^` + amazonRegions + `$`)
)

const (
	appleDefaultRegion  = "us"
	amazonDefaultRegion = "com"
)

// Canonicalize turns a pasted id or URL into the canonical URL for the
// selected platform and link type. Input without a scheme is treated as an
// opaque id and appended to the type's base URL. The result always matches
// the type's pattern; anything else is an *domain.InvalidLinkFormatError.
func (r *Registry) Canonicalize(name domain.Platform, t domain.LinkType, raw string) (string, error) {
	lt, err := r.LinkType(name, t)
	if err != nil {
		return "", err
	}
	d := r.byName[name]

	input := strings.TrimSpace(raw)
	invalid := &domain.InvalidLinkFormatError{Platform: name, Type: t, Input: raw}
	if input == "" {
		return "", invalid
	}

	candidate := lt.BaseURL + input
	if schemePrefix.MatchString(input) {
		candidate = input
		if d.normalize != nil {
			candidate = d.normalize(lt, input)
		}
	}

	if !lt.Pattern.MatchString(candidate) {
		return "", invalid
	}
	return candidate, nil
}

// Validate reports whether u is already a canonical URL for the pair.
func (r *Registry) Validate(name domain.Platform, t domain.LinkType, u string) error {
	lt, err := r.LinkType(name, t)
	if err != nil {
		return err
	}
	if !lt.Pattern.MatchString(u) {
		return &domain.InvalidLinkFormatError{Platform: name, Type: t, Input: u}
	}
	return nil
}

// normalizeSpotify reduces an open.spotify.com URL to {type}/{id}. The
// intl-xx locale segment and the per-share si= token are dropped.
func normalizeSpotify(lt LinkTypeDescriptor, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || strings.ToLower(u.Hostname()) != "open.spotify.com" {
		return raw
	}
	segs := pathSegments(u.Path)
	if len(segs) > 0 && strings.HasPrefix(segs[0], "intl-") {
		segs = segs[1:]
	}
	if len(segs) != 2 || segs[0] != string(lt.Type) {
		return raw
	}
	return "https://open.spotify.com/" + segs[0] + "/" + segs[1]
}

// normalizeTidal maps listen.tidal.com and tidal.com/{type} links onto the
// browse form. The trailing /u of share links and the query are dropped.
func normalizeTidal(lt LinkTypeDescriptor, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	switch strings.ToLower(u.Hostname()) {
	case "tidal.com", "www.tidal.com", "listen.tidal.com":
	default:
		return raw
	}
	segs := pathSegments(u.Path)
	if len(segs) > 0 && segs[0] == "browse" {
		segs = segs[1:]
	}
	if len(segs) > 0 && segs[len(segs)-1] == "u" {
		segs = segs[:len(segs)-1]
	}
	if len(segs) != 2 || segs[0] != string(lt.Type) {
		return raw
	}
	return "https://tidal.com/browse/" + segs[0] + "/" + segs[1]
}

// normalizeAppleMusic rebuilds an Apple Music URL as {region}/{type}/{id},
// keeping the pasted storefront region. Song links shared from an album
// page carry the track id in the i= query parameter, which wins over the
// album id in the path.
func normalizeAppleMusic(lt LinkTypeDescriptor, raw string) string {
	u, err := url.Parse(raw)
	if err != nil || !strings.HasSuffix(strings.ToLower(u.Hostname()), "apple.com") {
		return raw
	}

	segs := pathSegments(u.Path)
	region := appleDefaultRegion
	if len(segs) > 0 && appleRegion.MatchString(segs[0]) {
		region = strings.ToLower(segs[0])
		segs = segs[1:]
	}
	if len(segs) < 2 {
		return raw
	}

	kind := segs[0]
	trackID := u.Query().Get("i")
	switch lt.Type {
	case domain.LinkTypeTrack:
		if kind != "song" && !(kind == "album" && trackID != "") {
			return raw
		}
	case domain.LinkTypeAlbum:
		if kind != "album" {
			return raw
		}
	case domain.LinkTypePlaylist:
		if kind != "playlist" {
			return raw
		}
	}

	id := segs[len(segs)-1]
	if lt.Type == domain.LinkTypeTrack && trackID != "" {
		id = trackID
	}
	return "https://music.apple.com/" + region + "/" + appleSegment(lt.Type) + "/" + id
}

func appleSegment(t domain.LinkType) string {
	if t == domain.LinkTypeTrack {
		return "song"
	}
	return string(t)
}

// normalizeAmazonMusic keeps the marketplace domain and reduces the URL to
// its identity. Tracks are addressed through their album with a trackAsin
// parameter.
func normalizeAmazonMusic(lt LinkTypeDescriptor, raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	m := amazonHost.FindStringSubmatch(strings.ToLower(u.Hostname()))
	if m == nil {
		return raw
	}
	region := amazonDefaultRegion
	if amazonRegion.MatchString(m[1]) {
		region = m[1]
	}

	segs := pathSegments(u.Path)
	base := "https://music.amazon." + region + "/"
	switch lt.Type {
	case domain.LinkTypeTrack:
		album := segmentAfter(segs, "albums")
		asin := u.Query().Get("trackAsin")
		if album == "" || asin == "" {
			return raw
		}
		return base + "albums/" + album + "?trackAsin=" + asin
	case domain.LinkTypeAlbum:
		if album := segmentAfter(segs, "albums"); album != "" {
			return base + "albums/" + album
		}
	case domain.LinkTypePlaylist:
		if playlist := segmentAfter(segs, "playlists"); playlist != "" {
			return base + "playlists/" + playlist
		}
	}
	return raw
}

func pathSegments(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func segmentAfter(segs []string, name string) string {
	for i := 0; i < len(segs)-1; i++ {
		if segs[i] == name {
			return segs[i+1]
		}
	}
	return ""
}
