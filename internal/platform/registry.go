package platform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// LinkTypeDescriptor describes how one content kind is addressed on a
// platform. SampleID is a representative valid id; BaseURL+SampleID must
// match Pattern.
type LinkTypeDescriptor struct {
	Type     domain.LinkType
	Pattern  *regexp.Regexp
	BaseURL  string
	SampleID string
}

// Descriptor is a supported music platform.
type Descriptor struct {
	Name      domain.Platform
	Hosts     []string
	LinkTypes []LinkTypeDescriptor

	// normalize rewrites a full URL before validation. Nil means the URL is
	// validated as pasted.
	normalize func(lt LinkTypeDescriptor, raw string) string
}

// LinkType returns the descriptor for t, if the platform supports it.
func (d *Descriptor) LinkType(t domain.LinkType) (LinkTypeDescriptor, bool) {
	for _, lt := range d.LinkTypes {
		if lt.Type == t {
			return lt, true
		}
	}
	return LinkTypeDescriptor{}, false
}

// Registry is an immutable lookup table of platforms. It is safe for
// concurrent use.
type Registry struct {
	platforms []*Descriptor
	byName    map[domain.Platform]*Descriptor
}

// NewRegistry builds a registry, rejecting descriptors that break the
// one-descriptor-per-type or base-URL round-trip invariants.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		byName: make(map[domain.Platform]*Descriptor, len(descriptors)),
	}
	for i := range descriptors {
		d := descriptors[i]
		if err := validateDescriptor(&d); err != nil {
			return nil, err
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, errors.Errorf("platform %q registered twice", d.Name)
		}
		r.platforms = append(r.platforms, &d)
		r.byName[d.Name] = &d
	}
	return r, nil
}

func validateDescriptor(d *Descriptor) error {
	if d.Name == "" {
		return errors.New("platform without name")
	}
	seen := make(map[domain.LinkType]bool, len(d.LinkTypes))
	for _, lt := range d.LinkTypes {
		if !lt.Type.Valid() {
			return errors.Errorf("%s: unknown link type %q", d.Name, lt.Type)
		}
		if seen[lt.Type] {
			return errors.Errorf("%s: link type %q declared twice", d.Name, lt.Type)
		}
		seen[lt.Type] = true

		if lt.Pattern == nil || lt.BaseURL == "" {
			return errors.Errorf("%s %s: pattern and base URL are required", d.Name, lt.Type)
		}
		if sample := lt.BaseURL + lt.SampleID; !lt.Pattern.MatchString(sample) {
			return errors.Errorf("%s %s: pattern does not match %q", d.Name, lt.Type, sample)
		}
	}
	return nil
}

// Lookup returns the named platform.
func (r *Registry) Lookup(name domain.Platform) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, errors.Wrapf(domain.ErrUnsupportedPlatform, "%q", name)
	}
	return d, nil
}

// LinkType returns the descriptor for a platform/type pair.
func (r *Registry) LinkType(name domain.Platform, t domain.LinkType) (LinkTypeDescriptor, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return LinkTypeDescriptor{}, err
	}
	lt, ok := d.LinkType(t)
	if !ok {
		return LinkTypeDescriptor{}, errors.Wrapf(domain.ErrUnsupportedLinkType, "%s %s", name, t)
	}
	return lt, nil
}

// Platforms returns the registered platforms in registration order.
func (r *Registry) Platforms() []*Descriptor {
	out := make([]*Descriptor, len(r.platforms))
	copy(out, r.platforms)
	return out
}

// Detect finds the platform a URL belongs to by host substring.
func (r *Registry) Detect(rawURL string) (domain.Platform, bool) {
	lower := strings.ToLower(rawURL)
	for _, d := range r.platforms {
		for _, host := range d.Hosts {
			if strings.Contains(lower, host) {
				return d.Name, true
			}
		}
	}
	return "", false
}

// Default returns the built-in registry of the six supported platforms.
func Default() *Registry {
	r, err := NewRegistry(builtin()...)
	if err != nil {
		panic(fmt.Sprintf("platform: invalid builtin registry: %v", err))
	}
	return r
}

const amazonRegions = `(?:com|ca|de|fr|it|es|in|co\.uk|co\.jp|com\.br|com\.mx|com\.au)`

func builtin() []Descriptor {
	return []Descriptor{
		{
			Name:  domain.PlatformSpotify,
			Hosts: []string{"open.spotify.com", "spotify.link", "spotify.com"},
			LinkTypes: []LinkTypeDescriptor{
				spotifyType(domain.LinkTypeTrack, "3Fuqn0M6R7z8hBvB22K1jR"),
				spotifyType(domain.LinkTypeAlbum, "4aawyAB9vmqN3uQ7FjRGTy"),
				spotifyType(domain.LinkTypePlaylist, "37i9dQZF1DXcBWIGoYBM5M"),
			},
			normalize: normalizeSpotify,
		},
		{
			Name:  domain.PlatformAppleMusic,
			Hosts: []string{"music.apple.com", "itunes.apple.com"},
			LinkTypes: []LinkTypeDescriptor{
				{
					Type:     domain.LinkTypeTrack,
					Pattern:  regexp.MustCompile(`^https://music\.apple\.com/[a-z]{2,3}/song/\d+$`),
					BaseURL:  "https://music.apple.com/us/song/",
					SampleID: "1440857781",
				},
				{
					Type:     domain.LinkTypeAlbum,
					Pattern:  regexp.MustCompile(`^https://music\.apple\.com/[a-z]{2,3}/album/\d+$`),
					BaseURL:  "https://music.apple.com/us/album/",
					SampleID: "1440857781",
				},
				{
					Type:     domain.LinkTypePlaylist,
					Pattern:  regexp.MustCompile(`^https://music\.apple\.com/[a-z]{2,3}/playlist/pl\.[A-Za-z0-9-]+$`),
					BaseURL:  "https://music.apple.com/us/playlist/",
					SampleID: "pl.f4d106fed2bd41149aaacabb233eb5eb",
				},
			},
			normalize: normalizeAppleMusic,
		},
		{
			Name:  domain.PlatformDeezer,
			Hosts: []string{"deezer.com", "deezer.page.link"},
			LinkTypes: []LinkTypeDescriptor{
				deezerType(domain.LinkTypeTrack),
				deezerType(domain.LinkTypeAlbum),
				deezerType(domain.LinkTypePlaylist),
			},
		},
		{
			Name:  domain.PlatformTidal,
			Hosts: []string{"tidal.com"},
			LinkTypes: []LinkTypeDescriptor{
				{
					Type:     domain.LinkTypeTrack,
					Pattern:  regexp.MustCompile(`^https://tidal\.com/browse/track/\d+$`),
					BaseURL:  "https://tidal.com/browse/track/",
					SampleID: "77646164",
				},
				{
					Type:     domain.LinkTypeAlbum,
					Pattern:  regexp.MustCompile(`^https://tidal\.com/browse/album/\d+$`),
					BaseURL:  "https://tidal.com/browse/album/",
					SampleID: "77646157",
				},
				{
					Type:     domain.LinkTypePlaylist,
					Pattern:  regexp.MustCompile(`^https://tidal\.com/browse/playlist/[0-9a-fA-F-]{36}$`),
					BaseURL:  "https://tidal.com/browse/playlist/",
					SampleID: "0b1c7a8e-4f3d-4a2b-9c6e-5d7f8a9b0c1d",
				},
			},
			normalize: normalizeTidal,
		},
		{
			Name:  domain.PlatformAmazonMusic,
			Hosts: []string{"music.amazon."},
			LinkTypes: []LinkTypeDescriptor{
				{
					Type:     domain.LinkTypeTrack,
					Pattern:  regexp.MustCompile(`^https://music\.amazon\.` + amazonRegions + `/albums/[A-Z0-9]+\?trackAsin=[A-Z0-9]+$`),
					BaseURL:  "https://music.amazon.com/albums/",
					SampleID: "B0C4HWRQ7N?trackAsin=B0C4HTBW5L",
				},
				{
					Type:     domain.LinkTypeAlbum,
					Pattern:  regexp.MustCompile(`^https://music\.amazon\.` + amazonRegions + `/albums/[A-Z0-9]+$`),
					BaseURL:  "https://music.amazon.com/albums/",
					SampleID: "B0C4HWRQ7N",
				},
				{
					Type:     domain.LinkTypePlaylist,
					Pattern:  regexp.MustCompile(`^https://music\.amazon\.` + amazonRegions + `/playlists/[A-Z0-9]+$`),
					BaseURL:  "https://music.amazon.com/playlists/",
					SampleID: "B07G9Q6GJ2",
				},
			},
			normalize: normalizeAmazonMusic,
		},
		{
			Name:  domain.PlatformYouTubeMusic,
			Hosts: []string{"music.youtube.com"},
			LinkTypes: []LinkTypeDescriptor{
				{
					Type:     domain.LinkTypeTrack,
					Pattern:  regexp.MustCompile(`^https://music\.youtube\.com/watch\?v=[A-Za-z0-9_-]{11}(?:&[^#\s]*)?$`),
					BaseURL:  "https://music.youtube.com/watch?v=",
					SampleID: "dQw4w9WgXcQ",
				},
				{
					Type:     domain.LinkTypeAlbum,
					Pattern:  regexp.MustCompile(`^https://music\.youtube\.com/browse/MPREb_[A-Za-z0-9_-]+$`),
					BaseURL:  "https://music.youtube.com/browse/",
					SampleID: "MPREb_4pL8gzRtw1p",
				},
				{
					Type:     domain.LinkTypePlaylist,
					Pattern:  regexp.MustCompile(`^https://music\.youtube\.com/playlist\?list=[A-Za-z0-9_-]+(?:&[^#\s]*)?$`),
					BaseURL:  "https://music.youtube.com/playlist?list=",
					SampleID: "OLAK5uy_lEBZkIaAg9wHYvp8GHYN1b7wNJAb1vM1Y",
				},
			},
		},
	}
}

func spotifyType(t domain.LinkType, sample string) LinkTypeDescriptor {
	return LinkTypeDescriptor{
		Type:     t,
		Pattern:  regexp.MustCompile(`^https://open\.spotify\.com/` + string(t) + `/[A-Za-z0-9]{22}$`),
		BaseURL:  "https://open.spotify.com/" + string(t) + "/",
		SampleID: sample,
	}
}

// Deezer only exposes stable share links through its redirector, so every
// type shares the same shape.
func deezerType(t domain.LinkType) LinkTypeDescriptor {
	return LinkTypeDescriptor{
		Type:     t,
		Pattern:  regexp.MustCompile(`^https://link\.deezer\.com/s/[A-Za-z0-9]+$`),
		BaseURL:  "https://link.deezer.com/s/",
		SampleID: "30Xz6Yw1b3c7QKp2",
	}
}
