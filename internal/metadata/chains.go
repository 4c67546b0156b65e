package metadata

import (
	"github.com/go-resty/resty/v2"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	"github.com/jpp0ca/LinkBio-API/internal/adapters/applemusic"
	"github.com/jpp0ca/LinkBio-API/internal/adapters/deezer"
	"github.com/jpp0ca/LinkBio-API/internal/adapters/oembed"
	"github.com/jpp0ca/LinkBio-API/internal/adapters/spotify"
	"github.com/jpp0ca/LinkBio-API/internal/adapters/youtube"
	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// Endpoints overrides provider base URLs. Empty values use the public
// endpoints.
type Endpoints struct {
	Spotify     string
	Deezer      string
	ITunes      string
	YouTube     string
	OEmbedProxy string
}

// NewProviderRegistry wires the per-platform fallback chains:
//
//	Spotify        oEmbed, then embed page (artist only)
//	Deezer         oEmbed
//	Apple Music    iTunes lookup, then generic proxy (pl. playlists)
//	YouTube Music  YouTube oEmbed, then generic proxy
//	anything else  generic proxy
func NewProviderRegistry(client *resty.Client, ep Endpoints) *adapters.ProviderRegistry {
	proxy := oembed.NewProxy(client, ep.OEmbedProxy)

	registry := adapters.NewProviderRegistry()
	registry.Register(domain.PlatformSpotify,
		spotify.NewOEmbed(client, ep.Spotify),
		spotify.NewEmbedPage(client, ep.Spotify),
	)
	registry.Register(domain.PlatformDeezer, deezer.NewOEmbed(client, ep.Deezer))
	registry.Register(domain.PlatformAppleMusic, applemusic.NewLookup(client, ep.ITunes), proxy)
	registry.Register(domain.PlatformYouTubeMusic, youtube.NewOEmbed(client, ep.YouTube), proxy)
	registry.SetFallback(proxy)
	return registry
}
