package domain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// PreviewKind names the card a link renders as.
type PreviewKind string

const (
	PreviewNone      PreviewKind = "none"
	PreviewMedia     PreviewKind = "media"
	PreviewPlaylist  PreviewKind = "playlist"
	PreviewHighlight PreviewKind = "highlight"
)

// MediaPreview is an embedded video or audio player card.
type MediaPreview struct {
	URL          string `json:"url"`
	Provider     string `json:"provider,omitempty"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	EmbedURL     string `json:"embedUrl,omitempty"`
}

// PlaylistPreview is a playlist card with artwork and track count.
type PlaylistPreview struct {
	URL        string   `json:"url"`
	Platform   Platform `json:"platform,omitempty"`
	Title      string   `json:"title,omitempty"`
	OwnerName  string   `json:"ownerName,omitempty"`
	ArtworkURL string   `json:"artworkUrl,omitempty"`
	TrackCount int      `json:"trackCount,omitempty"`
}

// Highlight is a featured card with an image and a call to action.
type Highlight struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
}

// Preview holds at most one preview payload. The zero value is PreviewNone.
// Payloads are only reachable through the constructors, so a Preview can
// never carry two of them at once.
type Preview struct {
	kind      PreviewKind
	media     *MediaPreview
	playlist  *PlaylistPreview
	highlight *Highlight
}

func NoPreview() Preview { return Preview{} }

func MediaCard(m MediaPreview) Preview {
	return Preview{kind: PreviewMedia, media: &m}
}

func PlaylistCard(p PlaylistPreview) Preview {
	return Preview{kind: PreviewPlaylist, playlist: &p}
}

func HighlightCard(h Highlight) Preview {
	return Preview{kind: PreviewHighlight, highlight: &h}
}

// Kind returns the preview variant.
func (p Preview) Kind() PreviewKind {
	if p.kind == "" {
		return PreviewNone
	}
	return p.kind
}

func (p Preview) IsNone() bool { return p.Kind() == PreviewNone }

func (p Preview) Media() (MediaPreview, bool) {
	if p.media == nil {
		return MediaPreview{}, false
	}
	return *p.media, true
}

func (p Preview) Playlist() (PlaylistPreview, bool) {
	if p.playlist == nil {
		return PlaylistPreview{}, false
	}
	return *p.playlist, true
}

func (p Preview) Highlight() (Highlight, bool) {
	if p.highlight == nil {
		return Highlight{}, false
	}
	return *p.highlight, true
}

// URL returns the destination a media or playlist preview points at.
func (p Preview) URL() string {
	switch {
	case p.media != nil:
		return p.media.URL
	case p.playlist != nil:
		return p.playlist.URL
	}
	return ""
}

type previewEnvelope struct {
	Kind      PreviewKind      `json:"kind"`
	Media     *MediaPreview    `json:"media,omitempty"`
	Playlist  *PlaylistPreview `json:"playlist,omitempty"`
	Highlight *Highlight       `json:"highlight,omitempty"`
}

func (p Preview) MarshalJSON() ([]byte, error) {
	return json.Marshal(previewEnvelope{
		Kind:      p.Kind(),
		Media:     p.media,
		Playlist:  p.playlist,
		Highlight: p.highlight,
	})
}

func (p *Preview) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Preview{}
		return nil
	}
	var env previewEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	switch env.Kind {
	case "", PreviewNone:
		*p = Preview{}
	case PreviewMedia:
		if env.Media == nil {
			return errors.Wrap(ErrInvalidInput, "media preview without payload")
		}
		*p = MediaCard(*env.Media)
	case PreviewPlaylist:
		if env.Playlist == nil {
			return errors.Wrap(ErrInvalidInput, "playlist preview without payload")
		}
		*p = PlaylistCard(*env.Playlist)
	case PreviewHighlight:
		if env.Highlight == nil {
			return errors.Wrap(ErrInvalidInput, "highlight without payload")
		}
		*p = HighlightCard(*env.Highlight)
	default:
		return errors.Wrapf(ErrInvalidInput, "unknown preview kind %q", env.Kind)
	}
	return nil
}
