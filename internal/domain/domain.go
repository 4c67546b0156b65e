package domain

import "time"

// LinkType is the kind of content a music link points to.
type LinkType string

const (
	LinkTypeTrack    LinkType = "track"
	LinkTypeAlbum    LinkType = "album"
	LinkTypePlaylist LinkType = "playlist"
)

// Valid reports whether t is one of the known link types.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeTrack, LinkTypeAlbum, LinkTypePlaylist:
		return true
	}
	return false
}

// Platform identifies a supported music platform by its display name.
type Platform string

const (
	PlatformSpotify      Platform = "Spotify"
	PlatformAppleMusic   Platform = "Apple Music"
	PlatformDeezer       Platform = "Deezer"
	PlatformTidal        Platform = "Tidal"
	PlatformAmazonMusic  Platform = "Amazon Music"
	PlatformYouTubeMusic Platform = "YouTube Music"
)

// Metadata is the display information resolved for a canonical URL. Empty
// fields mean nothing was found; an all-empty value is a valid outcome.
type Metadata struct {
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	ArtworkURL string `json:"artworkUrl,omitempty"`
}

// Empty reports whether no field is populated.
func (m Metadata) Empty() bool {
	return m.Title == "" && m.Artist == "" && m.ArtworkURL == ""
}

// Complete reports whether every field is populated.
func (m Metadata) Complete() bool {
	return m.Title != "" && m.Artist != "" && m.ArtworkURL != ""
}

// MusicLinkItem is one platform entry of a music link.
type MusicLinkItem struct {
	Platform         Platform `json:"platform"`
	Type             LinkType `json:"type"`
	URL              string   `json:"url"`
	MusicTrackTitle  string   `json:"musicTrackTitle,omitempty"`
	MusicArtistName  string   `json:"musicArtistName,omitempty"`
	MusicAlbumArtURL string   `json:"musicAlbumArtUrl,omitempty"`
}

// Metadata returns the item's display fields as a Metadata value.
func (m MusicLinkItem) Metadata() Metadata {
	return Metadata{
		Title:      m.MusicTrackTitle,
		Artist:     m.MusicArtistName,
		ArtworkURL: m.MusicAlbumArtURL,
	}
}

// WithMetadata returns a copy of the item carrying md.
func (m MusicLinkItem) WithMetadata(md Metadata) MusicLinkItem {
	m.MusicTrackTitle = md.Title
	m.MusicArtistName = md.Artist
	m.MusicAlbumArtURL = md.ArtworkURL
	return m
}

// Link is a single entry on a user's page.
type Link struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"ownerId"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Order       float64         `json:"order"`
	FolderID    *string         `json:"folderId,omitempty"`
	MusicLinks  []MusicLinkItem `json:"musicLinks,omitempty"`
	Preview     Preview         `json:"preview"`
	ScheduledAt *int64          `json:"scheduledAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// InFolder reports whether the link belongs to the given folder. A nil
// folderID selects top-level links.
func (l Link) InFolder(folderID *string) bool {
	if folderID == nil {
		return l.FolderID == nil
	}
	return l.FolderID != nil && *l.FolderID == *folderID
}

// Folder groups links on a page.
type Folder struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// LinkView is a link as shown in the owner's management listing.
type LinkView struct {
	Link
	Visible     bool   `json:"visible"`
	PublishesAt *int64 `json:"publishesAt,omitempty"`
}

// OrderResult reports how a reorder batch was applied. Dropped ids were not
// owned by the caller or did not exist.
type OrderResult struct {
	Applied []string `json:"applied"`
	Dropped []string `json:"dropped"`
}

// Partial reports whether some submitted ids were dropped.
func (r OrderResult) Partial() bool {
	return len(r.Dropped) > 0
}

// MusicLinkInput is a music link as submitted by the editor, before
// canonicalization. Title, Artist and ArtworkURL are user overrides.
type MusicLinkInput struct {
	Platform   Platform `json:"platform" binding:"required"`
	Type       LinkType `json:"type" binding:"required,linktype"`
	URL        string   `json:"url" binding:"required"`
	Title      string   `json:"musicTrackTitle,omitempty"`
	Artist     string   `json:"musicArtistName,omitempty"`
	ArtworkURL string   `json:"musicAlbumArtUrl,omitempty"`
}

// CreateLinkRequest carries the fields of a new link.
type CreateLinkRequest struct {
	Title       string           `json:"title" binding:"required"`
	URL         string           `json:"url"`
	MusicLinks  []MusicLinkInput `json:"musicLinks,omitempty" binding:"omitempty,dive"`
	Preview     Preview          `json:"preview"`
	FolderID    *string          `json:"folderId,omitempty"`
	ScheduledAt *int64           `json:"scheduledAt,omitempty"`
}

// UpdateLinkRequest carries an edit. Nil MusicLinks and Preview leave the
// stored values unchanged; ClearSchedule wins over ScheduledAt.
type UpdateLinkRequest struct {
	Title         string            `json:"title" binding:"required"`
	URL           string            `json:"url"`
	MusicLinks    *[]MusicLinkInput `json:"musicLinks,omitempty"`
	Preview       *Preview          `json:"preview,omitempty"`
	ScheduledAt   *int64            `json:"scheduledAt,omitempty"`
	ClearSchedule bool              `json:"clearSchedule,omitempty"`
}

// CanonicalizeRequest asks for the canonical URL of a pasted input.
type CanonicalizeRequest struct {
	Platform Platform `json:"platform" binding:"required"`
	Type     LinkType `json:"type" binding:"required,linktype"`
	Input    string   `json:"input" binding:"required"`
}

// MetadataRequest asks for display metadata of a canonical URL. Populated
// fields are treated as overrides.
type MetadataRequest struct {
	URL        string `json:"url" binding:"required"`
	Title      string `json:"title,omitempty"`
	Artist     string `json:"artist,omitempty"`
	ArtworkURL string `json:"artworkUrl,omitempty"`
}

// MoveLinkRequest assigns a link to a folder. A null folderId moves it to
// the top level.
type MoveLinkRequest struct {
	FolderID *string `json:"folderId"`
}

// ReorderRequest is a reorder batch: link ids in their new display order.
type ReorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

// FolderRequest names a folder.
type FolderRequest struct {
	Name string `json:"name" binding:"required"`
}
