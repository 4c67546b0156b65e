// Package editor holds the state of the music-link editing dialog: one entry
// per platform, canonical URLs only, and metadata lookups that are dropped
// when they come back after the dialog moved on.
package editor

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

// ErrClosed is returned by mutations on a dismissed session.
var ErrClosed = errors.New("editor session closed")

// Canonicalizer builds canonical URLs from pasted input.
type Canonicalizer interface {
	Canonicalize(platform domain.Platform, t domain.LinkType, input string) (string, error)
}

// Ticket identifies a metadata request. It only applies to the entry it was
// issued for, and only while the session generation is unchanged.
type Ticket struct {
	generation uint64
	platform   domain.Platform
	url        string
}

func (t Ticket) URL() string { return t.url }

// Session is one open editing dialog. It is safe for concurrent use, so a
// metadata lookup may complete on another goroutine.
type Session struct {
	canon    Canonicalizer
	resolver ports.MetadataResolver

	mu         sync.Mutex
	entries    []domain.MusicLinkItem
	generation uint64
	open       bool
}

func NewSession(canon Canonicalizer, resolver ports.MetadataResolver) *Session {
	return &Session{canon: canon, resolver: resolver}
}

// Open starts editing with the given entries. Tickets issued before Open are
// invalidated.
func (s *Session) Open(existing []domain.MusicLinkItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.open = true
	s.entries = append([]domain.MusicLinkItem(nil), existing...)
}

// Dismiss closes the dialog. Lookups still in flight will not apply.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.open = false
}

// Set canonicalizes input and stores it as the entry for platform, adding
// the entry or retargeting the existing one. Retargeting clears the
// entry's metadata.
func (s *Session) Set(platform domain.Platform, t domain.LinkType, input string) (domain.MusicLinkItem, error) {
	canonical, err := s.canon.Canonicalize(platform, t, input)
	if err != nil {
		return domain.MusicLinkItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return domain.MusicLinkItem{}, ErrClosed
	}

	item := domain.MusicLinkItem{Platform: platform, Type: t, URL: canonical}
	if i := s.index(platform); i >= 0 {
		if s.entries[i].URL == canonical && s.entries[i].Type == t {
			return s.entries[i], nil
		}
		s.entries[i] = item
		return item, nil
	}
	s.entries = append(s.entries, item)
	return item, nil
}

// Add is Set for a platform that must not be present yet.
func (s *Session) Add(platform domain.Platform, t domain.LinkType, input string) (domain.MusicLinkItem, error) {
	s.mu.Lock()
	exists := s.index(platform) >= 0
	s.mu.Unlock()
	if exists {
		return domain.MusicLinkItem{}, errors.Wrapf(domain.ErrDuplicatePlatform, "%s", platform)
	}
	return s.Set(platform, t, input)
}

func (s *Session) Remove(platform domain.Platform) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(platform); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// Override sets user-entered metadata on an entry. Non-empty fields replace
// what is stored.
func (s *Session) Override(platform domain.Platform, md domain.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(platform)
	if i < 0 {
		return errors.Wrapf(domain.ErrNotFound, "no %s entry", platform)
	}
	s.entries[i] = s.entries[i].WithMetadata(fill(md, s.entries[i].Metadata()))
	return nil
}

func (s *Session) Entries() []domain.MusicLinkItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.MusicLinkItem(nil), s.entries...)
}

// PrimaryURL is the URL the link opens: the first entry's.
func (s *Session) PrimaryURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[0].URL
}

// Request issues a ticket for the entry of platform.
func (s *Session) Request(platform domain.Platform) (Ticket, domain.Metadata, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(platform)
	if !s.open || i < 0 {
		return Ticket{}, domain.Metadata{}, false
	}
	e := s.entries[i]
	return Ticket{generation: s.generation, platform: platform, url: e.URL}, e.Metadata(), true
}

// Apply stores md on the ticket's entry, filling blank fields only. It
// reports false and changes nothing when the ticket is stale.
func (s *Session) Apply(t Ticket, md domain.Metadata) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || t.generation != s.generation {
		return false
	}
	i := s.index(t.platform)
	if i < 0 || s.entries[i].URL != t.url {
		return false
	}
	s.entries[i] = s.entries[i].WithMetadata(fill(s.entries[i].Metadata(), md))
	return true
}

// Lookup resolves metadata for the entry of platform and applies it if the
// entry is still current when the result arrives.
func (s *Session) Lookup(ctx context.Context, platform domain.Platform) bool {
	ticket, known, ok := s.Request(platform)
	if !ok {
		return false
	}
	md := s.resolver.Resolve(ctx, ticket.url, known)
	return s.Apply(ticket, md)
}

// Inputs converts the entries into save-request items, carrying metadata as
// overrides so the server only resolves what is still blank.
func (s *Session) Inputs() []domain.MusicLinkInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MusicLinkInput, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, domain.MusicLinkInput{
			Platform:   e.Platform,
			Type:       e.Type,
			URL:        e.URL,
			Title:      e.MusicTrackTitle,
			Artist:     e.MusicArtistName,
			ArtworkURL: e.MusicAlbumArtURL,
		})
	}
	return out
}

func (s *Session) index(platform domain.Platform) int {
	for i, e := range s.entries {
		if e.Platform == platform {
			return i
		}
	}
	return -1
}

// fill returns base with its blank fields taken from extra.
func fill(base, extra domain.Metadata) domain.Metadata {
	if base.Title == "" {
		base.Title = extra.Title
	}
	if base.Artist == "" {
		base.Artist = extra.Artist
	}
	if base.ArtworkURL == "" {
		base.ArtworkURL = extra.ArtworkURL
	}
	return base
}
