package ports

import (
	"context"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// Field is a bit set of metadata fields.
type Field uint8

const (
	FieldTitle Field = 1 << iota
	FieldArtist
	FieldArtwork

	AllFields = FieldTitle | FieldArtist | FieldArtwork
)

// MetadataProvider is one step of a metadata fallback chain. Implementations
// call a single external endpoint; any error means the step contributed
// nothing.
type MetadataProvider interface {
	// Fetch returns whatever the provider knows about the canonical URL.
	Fetch(ctx context.Context, url string) (domain.Metadata, error)

	// Provides reports which fields the provider can ever fill. The chain
	// skips a provider once all of them are known.
	Provides() Field

	// Name identifies the provider in logs (e.g., "spotify-oembed").
	Name() string
}

// MetadataResolver resolves display metadata for a canonical URL. It never
// fails; fields the caller already knows are returned untouched.
type MetadataResolver interface {
	Resolve(ctx context.Context, url string, known domain.Metadata) domain.Metadata
}

// LinkRepository is the authoritative record store for links and folders.
// Every operation is scoped to an owner.
type LinkRepository interface {
	CreateLink(ctx context.Context, link *domain.Link) error
	GetLink(ctx context.Context, ownerID, linkID string) (*domain.Link, error)
	UpdateLink(ctx context.Context, link *domain.Link) error
	UpdateLinkFolder(ctx context.Context, ownerID, linkID string, folderID *string) error

	// UpdateLinkOrder gives every owned id its position in the surviving
	// subsequence. Ids that are missing or owned by someone else are dropped.
	UpdateLinkOrder(ctx context.Context, ownerID string, ids []string) (*domain.OrderResult, error)

	DeleteLink(ctx context.Context, ownerID, linkID string) error

	// ListLinks returns the owner's links by order key, ties broken by
	// creation time.
	ListLinks(ctx context.Context, ownerID string, filter LinkFilter) ([]domain.Link, error)

	CreateFolder(ctx context.Context, folder *domain.Folder) error
	UpdateFolder(ctx context.Context, ownerID, folderID, name string) (*domain.Folder, error)

	// DeleteFolder removes the folder and moves its links to the top level.
	DeleteFolder(ctx context.Context, ownerID, folderID string) error
	ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error)
}

// LinkFilter narrows a link listing.
type LinkFilter struct {
	// Scoped restricts the listing to FolderID (nil meaning top level).
	Scoped   bool
	FolderID *string
}

// LinkService defines the driving port used by the HTTP layer.
type LinkService interface {
	Canonicalize(ctx context.Context, req domain.CanonicalizeRequest) (string, error)
	ResolveMetadata(ctx context.Context, req domain.MetadataRequest) domain.Metadata

	CreateLink(ctx context.Context, ownerID string, req domain.CreateLinkRequest) (*domain.Link, error)
	UpdateLink(ctx context.Context, ownerID, linkID string, req domain.UpdateLinkRequest) (*domain.Link, error)
	UpdateLinkFolder(ctx context.Context, ownerID, linkID string, folderID *string) error
	UpdateLinkOrder(ctx context.Context, ownerID string, ids []string) (*domain.OrderResult, error)
	DeleteLink(ctx context.Context, ownerID, linkID string) error

	// ManageLinks is the owner's view: every link, annotated with its
	// schedule state.
	ManageLinks(ctx context.Context, ownerID string, filter LinkFilter) ([]domain.LinkView, error)

	// PublicLinks is the visitor view: scheduled links are hidden until due.
	PublicLinks(ctx context.Context, ownerID string) ([]domain.Link, error)

	CreateFolder(ctx context.Context, ownerID, name string) (*domain.Folder, error)
	UpdateFolder(ctx context.Context, ownerID, folderID, name string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, ownerID, folderID string) error
	ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error)
}
