package store

import (
	"context"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
)

var linkColumns = []string{
	"id", "owner_id", "title", "url", "sort_order", "folder_id",
	"music_links", "preview", "scheduled_at", "created_at", "updated_at",
}

// Store implements ports.LinkRepository on gorm.
type Store struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

func New(db *gorm.DB, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{db: db, logger: logger}
}

var _ ports.LinkRepository = (*Store)(nil)

// -- Links -------------------------------------------------------------------

func (s *Store) CreateLink(ctx context.Context, link *domain.Link) error {
	if link.ID == "" {
		link.ID = uuid.NewString()
	}
	record, err := fromDomain(link)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if link.FolderID != nil {
			if _, err := ownedFolder(tx, link.OwnerID, *link.FolderID); err != nil {
				return err
			}
		}
		if err := tx.Create(record).Error; err != nil {
			return errors.Wrap(err, "create link")
		}
		link.CreatedAt = record.CreatedAt
		return nil
	})
}

func (s *Store) GetLink(ctx context.Context, ownerID, linkID string) (*domain.Link, error) {
	record, err := ownedLink(s.db.WithContext(ctx), ownerID, linkID)
	if err != nil {
		return nil, err
	}
	return toDomain(record)
}

// UpdateLink stores the editable fields of link. The order key and the
// folder are changed through their own operations.
func (s *Store) UpdateLink(ctx context.Context, link *domain.Link) error {
	record, err := fromDomain(link)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedLink(tx, link.OwnerID, link.ID); err != nil {
			return err
		}
		err := tx.Model(&Link{}).Where("id = ?", link.ID).Updates(map[string]interface{}{
			"title":        record.Title,
			"url":          record.URL,
			"music_links":  record.MusicLinks,
			"preview":      record.Preview,
			"scheduled_at": record.ScheduledAt,
		}).Error
		return errors.Wrap(err, "update link")
	})
}

func (s *Store) UpdateLinkFolder(ctx context.Context, ownerID, linkID string, folderID *string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedLink(tx, ownerID, linkID); err != nil {
			return err
		}
		var value interface{}
		if folderID != nil {
			if _, err := ownedFolder(tx, ownerID, *folderID); err != nil {
				return err
			}
			value = *folderID
		}
		err := tx.Model(&Link{}).Where("id = ?", linkID).Update("folder_id", value).Error
		return errors.Wrap(err, "move link")
	})
}

// UpdateLinkOrder writes positions 0..k-1 to the owned ids in submission
// order. Foreign, missing and repeated ids are skipped without shifting the
// positions of the others.
func (s *Store) UpdateLinkOrder(ctx context.Context, ownerID string, ids []string) (*domain.OrderResult, error) {
	result := &domain.OrderResult{Applied: []string{}, Dropped: []string{}}
	if len(ids) == 0 {
		return result, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owned []string
		err := tx.Model(&Link{}).
			Where("owner_id = ? AND id IN ?", ownerID, ids).
			Pluck("id", &owned).Error
		if err != nil {
			return errors.Wrap(err, "load owned links")
		}

		ownedSet := make(map[string]bool, len(owned))
		for _, id := range owned {
			ownedSet[id] = true
		}

		seen := make(map[string]bool, len(ids))
		position := 0
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			if !ownedSet[id] {
				result.Dropped = append(result.Dropped, id)
				continue
			}

			err := tx.Model(&Link{}).
				Where("id = ? AND owner_id = ?", id, ownerID).
				Update("sort_order", float64(position)).Error
			if err != nil {
				return errors.Wrapf(err, "set order of %s", id)
			}
			result.Applied = append(result.Applied, id)
			position++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Partial() {
		s.logger.Infow("reorder dropped ids", "owner", ownerID, "dropped", result.Dropped)
	}
	return result, nil
}

func (s *Store) DeleteLink(ctx context.Context, ownerID, linkID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedLink(tx, ownerID, linkID); err != nil {
			return err
		}
		return errors.Wrap(tx.Delete(&Link{}, "id = ?", linkID).Error, "delete link")
	})
}

func (s *Store) ListLinks(ctx context.Context, ownerID string, filter ports.LinkFilter) ([]domain.Link, error) {
	query := sq.Select(linkColumns...).
		From("links").
		Where(sq.Eq{"owner_id": ownerID})
	if filter.Scoped {
		if filter.FolderID == nil {
			query = query.Where(sq.Eq{"folder_id": nil})
		} else {
			query = query.Where(sq.Eq{"folder_id": *filter.FolderID})
		}
	}
	query = query.OrderBy("sort_order ASC", "created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build link query")
	}

	var records []Link
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&records).Error; err != nil {
		return nil, errors.Wrap(err, "list links")
	}

	links := make([]domain.Link, 0, len(records))
	for i := range records {
		link, err := toDomain(&records[i])
		if err != nil {
			return nil, err
		}
		links = append(links, *link)
	}
	return links, nil
}

// -- Folders -----------------------------------------------------------------

// CreateFolder appends the folder after the owner's existing ones.
func (s *Store) CreateFolder(ctx context.Context, folder *domain.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Folder{}).Where("owner_id = ?", folder.OwnerID).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count folders")
		}

		record := &Folder{
			GormForkedModel: GormForkedModel{ID: folder.ID},
			OwnerID:         folder.OwnerID,
			Name:            folder.Name,
			Position:        int(count),
		}
		if err := tx.Create(record).Error; err != nil {
			return errors.Wrap(err, "create folder")
		}
		folder.Position = record.Position
		folder.CreatedAt = record.CreatedAt
		return nil
	})
}

func (s *Store) UpdateFolder(ctx context.Context, ownerID, folderID, name string) (*domain.Folder, error) {
	var out *domain.Folder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record, err := ownedFolder(tx, ownerID, folderID)
		if err != nil {
			return err
		}
		if err := tx.Model(record).Update("name", name).Error; err != nil {
			return errors.Wrap(err, "rename folder")
		}
		record.Name = name
		out = folderToDomain(record)
		return nil
	})
	return out, err
}

// DeleteFolder removes the folder; its links survive at the top level.
func (s *Store) DeleteFolder(ctx context.Context, ownerID, folderID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedFolder(tx, ownerID, folderID); err != nil {
			return err
		}
		err := tx.Model(&Link{}).
			Where("owner_id = ? AND folder_id = ?", ownerID, folderID).
			Update("folder_id", nil).Error
		if err != nil {
			return errors.Wrap(err, "release folder links")
		}
		return errors.Wrap(tx.Delete(&Folder{}, "id = ?", folderID).Error, "delete folder")
	})
}

func (s *Store) ListFolders(ctx context.Context, ownerID string) ([]domain.Folder, error) {
	var records []Folder
	err := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("position ASC").Order("created_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, errors.Wrap(err, "list folders")
	}

	folders := make([]domain.Folder, 0, len(records))
	for i := range records {
		folders = append(folders, *folderToDomain(&records[i]))
	}
	return folders, nil
}

// -- Helpers -----------------------------------------------------------------

// ownedLink loads a link and checks it belongs to ownerID.
func ownedLink(db *gorm.DB, ownerID, linkID string) (*Link, error) {
	var record Link
	err := db.Where("id = ?", linkID).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(domain.ErrNotFound, "link %s", linkID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load link")
	}
	if record.OwnerID != ownerID {
		return nil, errors.Wrapf(domain.ErrUnauthorized, "link %s", linkID)
	}
	return &record, nil
}

func ownedFolder(db *gorm.DB, ownerID, folderID string) (*Folder, error) {
	var record Folder
	err := db.Where("id = ?", folderID).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(domain.ErrNotFound, "folder %s", folderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load folder")
	}
	if record.OwnerID != ownerID {
		return nil, errors.Wrapf(domain.ErrUnauthorized, "folder %s", folderID)
	}
	return &record, nil
}

func fromDomain(link *domain.Link) (*Link, error) {
	music, err := json.Marshal(link.MusicLinks)
	if err != nil {
		return nil, errors.Wrap(err, "encode music links")
	}
	preview, err := json.Marshal(link.Preview)
	if err != nil {
		return nil, errors.Wrap(err, "encode preview")
	}
	return &Link{
		GormForkedModel: GormForkedModel{ID: link.ID, CreatedAt: link.CreatedAt},
		OwnerID:         link.OwnerID,
		Title:           link.Title,
		URL:             link.URL,
		SortOrder:       link.Order,
		FolderID:        link.FolderID,
		MusicLinks:      datatypes.JSON(music),
		Preview:         datatypes.JSON(preview),
		ScheduledAt:     link.ScheduledAt,
	}, nil
}

func toDomain(record *Link) (*domain.Link, error) {
	link := &domain.Link{
		ID:          record.ID,
		OwnerID:     record.OwnerID,
		Title:       record.Title,
		URL:         record.URL,
		Order:       record.SortOrder,
		FolderID:    record.FolderID,
		ScheduledAt: record.ScheduledAt,
		CreatedAt:   record.CreatedAt,
	}
	if len(record.MusicLinks) > 0 {
		if err := json.Unmarshal(record.MusicLinks, &link.MusicLinks); err != nil {
			return nil, errors.Wrapf(err, "decode music links of %s", record.ID)
		}
	}
	if len(record.Preview) > 0 {
		if err := json.Unmarshal(record.Preview, &link.Preview); err != nil {
			return nil, errors.Wrapf(err, "decode preview of %s", record.ID)
		}
	}
	return link, nil
}

func folderToDomain(record *Folder) *domain.Folder {
	return &domain.Folder{
		ID:        record.ID,
		OwnerID:   record.OwnerID,
		Name:      record.Name,
		Position:  record.Position,
		CreatedAt: record.CreatedAt,
	}
}
