package store

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type (
	GormForkedModel struct {
		ID        string `gorm:"primarykey;size:36"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	Link struct {
		GormForkedModel
		OwnerID     string  `gorm:"not null;size:64;index:idx_links_owner_order,priority:1"`
		Title       string  `gorm:"not null"`
		URL         string  `gorm:"not null"`
		SortOrder   float64 `gorm:"not null;index:idx_links_owner_order,priority:2"`
		FolderID    *string `gorm:"size:36;index"`
		MusicLinks  datatypes.JSON
		Preview     datatypes.JSON
		ScheduledAt *int64
	}

	Folder struct {
		GormForkedModel
		OwnerID  string `gorm:"not null;size:64;index"`
		Name     string `gorm:"not null"`
		Position int    `gorm:"not null;default:0"`
	}
)

// Open connects to the database and migrates the schema. driver is
// "sqlite" (dsn is a file path or memory DSN) or "postgres".
func Open(driver, dsn string, l *zap.SugaredLogger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, errors.Errorf("unknown database driver %q", driver)
	}

	gormLogger := logger.New(zap.NewStdLog(l.Desugar()), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if driver == DriverSQLite && strings.Contains(dsn, "memory") {
		// every pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get sql db")
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&Link{}); err != nil {
		return nil, errors.Wrap(err, "migrate link")
	}
	if err := db.AutoMigrate(&Folder{}); err != nil {
		return nil, errors.Wrap(err, "migrate folder")
	}

	return db, nil
}
