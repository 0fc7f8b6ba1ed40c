// SQLite persistence: the catalog as one table, replaced wholesale inside
// a transaction on every save. The transaction gives the same atomic
// whole-collection guarantee as the JSON snapshot's rename; catalog order
// is recovered by ordering on id, which equals append order because ids
// are assigned monotonically.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

// perfumeRow is the table mapping for one catalog entry. Notes are stored
// as a JSON array in a text column so the row schema matches the snapshot
// schema one to one.
type perfumeRow struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"type:text;not null"`
	Description    string `gorm:"type:text"`
	Notes          string `gorm:"type:text"`
	Profile        string `gorm:"type:text"`
	ImageURL       string `gorm:"type:text"`
	Hidden         bool   `gorm:"not null;default:false"`
	LikeCount      int    `gorm:"not null;default:0"`
	DislikeCount   int    `gorm:"not null;default:0"`
	LikePercent    int    `gorm:"not null;default:0"`
	DislikePercent int    `gorm:"not null;default:0"`
}

// TableName returns the database table name for perfumeRow.
func (perfumeRow) TableName() string { return "perfumes" }

// SQLiteBackend persists the catalog in an embedded SQLite database.
type SQLiteBackend struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path, applies PRAGMAs,
// and migrates the perfumes table.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	// Fail early if the parent directory is missing instead of the driver's
	// opaque "out of memory (14)".
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	}

	if err := db.AutoMigrate(&perfumeRow{}); err != nil {
		return nil, err
	}
	return &SQLiteBackend{db: db}, nil
}

// NewSQLiteBackend wraps an already opened GORM handle. The perfumes table
// must exist (tests open their own in-memory databases).
func NewSQLiteBackend(db *gorm.DB) *SQLiteBackend {
	return &SQLiteBackend{db: db}
}

// Load reads the whole collection in catalog order. An empty (or freshly
// migrated) table yields an empty catalog.
func (b *SQLiteBackend) Load(ctx context.Context) ([]domain.Perfume, error) {
	var rows []perfumeRow
	if err := b.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load perfumes: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	items := make([]domain.Perfume, 0, len(rows))
	for _, r := range rows {
		p := domain.Perfume{
			ID:             r.ID,
			Name:           r.Name,
			Description:    r.Description,
			Profile:        r.Profile,
			ImageURL:       r.ImageURL,
			Hidden:         r.Hidden,
			LikeCount:      r.LikeCount,
			DislikeCount:   r.DislikeCount,
			LikePercent:    r.LikePercent,
			DislikePercent: r.DislikePercent,
		}
		if r.Notes != "" {
			if err := json.Unmarshal([]byte(r.Notes), &p.Notes); err != nil {
				return nil, fmt.Errorf("decode notes for perfume %d: %w", r.ID, err)
			}
		}
		items = append(items, p)
	}
	return items, nil
}

// Save replaces the table contents with the given collection inside one
// transaction.
func (b *SQLiteBackend) Save(ctx context.Context, items []domain.Perfume) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&perfumeRow{}).Error; err != nil {
			return fmt.Errorf("clear perfumes: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]perfumeRow, 0, len(items))
		for _, p := range items {
			notes, err := json.Marshal(p.Notes)
			if err != nil {
				return fmt.Errorf("encode notes for perfume %d: %w", p.ID, err)
			}
			rows = append(rows, perfumeRow{
				ID:             p.ID,
				Name:           p.Name,
				Description:    p.Description,
				Notes:          string(notes),
				Profile:        p.Profile,
				ImageURL:       p.ImageURL,
				Hidden:         p.Hidden,
				LikeCount:      p.LikeCount,
				DislikeCount:   p.DislikeCount,
				LikePercent:    p.LikePercent,
				DislikePercent: p.DislikePercent,
			})
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("insert perfumes: %w", err)
		}
		return nil
	})
}
