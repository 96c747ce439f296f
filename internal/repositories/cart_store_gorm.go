package repositories

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRecord is the single-row key-value shape the cart blob is persisted
// under. One row per storage key, whole-blob overwrite on every save.
type CartRecord struct {
	Key       string `gorm:"primaryKey;type:varchar(64)"`
	Blob      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GORMCartStore is a GORM implementation of CartStore.
type GORMCartStore struct {
	db *gorm.DB
}

// OpenCartDB opens the cart database for the given driver ("sqlite" or
// "postgres") and migrates the cart record table.
func OpenCartDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported cart db driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open cart database: %w", err)
	}
	if err := db.AutoMigrate(&CartRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart database: %w", err)
	}
	return db, nil
}

// NewGORMCartStore creates a new instance of GORMCartStore.
func NewGORMCartStore(db *gorm.DB) *GORMCartStore {
	return &GORMCartStore{db: db}
}

// Load returns the blob stored under key.
func (s *GORMCartStore) Load(key string) ([]byte, bool, error) {
	var rec CartRecord
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load cart blob for key %s: %w", key, err)
	}
	return rec.Blob, true, nil
}

// Save overwrites the blob stored under key.
func (s *GORMCartStore) Save(key string, blob []byte) error {
	rec := CartRecord{Key: key, Blob: blob}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save cart blob for key %s: %w", key, err)
	}
	return nil
}
