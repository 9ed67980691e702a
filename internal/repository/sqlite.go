package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the gorm model behind the sqlite backend. Members are stored as a JSON array.
type KVEntry struct {
	Namespace string `gorm:"primaryKey"`
	ItemKey   string `gorm:"primaryKey"`
	Members   string `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_store"
}

type sqliteRepository struct {
	db        *gorm.DB
	namespace string
}

// NewSQLiteRepository migrates the kv_store table and returns a repository over it.
func NewSQLiteRepository(db *gorm.DB, namespace string) (FavoritesRepository, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_store: %w", err)
	}
	return &sqliteRepository{db: db, namespace: namespace}, nil
}

func (r *sqliteRepository) Load(ctx context.Context, key string) ([]string, error) {
	var entry KVEntry
	err := r.db.WithContext(ctx).
		Where("namespace = ? AND item_key = ?", r.namespace, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s/%s: %w", r.namespace, key, err)
	}

	var members []string
	if err := json.Unmarshal([]byte(entry.Members), &members); err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrCorrupt, r.namespace, key, err)
	}
	return members, nil
}

func (r *sqliteRepository) Save(ctx context.Context, key string, members []string) error {
	if members == nil {
		members = []string{}
	}
	encoded, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("failed to encode members: %w", err)
	}

	entry := KVEntry{
		Namespace: r.namespace,
		ItemKey:   key,
		Members:   string(encoded),
		UpdatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "item_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"members", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", r.namespace, key, err)
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, key string) error {
	err := r.db.WithContext(ctx).
		Where("namespace = ? AND item_key = ?", r.namespace, key).
		Delete(&KVEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", r.namespace, key, err)
	}
	return nil
}
