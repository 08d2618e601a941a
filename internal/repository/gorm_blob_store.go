package repository

import (
	"context"
	"errors"
	"studyhub_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBlobStore 把 blob 存到 stored_blobs 表，MySQL 和 PostgreSQL 通用
type GormBlobStore struct {
	DB *gorm.DB
}

func NewGormBlobStore(db *gorm.DB) *GormBlobStore {
	return &GormBlobStore{DB: db}
}

func (s *GormBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	var blob model.StoredBlob
	err := s.DB.WithContext(ctx).Where(&model.StoredBlob{Key: key}).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

func (s *GormBlobStore) Put(ctx context.Context, key string, value []byte) error {
	blob := model.StoredBlob{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&blob).Error
}

func (s *GormBlobStore) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
