package model

import (
	"time"

	"github.com/google/uuid"
)

// StoredBlob 扁平 KV 表中的一行，key 对应一个完整序列化后的集合
// swagger:ignore
type StoredBlob struct {
	Key       string    `gorm:"column:blob_key;primaryKey;type:varchar(191)"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

func (StoredBlob) TableName() string {
	return "stored_blobs"
}

func GenerateUUID() string {
	return uuid.New().String()
}
