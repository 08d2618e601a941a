package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"studyhub_backend/internal/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// OSSBlobStore 阿里云 OSS 实现；SDK 不支持 context，ctx 参数仅为满足接口
type OSSBlobStore struct {
	bucket *oss.Bucket
}

func NewOSSBlobStore(cfg *config.StorageConfig) (*OSSBlobStore, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKey, cfg.OSSSecretKey)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.OSSBucket)
	if err != nil {
		return nil, err
	}

	return &OSSBlobStore{bucket: bucket}, nil
}

func (s *OSSBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	body, err := s.bucket.GetObject(objectName(key))
	if err != nil {
		var serr oss.ServiceError
		if errors.As(err, &serr) && serr.Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	defer body.Close()

	return io.ReadAll(body)
}

func (s *OSSBlobStore) Put(ctx context.Context, key string, value []byte) error {
	return s.bucket.PutObject(objectName(key), bytes.NewReader(value), oss.ContentType("application/json"))
}

func (s *OSSBlobStore) Ping(ctx context.Context) error {
	_, err := s.bucket.IsObjectExist(objectName("healthcheck"))
	return err
}
