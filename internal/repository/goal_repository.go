package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"studyhub_backend/internal/model"
)

// ErrMalformedGoals 存储中的内容无法解析为目标集合
var ErrMalformedGoals = errors.New("stored goal collection is malformed")

// GoalRepository 负责目标集合的整体读写：每个所有者一份 blob，没有增量写入
type GoalRepository struct {
	store   BlobStore
	baseKey string
}

func NewGoalRepository(store BlobStore, baseKey string) *GoalRepository {
	if baseKey == "" {
		baseKey = "academicGoals"
	}
	return &GoalRepository{store: store, baseKey: baseKey}
}

// Key 匿名用户使用基础 key，登录用户追加 ":<owner>"
func (r *GoalRepository) Key(owner string) string {
	if owner == "" {
		return r.baseKey
	}
	return r.baseKey + ":" + owner
}

// Load 返回 (nil, nil) 表示从未保存过或内容为空
func (r *GoalRepository) Load(ctx context.Context, owner string) ([]model.AcademicGoal, error) {
	raw, err := r.store.Get(ctx, r.Key(owner))
	if err != nil {
		return nil, fmt.Errorf("load goals %q: %w", r.Key(owner), err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return DecodeGoals(raw)
}

func (r *GoalRepository) Save(ctx context.Context, owner string, goals []model.AcademicGoal) error {
	raw, err := EncodeGoals(goals)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, r.Key(owner), raw); err != nil {
		return fmt.Errorf("save goals %q: %w", r.Key(owner), err)
	}
	return nil
}

func (r *GoalRepository) Ping(ctx context.Context) error {
	return r.store.Ping(ctx)
}

func EncodeGoals(goals []model.AcademicGoal) ([]byte, error) {
	if goals == nil {
		goals = []model.AcademicGoal{}
	}
	return json.Marshal(goals)
}

func DecodeGoals(raw []byte) ([]model.AcademicGoal, error) {
	var goals []model.AcademicGoal
	if err := json.Unmarshal(raw, &goals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedGoals, err)
	}
	return goals, nil
}
