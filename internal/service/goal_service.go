package service

import (
	"context"
	"errors"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/logger"
	"studyhub_backend/pkg/monitoring"
	"sync"
	"time"

	"go.uber.org/zap"
)

// GoalStore 单个所有者的目标集合持久化接口：整体读取、整体覆盖
type GoalStore interface {
	Load(ctx context.Context) ([]model.AcademicGoal, error)
	Save(ctx context.Context, goals []model.AcademicGoal) error
}

// CreateGoalRequest 创建目标的请求结构
type CreateGoalRequest struct {
	Description string          `json:"description" binding:"required,min=5,max=200"`
	Type        model.GoalType  `json:"type" binding:"required,oneof=grade completion study_hours"`
	TargetValue model.GoalValue `json:"targetValue" binding:"required"`
	TargetDate  string          `json:"targetDate"`
}

// UpdateGoalRequest 只允许修改当前值
type UpdateGoalRequest struct {
	CurrentValue model.GoalValue `json:"currentValue"`
}

// GoalTracker 持有一个所有者的目标集合。集合在首次使用时加载，
// 每次变更后整体保存；保存失败时回滚内存中的变更。
type GoalTracker struct {
	mu     sync.Mutex
	store  GoalStore
	seed   func(now time.Time) []model.AcademicGoal
	now    func() time.Time
	goals  []model.AcademicGoal
	loaded bool
}

func NewGoalTracker(store GoalStore, seed func(now time.Time) []model.AcademicGoal, now func() time.Time) *GoalTracker {
	if now == nil {
		now = time.Now
	}
	if seed == nil {
		seed = func(time.Time) []model.AcademicGoal { return nil }
	}
	return &GoalTracker{store: store, seed: seed, now: now}
}

func (t *GoalTracker) ensureLoaded(ctx context.Context) error {
	if t.loaded {
		return nil
	}

	goals, err := t.store.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrMalformedGoals):
		logger.Log.Warn("Stored goals are malformed, falling back to seed goals", zap.Error(err))
		goals = t.seed(t.now())
	case err != nil:
		return errors.Join(util.ErrStoreUnavailable, err)
	case goals == nil:
		goals = t.seed(t.now())
	}

	t.goals = goals
	t.loaded = true
	return nil
}

// mutate 在锁内执行变更并保存；fn 返回 false 表示没有变化（例如 id 不存在），不写存储
func (t *GoalTracker) mutate(ctx context.Context, op string, fn func(goals []model.AcademicGoal) ([]model.AcademicGoal, bool)) error {
	if err := t.ensureLoaded(ctx); err != nil {
		return err
	}

	prev := t.goals
	next, changed := fn(append([]model.AcademicGoal(nil), prev...))
	if !changed {
		monitoring.GoalMutations.WithLabelValues(op, "noop").Inc()
		return nil
	}

	if err := t.store.Save(ctx, next); err != nil {
		monitoring.GoalMutations.WithLabelValues(op, "error").Inc()
		logger.Log.Error("Failed to save goals", zap.String("op", op), zap.Error(err))
		return errors.Join(util.ErrStoreUnavailable, err)
	}

	t.goals = next
	monitoring.GoalMutations.WithLabelValues(op, "ok").Inc()
	return nil
}

func indexOf(goals []model.AcademicGoal, id string) int {
	for i := range goals {
		if goals[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *GoalTracker) List(ctx context.Context) ([]model.AcademicGoal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return append([]model.AcademicGoal{}, t.goals...), nil
}

func (t *GoalTracker) Get(ctx context.Context, id string) (*model.AcademicGoal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	i := indexOf(t.goals, id)
	if i < 0 {
		return nil, util.ErrGoalNotFound
	}
	goal := t.goals[i]
	return &goal, nil
}

// Create 校验并创建目标，新目标排在最前面
func (t *GoalTracker) Create(ctx context.Context, req CreateGoalRequest) (*model.AcademicGoal, error) {
	goal, err := t.buildGoal(req)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	err = t.mutate(ctx, "create", func(goals []model.AcademicGoal) ([]model.AcademicGoal, bool) {
		return append([]model.AcademicGoal{*goal}, goals...), true
	})
	if err != nil {
		return nil, err
	}
	return goal, nil
}

func (t *GoalTracker) buildGoal(req CreateGoalRequest) (*model.AcademicGoal, error) {
	verr := util.NewValidationError()
	if err := collectFieldErrors(bindingValidate.Struct(req), "", verr); err != nil {
		return nil, err
	}

	now := t.now()
	target, ok := req.TargetValue.Float()
	switch {
	case verr.Fields["targetValue"] != "":
	case !ok:
		verr.Add("targetValue", "must be a number")
	case target < 0:
		verr.Add("targetValue", "must not be negative")
	case target > 100 && (req.Type == model.GoalTypeGrade || req.Type == model.GoalTypeCompletion):
		verr.Add("targetValue", "must be at most 100")
	}

	var targetDate *time.Time
	if req.TargetDate != "" {
		d, err := parseTargetDate(req.TargetDate, now.Location())
		if err != nil {
			verr.Add("targetDate", "must be a date in YYYY-MM-DD format")
		} else {
			targetDate = &d
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	current := model.GoalValue("")
	if req.Type == model.GoalTypeCompletion {
		current = model.NumberValue(0)
	}

	return &model.AcademicGoal{
		ID:           model.GenerateUUID(),
		Description:  req.Description,
		Type:         req.Type,
		TargetValue:  model.NumberValue(target),
		CurrentValue: current,
		TargetDate:   targetDate,
		CreatedAt:    now,
	}, nil
}

func parseTargetDate(s string, loc *time.Location) (time.Time, error) {
	if d, err := time.ParseInLocation(util.DateFormat, s, loc); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// UpdateCurrentValue 替换当前值，不做范围截断；id 不存在时静默忽略并返回 nil
func (t *GoalTracker) UpdateCurrentValue(ctx context.Context, id string, value model.GoalValue) (*model.AcademicGoal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var updated *model.AcademicGoal
	err := t.mutate(ctx, "update", func(goals []model.AcademicGoal) ([]model.AcademicGoal, bool) {
		i := indexOf(goals, id)
		if i < 0 {
			return goals, false
		}
		goals[i].CurrentValue = value
		g := goals[i]
		updated = &g
		return goals, true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Advance 一键推进：按类型给出建议值并写入；id 不存在时静默忽略
func (t *GoalTracker) Advance(ctx context.Context, id string) (*model.AcademicGoal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var updated *model.AcademicGoal
	err := t.mutate(ctx, "advance", func(goals []model.AcademicGoal) ([]model.AcademicGoal, bool) {
		i := indexOf(goals, id)
		if i < 0 {
			return goals, false
		}
		goals[i].CurrentValue = SuggestIncrement(goals[i])
		g := goals[i]
		updated = &g
		return goals, true
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 删除目标；id 不存在时静默忽略，返回值表示是否真的删除了
func (t *GoalTracker) Delete(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	deleted := false
	err := t.mutate(ctx, "delete", func(goals []model.AcademicGoal) ([]model.AcademicGoal, bool) {
		i := indexOf(goals, id)
		if i < 0 {
			return goals, false
		}
		deleted = true
		return append(goals[:i], goals[i+1:]...), true
	})
	return deleted, err
}

// Views 带派生状态的目标列表
func (t *GoalTracker) Views(ctx context.Context) ([]GoalView, error) {
	goals, err := t.List(ctx)
	if err != nil {
		return nil, err
	}
	now := t.now()
	views := make([]GoalView, len(goals))
	for i, g := range goals {
		views[i] = NewGoalView(g, now)
	}
	return views, nil
}

func (t *GoalTracker) View(goal model.AcademicGoal) GoalView {
	return NewGoalView(goal, t.now())
}

// ownerGoalStore 把 GoalRepository 绑定到某个所有者
type ownerGoalStore struct {
	repo  *repository.GoalRepository
	owner string
}

func (s ownerGoalStore) Load(ctx context.Context) ([]model.AcademicGoal, error) {
	return s.repo.Load(ctx, s.owner)
}

func (s ownerGoalStore) Save(ctx context.Context, goals []model.AcademicGoal) error {
	return s.repo.Save(ctx, s.owner, goals)
}

// GoalService 按所有者管理 GoalTracker
type GoalService struct {
	GoalRepo *repository.GoalRepository
	now      func() time.Time

	mu       sync.Mutex
	trackers map[string]*GoalTracker
}

func NewGoalService(goalRepo *repository.GoalRepository, now func() time.Time) *GoalService {
	if now == nil {
		now = time.Now
	}
	return &GoalService{
		GoalRepo: goalRepo,
		now:      now,
		trackers: make(map[string]*GoalTracker),
	}
}

func (s *GoalService) Tracker(owner string) *GoalTracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.trackers[owner]
	if !ok {
		t = NewGoalTracker(ownerGoalStore{repo: s.GoalRepo, owner: owner}, SeedGoals, s.now)
		s.trackers[owner] = t
	}
	return t
}

func (s *GoalService) Ping(ctx context.Context) error {
	return s.GoalRepo.Ping(ctx)
}
