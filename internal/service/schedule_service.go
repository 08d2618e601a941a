package service

import (
	"context"
	"errors"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
	"studyhub_backend/pkg/logger"
	"studyhub_backend/pkg/monitoring"
	"studyhub_backend/pkg/tracing"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ScheduleGenerator 外部文本生成能力：输入结构化请求，返回只有 schedule 字段的结果。
// 可能失败，没有延迟上限，超时由实现自己负责。
type ScheduleGenerator interface {
	Generate(ctx context.Context, req *model.ScheduleRequest) (*model.GeneratedSchedule, error)
}

const generationFailedReason = "Failed to generate schedule. Please check your inputs and try again."

// ScheduleService 每个所有者同一时刻最多一个生成请求；状态 idle -> loading -> complete
type ScheduleService struct {
	Generator ScheduleGenerator

	mu     sync.Mutex
	states map[string]*model.ScheduleStatus
}

func NewScheduleService(generator ScheduleGenerator) *ScheduleService {
	return &ScheduleService{
		Generator: generator,
		states:    make(map[string]*model.ScheduleStatus),
	}
}

// Status 当前状态的副本，从未提交过时为 idle
func (s *ScheduleService) Status(owner string) model.ScheduleStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[owner]
	if !ok {
		return model.ScheduleStatus{State: model.ScheduleIdle}
	}
	out := *st
	if st.Outcome != nil {
		outcome := *st.Outcome
		out.Outcome = &outcome
	}
	return out
}

// SubmitForm 校验表单后提交。字段错误时状态不变；没有课程时清空上一次结果回到 idle。
func (s *ScheduleService) SubmitForm(ctx context.Context, owner string, form model.ScheduleForm) (*model.ScheduleOutcome, error) {
	req, err := ValidateScheduleForm(form)
	if errors.Is(err, util.ErrNoCourses) {
		s.mu.Lock()
		if st, ok := s.states[owner]; !ok || st.State != model.ScheduleLoading {
			delete(s.states, owner)
		}
		s.mu.Unlock()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	return s.Submit(ctx, owner, req)
}

// Submit 调用生成服务并等待结果。调用方取消 ctx 不会中断生成，结果仍记录为该所有者的状态。
// 生成失败不返回 error，而是返回 OK=false 的结果。
func (s *ScheduleService) Submit(ctx context.Context, owner string, req *model.ScheduleRequest) (*model.ScheduleOutcome, error) {
	s.mu.Lock()
	if st, ok := s.states[owner]; ok && st.State == model.ScheduleLoading {
		s.mu.Unlock()
		return nil, util.ErrScheduleInFlight
	}
	s.states[owner] = &model.ScheduleStatus{State: model.ScheduleLoading}
	s.mu.Unlock()

	ctx, span := tracing.Tracer.Start(context.WithoutCancel(ctx), "schedule.generate")
	span.SetAttributes(
		attribute.Int("schedule.courses", len(req.Courses)),
		attribute.Int("schedule.deadlines", len(req.UpcomingDeadlines)),
		attribute.Int("schedule.exams", len(req.ExamDates)),
	)
	defer span.End()

	start := time.Now()
	result, err := s.Generator.Generate(ctx, req)
	monitoring.ScheduleGenerationDuration.Observe(time.Since(start).Seconds())

	var outcome *model.ScheduleOutcome
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		monitoring.ScheduleGenerations.WithLabelValues("error").Inc()
		logger.Log.Error("Error generating schedule", zap.String("owner", owner), zap.Error(err))
		outcome = model.ScheduleFailed(generationFailedReason)
	} else {
		monitoring.ScheduleGenerations.WithLabelValues("ok").Inc()
		outcome = model.ScheduleOK(result.Schedule)
	}

	s.mu.Lock()
	s.states[owner] = &model.ScheduleStatus{State: model.ScheduleComplete, Outcome: outcome}
	s.mu.Unlock()

	return outcome, nil
}
