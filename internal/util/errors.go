package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrNoCourses        = errors.New("please add at least one course")
	ErrScheduleInFlight = errors.New("a schedule is already being generated")
	ErrStoreUnavailable = errors.New("goal store unavailable")
)

// ValidationError 字段级校验失败，Fields 为 字段路径 -> 提示信息
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
