package model

import "time"

// GoalType 目标类型，创建后不可修改，决定单位和进度公式
type GoalType string

const (
	GoalTypeGrade      GoalType = "grade"
	GoalTypeCompletion GoalType = "completion"
	GoalTypeStudyHours GoalType = "study_hours"
)

// Unit 展示用单位后缀
func (t GoalType) Unit() string {
	switch t {
	case GoalTypeCompletion:
		return "%"
	case GoalTypeGrade:
		return " pts"
	default:
		return " hrs"
	}
}

type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalOverdue    GoalStatus = "overdue"
	GoalCompleted  GoalStatus = "completed"
)

// AcademicGoal 学生自定义的学业目标
// swagger:model
type AcademicGoal struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Type         GoalType   `json:"type"`
	TargetValue  GoalValue  `json:"targetValue"`
	CurrentValue GoalValue  `json:"currentValue"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}
