package service

import (
	"math"
	"strings"
	"studyhub_backend/internal/model"
	"time"

	"github.com/dustin/go-humanize"
)

// ComputeProgress 进度百分比。
// completion 直接取当前值（无法解析按 0，不做上限截断）；
// grade / study_hours 按 当前/目标 计算并截断到 [0,100]，目标为 0 时当前值大于 0 即视为 100。
func ComputeProgress(goal model.AcademicGoal) float64 {
	switch goal.Type {
	case model.GoalTypeCompletion:
		return goal.CurrentValue.Number()
	case model.GoalTypeGrade, model.GoalTypeStudyHours:
		target := goal.TargetValue.Number()
		current := goal.CurrentValue.Number()
		if target == 0 {
			if current > 0 {
				return 100
			}
			return 0
		}
		return math.Min(math.Max(current/target*100, 0), 100)
	default:
		return 0
	}
}

// ComputeStatus 完成优先于逾期
func ComputeStatus(goal model.AcademicGoal, now time.Time) model.GoalStatus {
	if ComputeProgress(goal) >= 100 {
		return model.GoalCompleted
	}
	if goal.TargetDate != nil && dateBefore(*goal.TargetDate, now) {
		return model.GoalOverdue
	}
	return model.GoalInProgress
}

// SuggestIncrement 一键推进时的新值，不是用户输入的精确值
func SuggestIncrement(goal model.AcademicGoal) model.GoalValue {
	current := goal.CurrentValue.Number()
	switch goal.Type {
	case model.GoalTypeCompletion:
		return model.NumberValue(math.Min(current+10, 100))
	case model.GoalTypeGrade:
		return model.NumberValue(math.Min(current+5, goal.TargetValue.Number()))
	case model.GoalTypeStudyHours:
		return model.NumberValue(current + 1)
	default:
		return goal.CurrentValue
	}
}

// dateBefore 按 now 所在时区比较日历日期，a 的日期严格早于 b 的日期时为 true
func dateBefore(a, b time.Time) bool {
	loc := b.Location()
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.Date()
	return time.Date(ay, am, ad, 0, 0, 0, 0, loc).Before(time.Date(by, bm, bd, 0, 0, 0, 0, loc))
}

func distance(a, b time.Time) string {
	if a.After(b) {
		a, b = b, a
	}
	return strings.TrimSpace(humanize.RelTime(a, b, "", ""))
}

// TimeRemaining 例如 "3 days left" / "2 weeks overdue"，没有截止日期时为空串
func TimeRemaining(goal model.AcademicGoal, now time.Time) string {
	if goal.TargetDate == nil {
		return ""
	}
	d := distance(*goal.TargetDate, now)
	if dateBefore(*goal.TargetDate, now) {
		return d + " overdue"
	}
	if d == "now" {
		return "due now"
	}
	return d + " left"
}

// CreatedAgo 例如 "5 days ago"
func CreatedAgo(goal model.AcademicGoal, now time.Time) string {
	return humanize.RelTime(goal.CreatedAt, now, "ago", "from now")
}

// GoalView 目标及其派生展示状态
type GoalView struct {
	model.AcademicGoal
	Progress      float64          `json:"progress"`
	Status        model.GoalStatus `json:"status"`
	Unit          string           `json:"unit"`
	TimeRemaining string           `json:"timeRemaining,omitempty"`
	CreatedAgo    string           `json:"createdAgo"`
}

func NewGoalView(goal model.AcademicGoal, now time.Time) GoalView {
	return GoalView{
		AcademicGoal:  goal,
		Progress:      ComputeProgress(goal),
		Status:        ComputeStatus(goal, now),
		Unit:          goal.Type.Unit(),
		TimeRemaining: TimeRemaining(goal, now),
		CreatedAgo:    CreatedAgo(goal, now),
	}
}
