package service

import (
	"studyhub_backend/internal/model"
	"time"
)

const day = 24 * time.Hour

// SeedGoals 新用户（存储中没有集合）看到的示例目标
func SeedGoals(now time.Time) []model.AcademicGoal {
	calcDue := now.Add(30 * day)
	paperDue := now.Add(15 * day)

	return []model.AcademicGoal{
		{
			ID:           model.GenerateUUID(),
			Description:  "Achieve 90% in Calculus",
			Type:         model.GoalTypeGrade,
			TargetValue:  model.NumberValue(90),
			CurrentValue: model.NumberValue(75),
			TargetDate:   &calcDue,
			CreatedAt:    now.Add(-5 * day),
		},
		{
			ID:           model.GenerateUUID(),
			Description:  "Complete History Research Paper",
			Type:         model.GoalTypeCompletion,
			TargetValue:  model.NumberValue(100),
			CurrentValue: model.NumberValue(40),
			TargetDate:   &paperDue,
			CreatedAt:    now.Add(-2 * day),
		},
	}
}
