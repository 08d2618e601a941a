package service

import (
	"math"
	"sort"
	"studyhub_backend/internal/model"
	"time"
)

// DashboardService 首页概览：课程成绩、出勤和近期截止事项（示例数据）
type DashboardService struct {
	now func() time.Time
}

func NewDashboardService(now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{now: now}
}

type Dashboard struct {
	Grades     []model.CourseGrade  `json:"grades"`
	Attendance model.Attendance     `json:"attendance"`
	Deadlines  []model.DeadlineItem `json:"upcomingDeadlines"`
}

func GradeBandOf(grade int) model.GradeBand {
	switch {
	case grade >= 90:
		return model.GradeExcellent
	case grade >= 80:
		return model.GradeGood
	case grade >= 70:
		return model.GradeFair
	case grade >= 60:
		return model.GradePassing
	default:
		return model.GradeFailing
	}
}

// AttendancePercentage 四舍五入到整数，总课时为 0 时返回 0
func AttendancePercentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}

func (s *DashboardService) GetDashboard() *Dashboard {
	now := s.now()

	grades := []model.CourseGrade{
		{ID: "1", CourseName: "Mathematics", Grade: 88},
		{ID: "2", CourseName: "Literature", Grade: 92},
		{ID: "3", CourseName: "History", Grade: 75},
		{ID: "4", CourseName: "Physics", Grade: 82},
		{ID: "5", CourseName: "Art", Grade: 95},
	}
	for i := range grades {
		grades[i].Band = GradeBandOf(grades[i].Grade)
	}

	deadlines := []model.DeadlineItem{
		{ID: "d3", Title: "Project Proposal", Course: "Physics", DueDate: now.Add(10 * day)},
		{ID: "d1", Title: "Essay Submission", Course: "Literature", DueDate: now.Add(3 * day)},
		{ID: "d4", Title: "Historical Analysis Paper", Course: "History", DueDate: now.Add(14 * day)},
		{ID: "d2", Title: "Midterm Exam", Course: "Mathematics", DueDate: now.Add(7 * day)},
	}
	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].DueDate.Before(deadlines[j].DueDate)
	})

	attended, total := 45, 50
	return &Dashboard{
		Grades: grades,
		Attendance: model.Attendance{
			AttendedClasses: attended,
			TotalClasses:    total,
			Percentage:      AttendancePercentage(attended, total),
		},
		Deadlines: deadlines,
	}
}
