package model

import "time"

type GradeBand string

const (
	GradeExcellent GradeBand = "excellent"
	GradeGood      GradeBand = "good"
	GradeFair      GradeBand = "fair"
	GradePassing   GradeBand = "passing"
	GradeFailing   GradeBand = "failing"
)

type CourseGrade struct {
	ID         string    `json:"id"`
	CourseName string    `json:"courseName"`
	Grade      int       `json:"grade"`
	Band       GradeBand `json:"band"`
}

type Attendance struct {
	AttendedClasses int `json:"attendedClasses"`
	TotalClasses    int `json:"totalClasses"`
	Percentage      int `json:"percentage"`
}

type DeadlineItem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Course  string    `json:"course"`
	DueDate time.Time `json:"dueDate"`
}
