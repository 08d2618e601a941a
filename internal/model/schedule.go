package model

// CourseEntry 表单中的一门课程及其可选成绩
type CourseEntry struct {
	Name  string   `json:"name"`
	Grade *float64 `json:"grade,omitempty"`
}

// GradeEntry 与课程列表同步的成绩行
type GradeEntry struct {
	CourseName string   `json:"courseName"`
	Grade      *float64 `json:"grade,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type Deadline struct {
	Course     string `json:"course" validate:"required"`
	Assignment string `json:"assignment" validate:"required"`
	Deadline   string `json:"deadline" validate:"required,datetime=2006-01-02"`
}

type ExamDate struct {
	Course string `json:"course" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
}

// ScheduleForm 用户提交的原始表单，未经过滤和校验
type ScheduleForm struct {
	Courses           []CourseEntry `json:"courses"`
	Grades            []GradeEntry  `json:"grades"`
	UpcomingDeadlines []Deadline    `json:"upcomingDeadlines"`
	ExamDates         []ExamDate    `json:"examDates"`
	StudyHoursPerDay  int           `json:"studyHoursPerDay"`
}

// ScheduleRequest 校验通过、可以交给生成服务的请求，不落库
type ScheduleRequest struct {
	Courses           []string           `json:"courses"`
	Grades            map[string]float64 `json:"grades"`
	UpcomingDeadlines []Deadline         `json:"upcomingDeadlines"`
	ExamDates         []ExamDate         `json:"examDates"`
	StudyHoursPerDay  int                `json:"studyHoursPerDay"`
}

// GeneratedSchedule 生成服务返回的结构化结果
type GeneratedSchedule struct {
	Schedule string `json:"schedule"`
}

type ScheduleState string

const (
	ScheduleIdle     ScheduleState = "idle"
	ScheduleLoading  ScheduleState = "loading"
	ScheduleComplete ScheduleState = "complete"
)

// ScheduleOutcome 生成结果：OK 为 true 时 Schedule 有效，否则 Reason 说明失败原因
type ScheduleOutcome struct {
	OK       bool   `json:"ok"`
	Schedule string `json:"schedule,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func ScheduleOK(schedule string) *ScheduleOutcome {
	return &ScheduleOutcome{OK: true, Schedule: schedule}
}

func ScheduleFailed(reason string) *ScheduleOutcome {
	return &ScheduleOutcome{Reason: reason}
}

// ScheduleStatus 对外可见的三种状态之一，complete 时附带结果
type ScheduleStatus struct {
	State   ScheduleState    `json:"state"`
	Outcome *ScheduleOutcome `json:"outcome,omitempty"`
}
