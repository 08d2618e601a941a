package service

import (
	"fmt"
	"strings"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
)

// SyncGrades 课程列表变化时调用：每门课程对应一行成绩，
// 同名课程沿用已有成绩，已删除课程的成绩随之丢弃
func SyncGrades(courses []model.CourseEntry, grades []model.GradeEntry) []model.GradeEntry {
	known := make(map[string]*float64, len(grades))
	for _, g := range grades {
		if _, exists := known[g.CourseName]; !exists {
			known[g.CourseName] = g.Grade
		}
	}

	synced := make([]model.GradeEntry, len(courses))
	for i, c := range courses {
		grade := c.Grade
		if grade == nil {
			grade = known[c.Name]
		}
		synced[i] = model.GradeEntry{CourseName: c.Name, Grade: grade}
	}
	return synced
}

// ValidateScheduleForm 过滤空行并校验字段，返回可提交的请求。
// 字段错误返回 *util.ValidationError；过滤后没有课程返回 util.ErrNoCourses。
func ValidateScheduleForm(form model.ScheduleForm) (*model.ScheduleRequest, error) {
	verr := util.NewValidationError()

	req := &model.ScheduleRequest{
		Courses:           []string{},
		Grades:            map[string]float64{},
		UpcomingDeadlines: []model.Deadline{},
		ExamDates:         []model.ExamDate{},
		StudyHoursPerDay:  form.StudyHoursPerDay,
	}

	seen := make(map[string]bool, len(form.Courses))
	for i, g := range SyncGrades(form.Courses, form.Grades) {
		name := strings.TrimSpace(g.CourseName)
		if name == "" {
			continue
		}
		if err := collectFieldErrors(modelValidate.Struct(g), fmt.Sprintf("courses[%d]", i), verr); err != nil {
			return nil, err
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		req.Courses = append(req.Courses, name)
		if g.Grade != nil {
			req.Grades[name] = *g.Grade
		}
	}

	for i, d := range form.UpcomingDeadlines {
		d.Course = strings.TrimSpace(d.Course)
		d.Assignment = strings.TrimSpace(d.Assignment)
		d.Deadline = strings.TrimSpace(d.Deadline)
		if d.Course == "" || d.Assignment == "" {
			continue
		}
		if err := collectFieldErrors(modelValidate.Struct(d), fmt.Sprintf("upcomingDeadlines[%d]", i), verr); err != nil {
			return nil, err
		}
		req.UpcomingDeadlines = append(req.UpcomingDeadlines, d)
	}

	for i, e := range form.ExamDates {
		e.Course = strings.TrimSpace(e.Course)
		e.Date = strings.TrimSpace(e.Date)
		if e.Course == "" {
			continue
		}
		if err := collectFieldErrors(modelValidate.Struct(e), fmt.Sprintf("examDates[%d]", i), verr); err != nil {
			return nil, err
		}
		req.ExamDates = append(req.ExamDates, e)
	}

	if form.StudyHoursPerDay < util.StudyHoursFormMin {
		verr.Add("studyHoursPerDay", fmt.Sprintf("minimum %d study hour per day", util.StudyHoursFormMin))
	} else if form.StudyHoursPerDay > util.StudyHoursFormMax {
		verr.Add("studyHoursPerDay", fmt.Sprintf("maximum %d study hours per day", util.StudyHoursFormMax))
	}

	if verr.HasErrors() {
		return nil, verr
	}
	if len(req.Courses) == 0 {
		return nil, util.ErrNoCourses
	}
	return req, nil
}

// checkGenerationContract 生成接口自身的约束，比表单更宽
func checkGenerationContract(req *model.ScheduleRequest) error {
	if req.StudyHoursPerDay < util.StudyHoursContractMin || req.StudyHoursPerDay > util.StudyHoursContractMax {
		return fmt.Errorf("studyHoursPerDay %d outside [%d,%d]", req.StudyHoursPerDay, util.StudyHoursContractMin, util.StudyHoursContractMax)
	}
	return nil
}
