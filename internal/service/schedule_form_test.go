package service

import (
	"errors"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/util"
	"testing"
)

func grade(f float64) *float64 { return &f }

func TestValidateScheduleFormMinimal(t *testing.T) {
	req, err := ValidateScheduleForm(model.ScheduleForm{
		Courses:          []model.CourseEntry{{Name: "Math"}},
		StudyHoursPerDay: 4,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(req.Courses) != 1 || req.Courses[0] != "Math" {
		t.Fatalf("courses=%v", req.Courses)
	}
	if len(req.Grades) != 0 || len(req.UpcomingDeadlines) != 0 || len(req.ExamDates) != 0 {
		t.Fatalf("unexpected extras %+v", req)
	}
	if req.StudyHoursPerDay != 4 {
		t.Fatalf("hours=%d", req.StudyHoursPerDay)
	}
}

func TestValidateScheduleFormNoCourses(t *testing.T) {
	forms := []model.ScheduleForm{
		{StudyHoursPerDay: 4},
		{Courses: []model.CourseEntry{{Name: ""}, {Name: "   "}}, StudyHoursPerDay: 4},
	}
	for i, f := range forms {
		if _, err := ValidateScheduleForm(f); !errors.Is(err, util.ErrNoCourses) {
			t.Fatalf("form %d: err=%v, want ErrNoCourses", i, err)
		}
	}
}

func TestValidateScheduleFormFieldErrorsComeFirst(t *testing.T) {
	_, err := ValidateScheduleForm(model.ScheduleForm{StudyHoursPerDay: 0})
	verr := AsValidationError(err)
	if verr == nil {
		t.Fatalf("err=%v, want validation error", err)
	}
	if verr.Fields["studyHoursPerDay"] == "" {
		t.Fatalf("fields=%v", verr.Fields)
	}
}

func TestValidateScheduleFormStudyHoursRange(t *testing.T) {
	courses := []model.CourseEntry{{Name: "Math"}}
	for _, h := range []int{1, 8, 16} {
		if _, err := ValidateScheduleForm(model.ScheduleForm{Courses: courses, StudyHoursPerDay: h}); err != nil {
			t.Fatalf("hours %d: %v", h, err)
		}
	}
	want := map[int]string{
		0:  "minimum 1 study hour per day",
		17: "maximum 16 study hours per day",
	}
	for h, msg := range want {
		_, err := ValidateScheduleForm(model.ScheduleForm{Courses: courses, StudyHoursPerDay: h})
		verr := AsValidationError(err)
		if verr == nil || verr.Fields["studyHoursPerDay"] != msg {
			t.Fatalf("hours %d: err=%v", h, err)
		}
	}
}

func TestValidateScheduleFormFiltersBlankRows(t *testing.T) {
	req, err := ValidateScheduleForm(model.ScheduleForm{
		Courses: []model.CourseEntry{
			{Name: " Math ", Grade: grade(85)},
			{Name: ""},
			{Name: "Physics"},
			{Name: "Math"},
		},
		UpcomingDeadlines: []model.Deadline{
			{Course: "", Assignment: "", Deadline: ""},
			{Course: "Math", Assignment: "Problem set 3", Deadline: "2024-03-15"},
			{Course: "Physics", Assignment: "", Deadline: "2024-03-20"},
		},
		ExamDates: []model.ExamDate{
			{Course: "", Date: "2024-04-01"},
			{Course: "Physics", Date: "2024-04-02"},
		},
		StudyHoursPerDay: 3,
	})
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(req.Courses) != 2 || req.Courses[0] != "Math" || req.Courses[1] != "Physics" {
		t.Fatalf("courses=%v", req.Courses)
	}
	if g, ok := req.Grades["Math"]; !ok || g != 85 {
		t.Fatalf("grades=%v", req.Grades)
	}
	if _, ok := req.Grades["Physics"]; ok {
		t.Fatalf("course without grade should be omitted: %v", req.Grades)
	}
	if len(req.UpcomingDeadlines) != 1 || req.UpcomingDeadlines[0].Assignment != "Problem set 3" {
		t.Fatalf("deadlines=%+v", req.UpcomingDeadlines)
	}
	if len(req.ExamDates) != 1 || req.ExamDates[0].Course != "Physics" {
		t.Fatalf("exams=%+v", req.ExamDates)
	}
}

func TestValidateScheduleFormFieldPaths(t *testing.T) {
	_, err := ValidateScheduleForm(model.ScheduleForm{
		Courses: []model.CourseEntry{{Name: "Math", Grade: grade(120)}},
		UpcomingDeadlines: []model.Deadline{
			{Course: "Math", Assignment: "Essay", Deadline: "03/15/2024"},
			{Course: "Math", Assignment: "Quiz", Deadline: ""},
		},
		ExamDates: []model.ExamDate{
			{Course: "", Date: ""},
			{Course: "Math", Date: "2024-02-30"},
		},
		StudyHoursPerDay: 4,
	})
	verr := AsValidationError(err)
	if verr == nil {
		t.Fatalf("err=%v, want validation error", err)
	}

	want := map[string]string{
		"courses[0].grade":              "must be at most 100",
		"upcomingDeadlines[0].deadline": "must be in YYYY-MM-DD format",
		"upcomingDeadlines[1].deadline": "is required",
		"examDates[1].date":             "must be in YYYY-MM-DD format",
	}
	for field, msg := range want {
		if got := verr.Fields[field]; got != msg {
			t.Fatalf("fields[%s]=%q, want %q (all: %v)", field, got, msg, verr.Fields)
		}
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("unexpected extra fields: %v", verr.Fields)
	}
}

func TestSyncGrades(t *testing.T) {
	synced := SyncGrades(
		[]model.CourseEntry{{Name: "Math"}, {Name: "Art"}, {Name: "Chem", Grade: grade(70)}},
		[]model.GradeEntry{{CourseName: "Math", Grade: grade(80)}, {CourseName: "History", Grade: grade(60)}, {CourseName: "Chem", Grade: grade(50)}},
	)
	if len(synced) != 3 {
		t.Fatalf("len=%d, want 3", len(synced))
	}
	if synced[0].CourseName != "Math" || synced[0].Grade == nil || *synced[0].Grade != 80 {
		t.Fatalf("math row %+v", synced[0])
	}
	if synced[1].CourseName != "Art" || synced[1].Grade != nil {
		t.Fatalf("art row %+v", synced[1])
	}
	if synced[2].Grade == nil || *synced[2].Grade != 70 {
		t.Fatalf("course grade should win over stale row: %+v", synced[2])
	}

	if got := SyncGrades(nil, []model.GradeEntry{{CourseName: "Math"}}); len(got) != 0 {
		t.Fatalf("no courses should give no rows, got %+v", got)
	}
}
