package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"testing"
	"time"
)

func newTestAIServer(t *testing.T, status int, content string, seen *ChatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path=%s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization=%q", got)
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}
		resp := map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestGenerator(baseURL string) *AIScheduleGenerator {
	return NewAIScheduleGenerator(NewAIService(config.AIConfig{
		BaseURL: baseURL + "/",
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 5 * time.Second,
	}))
}

func testRequest() *model.ScheduleRequest {
	return &model.ScheduleRequest{
		Courses:           []string{"Math", "Physics"},
		Grades:            map[string]float64{"Math": 85},
		UpcomingDeadlines: []model.Deadline{{Course: "Math", Assignment: "Essay", Deadline: "2024-03-15"}},
		ExamDates:         []model.ExamDate{},
		StudyHoursPerDay:  4,
	}
}

func TestAIScheduleGeneratorGenerate(t *testing.T) {
	var seen ChatCompletionRequest
	srv := newTestAIServer(t, http.StatusOK, "```json\n{\"schedule\": \"Mon 9-11: Math\"}\n```", &seen)
	defer srv.Close()

	out, err := newTestGenerator(srv.URL).Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Schedule != "Mon 9-11: Math" {
		t.Fatalf("schedule=%q", out.Schedule)
	}

	if seen.Model != "test-model" || seen.ResponseFormat == nil || seen.ResponseFormat.Type != "json_object" {
		t.Fatalf("request %+v", seen)
	}
	if len(seen.Messages) != 2 || seen.Messages[0].Role != "system" {
		t.Fatalf("messages %+v", seen.Messages)
	}
	prompt := seen.Messages[1].Content
	for _, want := range []string{`Courses: ["Math","Physics"]`, `Grades: {"Math":85}`, "Study Hours Per Day: 4", "Exam Dates: []"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAIScheduleGeneratorErrors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		content string
	}{
		{"upstream error", http.StatusInternalServerError, ""},
		{"not json", http.StatusOK, "Here is your schedule"},
		{"empty schedule", http.StatusOK, `{"schedule": "  "}`},
	}
	for _, c := range cases {
		srv := newTestAIServer(t, c.status, c.content, nil)
		if _, err := newTestGenerator(srv.URL).Generate(context.Background(), testRequest()); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		srv.Close()
	}
}

func TestAIScheduleGeneratorContract(t *testing.T) {
	gen := newTestGenerator("http://127.0.0.1:0")
	req := testRequest()
	req.StudyHoursPerDay = 25
	if _, err := gen.Generate(context.Background(), req); err == nil {
		t.Fatalf("hours outside [0,24] should be rejected before calling the model")
	}
}

func TestStripCodeFence(t *testing.T) {
	want := `{"schedule":"x"}`
	for _, in := range []string{
		want,
		"```json\n" + want + "\n```",
		"```\n" + want + "```",
		"  " + want + "\n",
	} {
		if got := stripCodeFence(in); got != want {
			t.Fatalf("stripCodeFence(%q)=%q, want %q", in, got, want)
		}
	}
}
