package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"sync"
)

// AIService OpenAI 兼容的 chat/completions 客户端，配置可热更新
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{config: cfg, client: &http.Client{Timeout: cfg.Timeout}}
}

// UpdateConfig 配置文件变化时替换模型、地址和超时
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Timeout: cfg.Timeout}
}

func (s *AIService) snapshot() (config.AIConfig, *http.Client) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config, s.client
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []AIChatMessage `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// ChatJSON 发送一次对话并要求模型返回 JSON 对象，返回模型输出的原始文本
func (s *AIService) ChatJSON(ctx context.Context, system, prompt string) (string, error) {
	cfg, client := s.snapshot()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode AI response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

const scheduleSystemPrompt = "You are an AI-powered study schedule generator. " +
	"Always answer with a JSON object of the form {\"schedule\": \"...\"} and nothing else."

// AIScheduleGenerator 基于 AIService 的学习计划生成实现
type AIScheduleGenerator struct {
	AI *AIService
}

func NewAIScheduleGenerator(ai *AIService) *AIScheduleGenerator {
	return &AIScheduleGenerator{AI: ai}
}

func buildSchedulePrompt(req *model.ScheduleRequest) (string, error) {
	field := func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	}

	parts := make([]string, 0, 5)
	for _, v := range []interface{}{req.Courses, req.Grades, req.UpcomingDeadlines, req.StudyHoursPerDay, req.ExamDates} {
		s, err := field(v)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}

	var b strings.Builder
	b.WriteString("Analyze the student's courses, grades, upcoming deadlines, available study hours, and exam dates to create a personalized study schedule.\n\n")
	fmt.Fprintf(&b, "Courses: %s\n", parts[0])
	fmt.Fprintf(&b, "Grades: %s\n", parts[1])
	fmt.Fprintf(&b, "Upcoming Deadlines: %s\n", parts[2])
	fmt.Fprintf(&b, "Study Hours Per Day: %s\n", parts[3])
	fmt.Fprintf(&b, "Exam Dates: %s\n\n", parts[4])
	b.WriteString("Consider the student's performance in each course and the proximity of deadlines and exams to prioritize study time. ")
	b.WriteString("The schedule should be realistic and manageable, ensuring that the student has enough time to cover all the material.\n\n")
	b.WriteString("Return a detailed study schedule with specific time slots for each course and assignment in the \"schedule\" field.")
	return b.String(), nil
}

func (g *AIScheduleGenerator) Generate(ctx context.Context, req *model.ScheduleRequest) (*model.GeneratedSchedule, error) {
	if err := checkGenerationContract(req); err != nil {
		return nil, err
	}

	prompt, err := buildSchedulePrompt(req)
	if err != nil {
		return nil, err
	}

	content, err := g.AI.ChatJSON(ctx, scheduleSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var out model.GeneratedSchedule
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &out); err != nil {
		return nil, fmt.Errorf("malformed schedule response: %w", err)
	}
	if strings.TrimSpace(out.Schedule) == "" {
		return nil, fmt.Errorf("malformed schedule response: empty schedule")
	}
	return &out, nil
}

// stripCodeFence 有些模型即使在 JSON 模式下也会包一层 ```json
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
