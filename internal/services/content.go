package services

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/workseedhq/workseed/internal/constants"
)

var (
	ErrNoChoices     = errors.New("content service returned no choices")
	ErrEmptyResponse = errors.New("content service returned an empty response")
)

//go:embed prompts/*.txt
var promptFiles embed.FS

const systemPrompt = "You are a helpful assistant that generates realistic business data for a B2B SaaS company."

// defaultTimeout bounds a single completion call so an unreachable endpoint
// cannot stall the pipeline.
const defaultTimeout = 10 * time.Second

// Service wraps an OpenAI-compatible chat API for content enrichment.
// Responses are cached per prompt so repeated contexts within a run do not
// re-bill. Every method returns an explicit error; deciding what to do on
// failure is the caller's job.
type Service struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	cache   map[string]string
}

// New creates a content Service. baseURL is optional and points the client
// at OpenAI-compatible servers (Groq, Ollama and the like); model defaults
// to gpt-4o and timeout to 10s when zero values are passed.
func New(apiKey, baseURL, model string, timeout time.Duration) *Service {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4o
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Service{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
		cache:   make(map[string]string),
	}
}

// Generate issues a single chat completion and returns the trimmed text.
func (s *Service) Generate(ctx context.Context, prompt string, temperature float32, maxTokens int) (string, error) {
	cacheKey := fmt.Sprintf("%.100s_%v", prompt, temperature)
	if cached, ok := s.cache[cacheKey]; ok {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("content service request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", ErrEmptyResponse
	}

	s.cache[cacheKey] = result
	return result, nil
}

// TaskNames asks for count realistic task names for a project. The response
// is expected to be a JSON array of strings; responses that are not valid
// JSON are split into lines instead, with list markers stripped.
func (s *Service) TaskNames(ctx context.Context, projectName, projectType string, count int) ([]string, error) {
	if count > constants.MaxGeneratedNames {
		count = constants.MaxGeneratedNames
	}

	prompt := s.prompt("task_names.txt", map[string]string{
		"{project_name}": projectName,
		"{project_type}": projectType,
		"{count}":        fmt.Sprintf("%d", count),
	})

	response, err := s.Generate(ctx, prompt, 0.8, 500)
	if err != nil {
		return nil, err
	}

	names := parseNames(response)
	if len(names) == 0 {
		return nil, ErrEmptyResponse
	}
	if len(names) > count {
		names = names[:count]
	}
	return names, nil
}

// Description asks for a short task description.
func (s *Service) Description(ctx context.Context, taskName, projectType string) (string, error) {
	prompt := s.prompt("descriptions.txt", map[string]string{
		"{task_name}":    taskName,
		"{project_type}": projectType,
	})
	return s.Generate(ctx, prompt, 0.7, 150)
}

// Comment asks for a single task comment with the given intent
// (status_update, question, answer, feedback or blocker).
func (s *Service) Comment(ctx context.Context, taskName, intent string) (string, error) {
	prompt := s.prompt("comments.txt", map[string]string{
		"{task_name}": taskName,
		"{intent}":    intent,
	})
	return s.Generate(ctx, prompt, 0.8, 100)
}

// prompt loads an embedded prompt template and fills its slots.
func (s *Service) prompt(name string, slots map[string]string) string {
	raw, err := promptFiles.ReadFile("prompts/" + name)
	if err != nil {
		// The prompt files are embedded; a missing one is a build defect.
		panic(fmt.Sprintf("missing embedded prompt %s: %v", name, err))
	}

	text := string(raw)
	for slot, value := range slots {
		text = strings.ReplaceAll(text, slot, value)
	}
	return text
}

// parseNames extracts a list of names from a model response: a JSON array
// when possible, otherwise one name per non-empty line.
func parseNames(response string) []string {
	var names []string
	if err := json.Unmarshal([]byte(extractJSONArray(response)), &names); err == nil {
		return trimEmpty(names)
	}

	var lines []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractJSONArray cuts the first [...] span out of a response, tolerating
// models that wrap the array in prose or code fences.
func extractJSONArray(response string) string {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end == -1 || end < start {
		return response
	}
	return response[start : end+1]
}

func trimEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
