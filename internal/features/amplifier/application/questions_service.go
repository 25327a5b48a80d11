package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/amplifier/domain"
	"chisokulab/backend/internal/features/amplifier/infrastructure"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

// A provider answer must yield at least this many well-formed questions to
// be accepted; anything less falls through to the next chain step.
const minAcceptedQuestions = 2

const defaultPlaceholder = "Enter your answer..."

// QuestionsService defines the interface for the clarifying-question
// generator. Only invoked for input the classifier flagged as vague.
type QuestionsService interface {
	// Generate produces 3-4 clarifying questions for the input via the
	// provider chain, falling back to deterministic template questions. The
	// only error it returns is the caller's own cancellation.
	Generate(ctx context.Context, input string) (*domain.ClarifyingQuestionsResult, error)
}

// questionsService is the implementation of QuestionsService.
type questionsService struct {
	creds     config.CredentialStore
	providers []infrastructure.TextGenerator
	settings  tuningdomain.GenerationSettings
}

// NewQuestionsService creates a question generator over the given provider
// chain, tried in order.
func NewQuestionsService(creds config.CredentialStore, settings tuningdomain.GenerationSettings, providers ...infrastructure.TextGenerator) QuestionsService {
	return &questionsService{
		creds:     creds,
		providers: providers,
		settings:  settings,
	}
}

func (s *questionsService) Generate(ctx context.Context, input string) (*domain.ClarifyingQuestionsResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.ClarifyingQuestionsResult{Questions: []domain.ClarifyingQuestion{}, Source: domain.SourceTemplate}, nil
	}

	prompt := buildQuestionsPrompt(trimmed)

	for _, provider := range s.providers {
		if !s.creds.IsConfigured(config.Provider(provider.Name())) {
			log.Printf("[WARN] %s not configured, skipping for clarifying questions", provider.Name())
			continue
		}

		raw, err := provider.Generate(ctx, prompt, s.settings)
		if err != nil {
			log.Printf("[ERROR] %s question generation failed: %v", provider.Name(), err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		questions, err := parseQuestions(raw)
		if err != nil {
			log.Printf("[ERROR] failed to parse %s questions: %v", provider.Name(), err)
			continue
		}
		if len(questions) < minAcceptedQuestions {
			log.Printf("[WARN] %s returned only %d usable questions, falling back", provider.Name(), len(questions))
			continue
		}

		return &domain.ClarifyingQuestionsResult{
			Questions: questions,
			Source:    domain.Source(provider.Name()),
		}, nil
	}

	return &domain.ClarifyingQuestionsResult{
		Questions: templateQuestions(trimmed),
		Source:    domain.SourceTemplate,
	}, nil
}

func buildQuestionsPrompt(input string) string {
	return fmt.Sprintf(`You are a helpful assistant that generates clarifying questions. Given a vague user request, generate 3-4 specific questions that would help understand what the user really wants.

User Request: %q

Generate questions in JSON format like this:
[
  {"id": "q1", "question": "What is the main purpose?", "placeholder": "e.g., personal blog, business site"},
  {"id": "q2", "question": "Who is the target audience?", "placeholder": "e.g., developers, general public"}
]

Return ONLY valid JSON array, no other text. Generate 3-4 relevant clarifying questions.`, input)
}

// questionPayload is the loosely specified shape providers return questions in.
type questionPayload struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// parseQuestions extracts clarifying questions from raw provider output.
// Providers wrap JSON in prose or code fences more often than not, so the
// parse is lenient: the first "[...]" span is located and decoded, missing
// ids and placeholders are defaulted, and question-less entries are dropped.
func parseQuestions(raw string) ([]domain.ClarifyingQuestion, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array found in response")
	}

	var payload []questionPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions array: %w", err)
	}

	questions := make([]domain.ClarifyingQuestion, 0, len(payload))
	for i, p := range payload {
		if strings.TrimSpace(p.Question) == "" {
			continue
		}
		q := domain.ClarifyingQuestion{
			ID:          p.ID,
			Question:    p.Question,
			Placeholder: p.Placeholder,
		}
		if q.ID == "" {
			q.ID = fmt.Sprintf("q%d", i+1)
		}
		if q.Placeholder == "" {
			q.Placeholder = defaultPlaceholder
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// templateQuestions is the deterministic fallback: a main-goal question,
// two keyword-branched questions, and a success-criteria question. This
// path never fails.
func templateQuestions(input string) []domain.ClarifyingQuestion {
	lowerInput := strings.ToLower(input)

	questions := []domain.ClarifyingQuestion{{
		ID:          "q1",
		Question:    "What is the main goal or purpose of this project?",
		Placeholder: "e.g., increase sales, automate tasks, share information",
	}}

	switch {
	case strings.Contains(lowerInput, "app") || strings.Contains(lowerInput, "website") || strings.Contains(lowerInput, "platform"):
		questions = append(questions,
			domain.ClarifyingQuestion{
				ID:          "q2",
				Question:    "Who is the target audience for this?",
				Placeholder: "e.g., businesses, students, general consumers",
			},
			domain.ClarifyingQuestion{
				ID:          "q3",
				Question:    "What are the 2-3 most important features you need?",
				Placeholder: "e.g., user login, payment processing, search functionality",
			})
	case strings.Contains(lowerInput, "business") || strings.Contains(lowerInput, "idea") || strings.Contains(lowerInput, "startup"):
		questions = append(questions,
			domain.ClarifyingQuestion{
				ID:          "q2",
				Question:    "What industry or market are you targeting?",
				Placeholder: "e.g., healthcare, e-commerce, education",
			},
			domain.ClarifyingQuestion{
				ID:          "q3",
				Question:    "What problem does this solve for customers?",
				Placeholder: "e.g., saves time, reduces costs, improves experience",
			})
	default:
		questions = append(questions,
			domain.ClarifyingQuestion{
				ID:          "q2",
				Question:    "What specific outcome are you looking for?",
				Placeholder: "e.g., a working prototype, a detailed plan, code examples",
			},
			domain.ClarifyingQuestion{
				ID:          "q3",
				Question:    "Are there any constraints or requirements to consider?",
				Placeholder: "e.g., budget limits, timeline, technology preferences",
			})
	}

	return append(questions, domain.ClarifyingQuestion{
		ID:          "q4",
		Question:    "How will you measure success?",
		Placeholder: "e.g., user engagement, revenue, efficiency gains",
	})
}
