package application

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/amplifier/domain"
	"chisokulab/backend/internal/features/amplifier/infrastructure"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

// A cleaned provider response must exceed this many characters to be
// accepted; anything shorter is treated as a failed attempt.
const minAcceptedOutputLength = 100

// AmplifierService defines the interface for the end-to-end amplification
// flow: provider chain first, deterministic template last.
type AmplifierService interface {
	// Amplify expands the input (plus any clarifying answers) into a single
	// continuous prompt. It fails only for empty input or caller
	// cancellation; provider unavailability routes to the template path.
	Amplify(ctx context.Context, input string, answers []string) (*domain.AmplificationResult, error)
}

// amplifierService is the implementation of AmplifierService.
type amplifierService struct {
	creds     config.CredentialStore
	providers []infrastructure.TextGenerator
	template  TemplateService
	settings  tuningdomain.GenerationSettings
}

// NewAmplifierService creates an amplifier over the given provider chain,
// tried in order before the template fallback.
func NewAmplifierService(creds config.CredentialStore, template TemplateService, settings tuningdomain.GenerationSettings, providers ...infrastructure.TextGenerator) AmplifierService {
	return &amplifierService{
		creds:     creds,
		providers: providers,
		template:  template,
		settings:  settings,
	}
}

func (s *amplifierService) Amplify(ctx context.Context, input string, answers []string) (*domain.AmplificationResult, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, domain.ErrEmptyInput
	}

	prompt := buildAmplificationPrompt(trimmed, answers)

	for _, provider := range s.providers {
		if !s.creds.IsConfigured(config.Provider(provider.Name())) {
			log.Printf("[WARN] %s API key not configured or invalid, skipping", provider.Name())
			continue
		}

		raw, err := provider.Generate(ctx, prompt, s.settings)
		if err != nil {
			log.Printf("[ERROR] %s amplification failed, advancing chain: %v", provider.Name(), err)
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		cleaned := CleanResponse(raw)
		if len(cleaned) > minAcceptedOutputLength {
			return &domain.AmplificationResult{
				Output: cleaned,
				Source: domain.Source(provider.Name()),
			}, nil
		}
		log.Printf("[WARN] %s response too short (%d chars), advancing chain", provider.Name(), len(cleaned))
	}

	// Template fallback, always available.
	framework := s.template.Build(trimmed, answers)
	return &domain.AmplificationResult{
		Output: s.template.Render(framework),
		Source: domain.SourceTemplate,
	}, nil
}

func buildAmplificationPrompt(input string, answers []string) string {
	answersText := ""
	if len(answers) > 0 {
		answersText = fmt.Sprintf("\n\nAdditional context from clarifying questions:\n%s", strings.Join(answers, "\n"))
	}

	return fmt.Sprintf(`You are a prompt engineering expert. Transform the following vague or brief user input into a comprehensive, detailed, and well-structured prompt that is ready to use.

The output should be a SINGLE CONTINUOUS PROMPT (not separated into sections or headers). It should be copy-ready and flow naturally as one cohesive prompt.

Consider these aspects when amplifying (but integrate them naturally into the flow, don't list them as separate sections):
- Context and background
- Clear objectives and goals
- Specific requirements and constraints
- Expected output format
- Examples or use cases
- Edge cases to consider
- Success criteria

User Input: %q%s

Generate a single, comprehensive, continuous prompt that expands on the user's input. Make it detailed, specific, and actionable. Do NOT use headers, sections, or numbered lists. Write it as one flowing, natural prompt that can be copied and used directly.`, input, answersText)
}

var (
	preamblePattern   = regexp.MustCompile(`(?i)^(here'?s|here is|here are|the following|below):?\s*`)
	headingPattern    = regexp.MustCompile(`(?m)^#+\s*`)
	numberedPattern   = regexp.MustCompile(`(?m)^\d+\.\s+`)
	bulletPattern     = regexp.MustCompile(`(?m)^\*\s+`)
	blankRunPattern   = regexp.MustCompile(`\n{3,}`)
	paragraphPattern  = regexp.MustCompile(`\n\n+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanResponse normalizes raw provider output into the single continuous
// passage the contract requires: a leading "here is ..." preamble, markdown
// heading markers, numbered-list markers, and bullets are stripped, then
// all remaining newlines and repeated whitespace collapse to single spaces.
func CleanResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = preamblePattern.ReplaceAllString(cleaned, "")
	cleaned = headingPattern.ReplaceAllString(cleaned, "")
	cleaned = numberedPattern.ReplaceAllString(cleaned, "")
	cleaned = blankRunPattern.ReplaceAllString(cleaned, "\n\n")
	cleaned = bulletPattern.ReplaceAllString(cleaned, "")
	cleaned = paragraphPattern.ReplaceAllString(cleaned, " ")
	cleaned = whitespacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
