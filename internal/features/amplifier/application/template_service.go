package application

import (
	"fmt"
	"regexp"
	"strings"

	"chisokulab/backend/internal/features/amplifier/domain"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "being": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "i": {},
	"me": {}, "my": {}, "we": {}, "our": {}, "you": {}, "your": {},
	"it": {}, "its": {}, "this": {}, "that": {}, "these": {},
}

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

var appKeywords = map[string]struct{}{
	"app": {}, "application": {}, "website": {}, "platform": {},
}

var businessKeywords = map[string]struct{}{
	"business": {}, "startup": {}, "company": {}, "idea": {},
}

// ExtractKeywords lowercases the input, strips punctuation, and returns the
// remaining tokens minus stop words and words of length <= 2.
func ExtractKeywords(input string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(input), "")
	var keywords []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// TemplateService defines the interface for the deterministic, fully
// offline prompt expansion used when no provider is reachable.
type TemplateService interface {
	Build(input string, answers []string) domain.PromptFramework
	Render(framework domain.PromptFramework) string
}

// templateService is the implementation of TemplateService.
type templateService struct{}

// NewTemplateService creates a new TemplateService.
func NewTemplateService() TemplateService {
	return &templateService{}
}

// Build populates the framework slots from lexical cues in the input and,
// when present, the clarifying answers.
func (s *templateService) Build(input string, answers []string) domain.PromptFramework {
	keywords := ExtractKeywords(input)
	hasApp := anyKeywordIn(keywords, appKeywords)
	hasBusiness := anyKeywordIn(keywords, businessKeywords)

	answersContext := ""
	if len(answers) > 0 {
		answersContext = fmt.Sprintf(" Additional context provided: %s.", strings.Join(answers, ". "))
	}

	constraints := "Consider practical constraints including time, resources, and feasibility."
	if hasApp {
		constraints = "Consider technical constraints such as performance, scalability, security, and user experience requirements."
	}

	examples := "Include relevant examples or use cases where applicable."
	if hasBusiness {
		examples = "Consider successful examples in the market and industry best practices."
	}

	additionalContext := "Consider all relevant aspects of the request."
	if len(keywords) > 0 {
		topics := keywords
		if len(topics) > 5 {
			topics = topics[:5]
		}
		additionalContext = fmt.Sprintf("Key topics to address: %s.", strings.Join(topics, ", "))
	}

	return domain.PromptFramework{
		Context:           fmt.Sprintf("I need assistance with the following request: %q.%s This involves understanding the core requirements and developing a comprehensive solution.", input, answersContext),
		Objective:         fmt.Sprintf("The primary goal is to %s. This should result in a clear, actionable outcome that addresses all aspects of the request.", strings.ToLower(input)),
		Constraints:       constraints,
		Requirements:      "The solution should be comprehensive, well-structured, and actionable. Include specific details and clear steps.",
		OutputFormat:      "Provide a detailed response with clear explanations and practical recommendations.",
		Examples:          examples,
		Assumptions:       "Assume standard conditions unless otherwise specified. Clarify any assumptions made.",
		EdgeCases:         "Consider edge cases and potential challenges that may arise.",
		SuccessCriteria:   "Success is measured by the completeness and actionability of the solution.",
		Limitations:       "Note any limitations or trade-offs in the proposed approach.",
		AdditionalContext: additionalContext,
		NextSteps:         "Outline clear next steps for implementation or further development.",
	}
}

// Render concatenates the non-empty slots, in order, into one continuous
// paragraph. Each slot is terminated with punctuation before the next one
// is appended, so the result reads as flowing prose with no headers.
func (s *templateService) Render(framework domain.PromptFramework) string {
	var sections []string
	for _, slot := range framework.Slots() {
		if strings.TrimSpace(slot) != "" {
			sections = append(sections, slot)
		}
	}
	if len(sections) == 0 {
		return ""
	}

	prompt := sections[0]
	for _, section := range sections[1:] {
		if !endsWithTerminalPunctuation(prompt) {
			prompt += "."
		}
		prompt += " " + section
	}
	if !endsWithTerminalPunctuation(prompt) {
		prompt += "."
	}
	return strings.TrimSpace(prompt)
}

func endsWithTerminalPunctuation(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

func anyKeywordIn(keywords []string, set map[string]struct{}) bool {
	for _, kw := range keywords {
		if _, ok := set[kw]; ok {
			return true
		}
	}
	return false
}
