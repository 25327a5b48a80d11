package application

import (
	"regexp"
	"strings"

	"chisokulab/backend/internal/features/amplifier/domain"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

// Filler and uncertainty vocabulary. Matched by substring, so "helpful"
// also counts as "help".
var vagueKeywords = []string{
	"help", "something", "thing", "things", "stuff", "maybe", "perhaps",
	"kind of", "sort of", "a bit", "somewhat", "not sure", "idk",
	"anything", "whatever", "somehow", "someone", "somewhere",
	"good", "better", "best", "nice", "cool", "awesome", "great",
}

// Generic nouns that say nothing on their own. Matched as whole words.
var genericTerms = []string{
	"app", "application", "website", "system", "platform", "tool",
	"project", "idea", "business", "startup", "product", "service",
	"solution", "program", "software", "code", "script",
}

// Concrete technical vocabulary that signals the user knows what they want.
var specificKeywords = []string{
	"react", "vue", "angular", "next", "node", "python", "java",
	"typescript", "javascript", "api", "database", "sql", "mongodb",
	"aws", "docker", "authentication", "login", "crud", "rest",
	"graphql", "frontend", "backend", "mobile", "ios", "android",
}

var (
	genericTermPatterns = compileWholeWordPatterns(genericTerms)
	digitPattern        = regexp.MustCompile(`\d`)
)

func compileWholeWordPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
	}
	return patterns
}

// VaguenessService defines the interface for the vagueness classifier.
type VaguenessService interface {
	// Classify scores the input for specificity. It never fails; empty input
	// is the caller's concern.
	Classify(input string) domain.VaguenessAssessment
}

// vaguenessService is the implementation of VaguenessService.
type vaguenessService struct {
	weights tuningdomain.VaguenessWeights
}

// NewVaguenessService creates a classifier with the given weights.
func NewVaguenessService(weights tuningdomain.VaguenessWeights) VaguenessService {
	return &vaguenessService{weights: weights}
}

func (s *vaguenessService) Classify(input string) domain.VaguenessAssessment {
	trimmed := strings.TrimSpace(input)
	lowerInput := strings.ToLower(trimmed)
	wordCount := len(strings.Fields(trimmed))

	score := 0
	var issues []string
	var suggestions []string

	// Length checks
	if len(trimmed) < 15 {
		score += s.weights.VeryShortLength
		issues = append(issues, "Input is very short")
		suggestions = append(suggestions, "Add more details about what you want to achieve")
	} else if len(trimmed) < 30 {
		score += s.weights.ShortLength
		issues = append(issues, "Input is quite brief")
		suggestions = append(suggestions, "Consider adding context or requirements")
	}

	// Word count checks
	if wordCount < 3 {
		score += s.weights.VeryFewWords
		issues = append(issues, "Too few words to understand intent")
		suggestions = append(suggestions, "Describe your goal in more detail")
	} else if wordCount < 5 {
		score += s.weights.FewWords
		issues = append(issues, "Very few words provided")
		suggestions = append(suggestions, "Add specific requirements or constraints")
	}

	// Vague keywords
	vagueMatches := 0
	for _, kw := range vagueKeywords {
		if strings.Contains(lowerInput, kw) {
			vagueMatches++
		}
	}
	if vagueMatches > 0 {
		penalty := vagueMatches * s.weights.VagueKeyword
		if penalty > s.weights.VagueKeywordCap {
			penalty = s.weights.VagueKeywordCap
		}
		score += penalty
		if vagueMatches >= 2 {
			issues = append(issues, "Contains vague terms")
			suggestions = append(suggestions, "Replace vague terms with specific requirements")
		}
	}

	// Generic terms only count when the input is short enough that nothing
	// else qualifies them.
	if wordCount < 10 && containsAnyPattern(lowerInput, genericTermPatterns) {
		score += s.weights.GenericTerm
		issues = append(issues, "Uses generic terms without details")
		suggestions = append(suggestions, "Specify features, technology, or audience")
	}

	// Specificity indicators reduce the score.
	for _, kw := range specificKeywords {
		if strings.Contains(lowerInput, kw) {
			score -= s.weights.SpecificKeyword
		}
	}

	// Numbers indicate specificity.
	if digitPattern.MatchString(trimmed) {
		score -= s.weights.NumericBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	isVague := score >= s.weights.VaguenessCutoff

	assessment := domain.VaguenessAssessment{
		IsVague:     isVague,
		Score:       score,
		Suggestions: []string{},
	}
	if isVague {
		if len(issues) > 0 {
			assessment.Reason = issues[0]
		}
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}
		assessment.Suggestions = suggestions
	}
	return assessment
}

func containsAnyPattern(input string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(input) {
			return true
		}
	}
	return false
}
