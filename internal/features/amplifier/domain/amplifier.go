package domain

import "errors"

// ErrEmptyInput is returned when an amplification request carries no usable
// input. It is the only precondition failure the amplifier surfaces.
var ErrEmptyInput = errors.New("input cannot be empty")

// Source identifies which fallback-chain step produced a result.
type Source string

const (
	SourceGemini   Source = "gemini"
	SourceGroq     Source = "groq"
	SourceTemplate Source = "template"
)

// VaguenessAssessment is the classifier's verdict on a piece of input.
type VaguenessAssessment struct {
	IsVague     bool     `json:"isVague"`
	Score       int      `json:"score"`
	Reason      string   `json:"reason,omitempty"`
	Suggestions []string `json:"suggestions"`
}

// ClarifyingQuestion is a single question shown to the user to disambiguate
// a vague request. The placeholder is an example answer, shown as a hint.
type ClarifyingQuestion struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	Placeholder string `json:"placeholder"`
}

// ClarifyingQuestionsResult carries generated questions plus their provenance.
type ClarifyingQuestionsResult struct {
	Questions []ClarifyingQuestion `json:"questions"`
	Source    Source               `json:"source"`
}

// AmplificationResult is the final expanded prompt plus the provenance tag
// of the chain step that actually produced it.
type AmplificationResult struct {
	Output string `json:"output"`
	Source Source `json:"source"`
}

// PromptFramework is the fixed set of named slots the template path fills
// in. Slots are rendered in declaration order into one flowing paragraph.
type PromptFramework struct {
	Context           string `json:"context"`
	Objective         string `json:"objective"`
	Constraints       string `json:"constraints"`
	Requirements      string `json:"requirements"`
	OutputFormat      string `json:"output_format"`
	Examples          string `json:"examples"`
	Assumptions       string `json:"assumptions"`
	EdgeCases         string `json:"edge_cases"`
	SuccessCriteria   string `json:"success_criteria"`
	Limitations       string `json:"limitations"`
	AdditionalContext string `json:"additional_context"`
	NextSteps         string `json:"next_steps"`
}

// Slots returns the framework's slot contents in rendering order.
func (f PromptFramework) Slots() []string {
	return []string{
		f.Context,
		f.Objective,
		f.Constraints,
		f.Requirements,
		f.OutputFormat,
		f.Examples,
		f.Assumptions,
		f.EdgeCases,
		f.SuccessCriteria,
		f.Limitations,
		f.AdditionalContext,
		f.NextSteps,
	}
}

// ClarifyRequest is the request body for POST /api/clarify.
type ClarifyRequest struct {
	Input string `json:"input"`
}

// ClarifyResponse is the response body for POST /api/clarify.
type ClarifyResponse struct {
	IsVague   bool                 `json:"isVague"`
	Questions []ClarifyingQuestion `json:"questions"`
	Source    Source               `json:"source,omitempty"`
}

// AmplifyRequest is the request body for POST /api/amplify.
type AmplifyRequest struct {
	Input             string   `json:"input"`
	ClarifyingAnswers []string `json:"clarifyingAnswers,omitempty"`
}
