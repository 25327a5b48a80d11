package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chisokulab/backend/internal/config"
	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

// stubGenerator is a scripted TextGenerator that counts its calls.
type stubGenerator struct {
	name     string
	response string
	err      error
	calls    int
}

func (g *stubGenerator) Name() string { return g.name }

func (g *stubGenerator) Generate(ctx context.Context, prompt string, settings tuningdomain.GenerationSettings) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

var testKeys = map[config.Provider]string{
	config.ProviderGemini: "test-gemini-key-1234",
	config.ProviderGroq:   "test-groq-key-1234",
}

const questionsJSON = `[
  {"id": "q1", "question": "What is the main purpose?", "placeholder": "e.g., personal blog"},
  {"id": "q2", "question": "Who is the target audience?", "placeholder": "e.g., developers"},
  {"id": "q3", "question": "What is your timeline?", "placeholder": "e.g., two weeks"}
]`

func clarificationSettings() tuningdomain.GenerationSettings {
	return tuningdomain.DefaultTuning().Clarification
}

func TestGenerateQuestionsFromPrimaryProvider(t *testing.T) {
	creds := config.NewStaticCredentialStore(testKeys)
	primary := &stubGenerator{name: "gemini", response: "Sure! Here you go:\n" + questionsJSON}
	secondary := &stubGenerator{name: "groq"}

	svc := NewQuestionsService(creds, clarificationSettings(), primary, secondary)
	result, err := svc.Generate(context.Background(), "make an app")

	require.NoError(t, err)
	assert.Equal(t, "gemini", string(result.Source))
	assert.Len(t, result.Questions, 3)
	assert.Equal(t, "What is the main purpose?", result.Questions[0].Question)
	assert.Zero(t, secondary.calls)
}

func TestGenerateQuestionsFallsBackToSecondary(t *testing.T) {
	creds := config.NewStaticCredentialStore(testKeys)
	primary := &stubGenerator{name: "gemini", err: errors.New("gemini API quota exceeded")}
	secondary := &stubGenerator{name: "groq", response: questionsJSON}

	svc := NewQuestionsService(creds, clarificationSettings(), primary, secondary)
	result, err := svc.Generate(context.Background(), "make an app")

	require.NoError(t, err)
	assert.Equal(t, "groq", string(result.Source))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestGenerateQuestionsRejectsTooFewParsed(t *testing.T) {
	creds := config.NewStaticCredentialStore(testKeys)
	// One usable question is below the acceptance floor.
	primary := &stubGenerator{name: "gemini", response: `[{"question": "Only one?"}]`}
	secondary := &stubGenerator{name: "groq", response: questionsJSON}

	svc := NewQuestionsService(creds, clarificationSettings(), primary, secondary)
	result, err := svc.Generate(context.Background(), "make an app")

	require.NoError(t, err)
	assert.Equal(t, "groq", string(result.Source))
}

func TestGenerateQuestionsTemplateFallback(t *testing.T) {
	creds := config.NewStaticCredentialStore(nil)
	primary := &stubGenerator{name: "gemini"}
	secondary := &stubGenerator{name: "groq"}

	svc := NewQuestionsService(creds, clarificationSettings(), primary, secondary)
	result, err := svc.Generate(context.Background(), "make an app")

	require.NoError(t, err)
	assert.Equal(t, "template", string(result.Source))
	assert.Zero(t, primary.calls)
	assert.Zero(t, secondary.calls)

	// App-flavored input branches into audience and key-features questions,
	// bracketed by the fixed goal and success questions.
	require.Len(t, result.Questions, 4)
	assert.Contains(t, result.Questions[0].Question, "main goal")
	assert.Contains(t, result.Questions[1].Question, "target audience")
	assert.Contains(t, result.Questions[2].Question, "important features")
	assert.Contains(t, result.Questions[3].Question, "measure success")
}

func TestTemplateQuestionsBusinessBranch(t *testing.T) {
	questions := templateQuestions("a startup idea")

	require.Len(t, questions, 4)
	assert.Contains(t, questions[1].Question, "industry or market")
	assert.Contains(t, questions[2].Question, "problem does this solve")
}

func TestTemplateQuestionsGenericBranch(t *testing.T) {
	questions := templateQuestions("write better emails")

	require.Len(t, questions, 4)
	assert.Contains(t, questions[1].Question, "specific outcome")
	assert.Contains(t, questions[2].Question, "constraints or requirements")
	for i, q := range questions {
		assert.NotEmpty(t, q.Placeholder)
		assert.Equal(t, []string{"q1", "q2", "q3", "q4"}[i], q.ID)
	}
}

func TestParseQuestionsDefaults(t *testing.T) {
	raw := `Some preamble text [
	  {"question": "First?"},
	  {"question": "Second?", "id": "custom", "placeholder": "hint"},
	  {"question": "  "}
	] trailing text`

	questions, err := parseQuestions(raw)

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "Enter your answer...", questions[0].Placeholder)
	assert.Equal(t, "custom", questions[1].ID)
	assert.Equal(t, "hint", questions[1].Placeholder)
}

func TestParseQuestionsNoArray(t *testing.T) {
	_, err := parseQuestions("no json here at all")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no JSON array"))
}

func TestParseQuestionsMalformedArray(t *testing.T) {
	_, err := parseQuestions(`[{"question": }]`)
	require.Error(t, err)
}

func TestGenerateQuestionsEmptyInput(t *testing.T) {
	creds := config.NewStaticCredentialStore(testKeys)
	primary := &stubGenerator{name: "gemini", response: questionsJSON}

	svc := NewQuestionsService(creds, clarificationSettings(), primary)
	result, err := svc.Generate(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Zero(t, primary.calls)
}
