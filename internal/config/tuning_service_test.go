package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chisokulab/backend/internal/features/tuning/domain"
)

func TestLoadTuningMissingFileReturnsDefaults(t *testing.T) {
	svc := NewTuningService(filepath.Join(t.TempDir(), "tuning.json"))

	tuning, err := svc.LoadTuning()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTuning(), *tuning)
}

func TestSaveAndLoadTuningRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	svc := NewTuningService(path)

	tuning := domain.DefaultTuning()
	tuning.Vagueness.VaguenessCutoff = 55
	tuning.Amplification.MaxTokens = 1500

	require.NoError(t, svc.SaveTuning(&tuning))

	loaded, err := svc.LoadTuning()
	require.NoError(t, err)
	assert.Equal(t, 55, loaded.Vagueness.VaguenessCutoff)
	assert.Equal(t, 1500, loaded.Amplification.MaxTokens)
}

func TestLoadTuningPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"amplification": {"max_tokens": 1000}}`), 0644))

	svc := NewTuningService(path)
	tuning, err := svc.LoadTuning()

	require.NoError(t, err)
	assert.Equal(t, 1000, tuning.Amplification.MaxTokens)
	// Untouched sections keep their defaults.
	assert.Equal(t, domain.DefaultVaguenessWeights(), tuning.Vagueness)
}

func TestLoadTuningMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	svc := NewTuningService(path)
	_, err := svc.LoadTuning()

	require.Error(t, err)
}
