package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"chisokulab/backend/internal/features/tuning/domain"
)

// TuningService defines the interface for tuning-constant management.
type TuningService interface {
	LoadTuning() (*domain.Tuning, error)
	SaveTuning(t *domain.Tuning) error
}

// tuningService is the implementation of TuningService backed by a JSON file.
type tuningService struct {
	configPath string
}

// NewTuningService creates a new instance of tuningService.
func NewTuningService(configPath string) TuningService {
	return &tuningService{configPath: configPath}
}

// LoadTuning loads tuning values from the configured JSON file. A missing
// file is not an error: the compiled-in defaults are returned instead.
func (s *tuningService) LoadTuning() (*domain.Tuning, error) {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if errors.Is(err, fs.ErrNotExist) {
		defaults := domain.DefaultTuning()
		return &defaults, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file %s: %w", absPath, err)
	}

	tuning := domain.DefaultTuning()
	if err := json.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tuning from %s: %w", absPath, err)
	}

	return &tuning, nil
}

// SaveTuning saves tuning values to the configured JSON file.
func (s *tuningService) SaveTuning(t *domain.Tuning) error {
	absPath, err := filepath.Abs(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for %s: %w", s.configPath, err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tuning: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write tuning to file %s: %w", absPath, err)
	}

	return nil
}
