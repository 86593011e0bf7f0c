package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads category rule definitions from a YAML file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading the given categories file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// findConfigFile looks for a configuration file in standard locations.
func (s *CategoryStore) findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", "finledger", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads categories from the YAML file. A missing file is
// not an error; it returns an empty slice so callers fall back to the
// built-in defaults.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = "categories.yaml"
	}

	filePath, err := s.findConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, filename).Debug("Categories file not found")
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// Preferred structure: top-level "categories:" key.
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err == nil && len(categoriesConfig.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)},
		).Debug("Loaded categories")
		return categoriesConfig.Categories, nil
	}

	// Fallback: a bare array of category entries.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return categories, nil
}
