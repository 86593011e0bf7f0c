package store

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finledger/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCategoriesTopLevelKey(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	content := `categories:
  - name: Food
    keywords: ["lunch", "dinner"]
  - name: Other
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	s := NewCategoryStore(file, &logging.MockLogger{})
	cats, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Food", cats[0].Name)
	assert.Equal(t, []string{"lunch", "dinner"}, cats[0].Keywords)
}

func TestLoadCategoriesBareArray(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	content := `- name: Transport
  keywords: ["taxi"]
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	s := NewCategoryStore(file, &logging.MockLogger{})
	cats, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Transport", cats[0].Name)
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "missing.yaml"), &logging.MockLogger{})
	cats, err := s.LoadCategories()
	assert.NoError(t, err)
	assert.Empty(t, cats)
}

func TestLoadCategoriesMalformed(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "categories.yaml")
	require.NoError(t, os.WriteFile(file, []byte(":::not yaml"), 0600))

	s := NewCategoryStore(file, &logging.MockLogger{})
	_, err := s.LoadCategories()
	assert.Error(t, err)
}
