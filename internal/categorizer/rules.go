// Package categorizer provides rule-based categorization of transactions.
// Categories carry keyword lists; a description is assigned to the first
// category, in definition order, with a matching keyword.
package categorizer

import (
	"strings"

	"fjacquet/finledger/internal/logging"
	"fjacquet/finledger/internal/models"
)

// CategorySource supplies the initial category rule set.
// It is satisfied by store.CategoryStore and by test fakes.
type CategorySource interface {
	LoadCategories() ([]models.CategoryConfig, error)
}

// Rules holds the ordered category set and classifies descriptions.
// The order categories were defined in is the classification order:
// the first matching category wins, so the rule set must stay stable.
type Rules struct {
	categories []models.Category
	lastID     int
	logger     logging.Logger
}

// NewRules creates a rule set from the given source. A missing or empty
// source falls back to the built-in default categories. The fallback
// category always exists, keyword-free, at the end of the scan order.
func NewRules(source CategorySource, logger logging.Logger) *Rules {
	r := &Rules{logger: logger}

	var configs []models.CategoryConfig
	if source != nil {
		loaded, err := source.LoadCategories()
		if err != nil {
			logger.WithError(err).Warn("Failed to load category rules, using defaults")
		} else {
			configs = loaded
		}
	}
	if len(configs) == 0 {
		configs = models.DefaultCategories()
	}

	for _, cfg := range configs {
		r.append(cfg.Name, cfg.Keywords)
	}
	r.EnsureCategory(models.FallbackCategory)

	logger.WithField(logging.FieldCount, len(r.categories)).Debug("Category rules initialized")
	return r
}

// append adds a category with the next sequential id, lower-casing and
// dropping blank keywords.
func (r *Rules) append(name string, keywords []string) {
	var cleaned []string
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			cleaned = append(cleaned, kw)
		}
	}

	r.lastID++
	r.categories = append(r.categories, models.Category{
		ID:       r.lastID,
		Name:     name,
		Keywords: cleaned,
	})
}

// Classify returns the name of the first category, in definition order,
// having a keyword contained in the lower-cased description. When nothing
// matches it returns the fallback category name.
func (r *Rules) Classify(description string) string {
	descLower := strings.ToLower(description)

	for _, category := range r.categories {
		for _, keyword := range category.Keywords {
			if strings.Contains(descLower, keyword) {
				r.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: category.Name},
				).Debug("Description classified by keyword match")
				return category.Name
			}
		}
	}

	return models.FallbackCategory
}

// EnsureCategory appends a new keyword-free category with that name
// unless it already exists. Matching is case-sensitive.
func (r *Rules) EnsureCategory(name string) {
	for _, category := range r.categories {
		if category.Name == name {
			return
		}
	}

	r.append(name, nil)
	r.logger.WithField(logging.FieldCategory, name).Debug("Category added")
}

// Categories returns the category set in definition order.
func (r *Rules) Categories() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}
