package models

// FallbackCategory is the category assigned when no keyword rule matches.
// It always exists and carries no keywords.
const FallbackCategory = "Other"

// Category represents a named transaction bucket with optional
// keyword-matching rules for automatic assignment.
type Category struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// CategoryConfig represents a category entry in the rules YAML file.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// DefaultCategories returns the built-in rule set used when no categories
// file is configured. Keywords are lowercase; classification lower-cases
// descriptions before matching.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: "Food", Keywords: []string{"food", "restaurant", "market", "supermarket", "breakfast", "lunch", "dinner"}},
		{Name: "Transport", Keywords: []string{"fare", "taxi", "uber", "fuel", "transport", "bus"}},
		{Name: "Education", Keywords: []string{"books", "supplies", "course", "university", "school", "tuition"}},
		{Name: "Entertainment", Keywords: []string{"cinema", "movie", "netflix", "spotify", "games"}},
		{Name: "Health", Keywords: []string{"medicine", "doctor", "hospital", "pharmacy", "insurance"}},
		{Name: "Utilities", Keywords: []string{"electricity", "water", "internet", "phone", "rent"}},
		{Name: "Clothing", Keywords: []string{"clothes", "shoes", "accessories"}},
		{Name: FallbackCategory, Keywords: nil},
	}
}
