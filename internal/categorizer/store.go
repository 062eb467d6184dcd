package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/logging"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/models"
)

// keywordFile is the on-disk shape of a user keyword file:
//
//	rules:
//	  - category: Dining
//	    keywords: [bistro, brasserie]
type keywordFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadKeywordFile extends the categorizer with user rules from a YAML file.
// Rules naming a category outside the fixed set are rejected.
func (c *Categorizer) LoadKeywordFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading keyword file: %w", err)
	}

	var file keywordFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing keyword file %s: %w", path, err)
	}

	for _, rule := range file.Rules {
		if !models.IsValidCategory(rule.Category) {
			return fmt.Errorf("keyword file %s: unknown category %q", path, rule.Category)
		}
		if len(rule.Keywords) == 0 {
			return fmt.Errorf("keyword file %s: category %q has no keywords", path, rule.Category)
		}
	}

	c.extra = append(c.extra, file.Rules...)
	log.Info("Loaded user keyword rules",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(file.Rules)})
	return nil
}
