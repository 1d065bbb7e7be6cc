package classify

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/NIgan1989/finsights-engine/pkg/models"
)

// Rule maps description keywords to a classification verdict.
type Rule struct {
	Keywords        []string `yaml:"keywords"`
	Category        string   `yaml:"category"`
	TransactionType string   `yaml:"transactionType"`
	IsCapitalized   bool     `yaml:"isCapitalized"`
}

// RulesConfig is the YAML shape of a rules file.
type RulesConfig struct {
	Rules []Rule `yaml:"rules"`
}

// RulesClassifier is a deterministic keyword matcher. First matching rule
// wins; unmatched transactions fall back to other / other-income, operating.
type RulesClassifier struct {
	rules []Rule
}

// NewRulesClassifier builds a classifier from an in-memory rule set.
func NewRulesClassifier(rules []Rule) *RulesClassifier {
	return &RulesClassifier{rules: rules}
}

// LoadRulesClassifier reads a YAML rules file.
func LoadRulesClassifier(path string) (*RulesClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	var cfg RulesConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	return &RulesClassifier{rules: cfg.Rules}, nil
}

var _ Classifier = (*RulesClassifier)(nil)

// Classify matches each request description against the rule set.
func (c *RulesClassifier) Classify(_ context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, c.classifyOne(req))
	}
	return results, nil
}

func (c *RulesClassifier) classifyOne(req Request) Result {
	desc := strings.ToLower(req.Description)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(desc, strings.ToLower(kw)) {
				return Result{
					ID:              req.ID,
					Category:        models.Category(rule.Category),
					TransactionType: models.Activity(rule.TransactionType),
					IsCapitalized:   rule.IsCapitalized && req.Type == models.TxExpense,
				}
			}
		}
	}
	return fallback(req)
}

func fallback(req Request) Result {
	cat := models.CatOther
	if req.Type == models.TxIncome {
		cat = models.CatOtherIncome
	}
	return Result{
		ID:              req.ID,
		Category:        cat,
		TransactionType: models.ActivityOperating,
	}
}
