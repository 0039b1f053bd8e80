package sizing

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yusufkecer/unshakn-backend/internal/domain"
)

//go:embed rules.yaml
var defaultRulesYAML []byte

var ErrInvalidTable = errors.New("invalid size table")

// Table is the read-only configuration the estimator consumes.
// Rules are held sorted by ascending priority.
type Table struct {
	Rules   []domain.SizeRule          `yaml:"rules"`
	FitTips map[domain.BodyType]string `yaml:"fit_tips"`
}

// LoadTable parses and validates a YAML size table.
func LoadTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Table{}, fmt.Errorf("failed to parse size table: %w", err)
	}
	if err := t.normalize(); err != nil {
		return Table{}, err
	}
	return t, nil
}

var loadDefault = sync.OnceValues(func() (Table, error) {
	return LoadTable(defaultRulesYAML)
})

// DefaultTable returns the embedded table. It panics if the embedded
// file is broken, which can only happen at build time.
func DefaultTable() Table {
	t, err := loadDefault()
	if err != nil {
		panic(err)
	}
	return t.clone()
}

func (t *Table) normalize() error {
	if len(t.Rules) == 0 {
		return fmt.Errorf("%w: no rules", ErrInvalidTable)
	}

	seen := make(map[int]struct{}, len(t.Rules))
	for i, r := range t.Rules {
		if err := validateRule(r); err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrInvalidTable, i, err)
		}
		if _, dup := seen[r.Priority]; dup {
			return fmt.Errorf("%w: duplicate priority %d", ErrInvalidTable, r.Priority)
		}
		seen[r.Priority] = struct{}{}
	}

	for _, bt := range domain.BodyTypes {
		if t.FitTips[bt] == "" {
			return fmt.Errorf("%w: missing fit tip for %s", ErrInvalidTable, bt)
		}
	}

	slices.SortStableFunc(t.Rules, func(a, b domain.SizeRule) int {
		return a.Priority - b.Priority
	})
	return nil
}

func validateRule(r domain.SizeRule) error {
	if r.MinHeight > r.MaxHeight {
		return fmt.Errorf("min_height %v > max_height %v", r.MinHeight, r.MaxHeight)
	}
	if r.MinWeight > r.MaxWeight {
		return fmt.Errorf("min_weight %v > max_weight %v", r.MinWeight, r.MaxWeight)
	}
	if !r.RecommendedSize.Valid() {
		return fmt.Errorf("unknown size %q", r.RecommendedSize)
	}
	if !r.BodyType.Valid() {
		return fmt.Errorf("unknown body type %q", r.BodyType)
	}
	return nil
}

func (t Table) clone() Table {
	tips := make(map[domain.BodyType]string, len(t.FitTips))
	for k, v := range t.FitTips {
		tips[k] = v
	}
	return Table{Rules: slices.Clone(t.Rules), FitTips: tips}
}
