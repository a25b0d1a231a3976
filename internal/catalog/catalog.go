// Package catalog supplies the immutable set of spirits, scenarios and
// adversaries the randomizers draw from.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/island-randomizer/internal/entities"
	"github.com/KirkDiggler/island-randomizer/internal/errors"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var defaultCatalog = mustParseEmbedded()

// Catalog is the full item list. It is read-only once loaded.
type Catalog struct {
	Spirits     []entities.Spirit     `yaml:"spirits"`
	Adversaries []*entities.Adversary `yaml:"adversaries"`
	Scenarios   []*entities.Scenario  `yaml:"scenarios"`
}

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	return defaultCatalog
}

// Load reads and validates a catalog file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file not found: %s", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	cat, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog").WithMeta("path", path)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil && err != io.EOF {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not valid yaml")
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks field ranges and that every name is unique. Spirits and
// rules live in separate partitions, so a spirit may share a name with a
// rule.
func (c *Catalog) Validate() error {
	vb := errors.NewValidationBuilder()

	spiritNames := make(map[string]bool, len(c.Spirits))
	for i, s := range c.Spirits {
		field := fmt.Sprintf("spirits[%d]", i)
		validateName(field, s.Name, spiritNames, vb)
		if !s.Complexity.IsValid() {
			vb.InvalidField(field+".complexity", string(s.Complexity))
		}
		if !s.Expansion.IsValid() {
			vb.InvalidField(field+".expansion", string(s.Expansion))
		}
		for _, stat := range entities.StatList {
			errors.ValidateFloatRange(field+".stats."+string(stat), s.Stats.Get(stat), 0, entities.MaxStat, vb)
		}
	}

	ruleNames := make(map[string]bool, len(c.Adversaries)+len(c.Scenarios))
	for i, a := range c.Adversaries {
		field := fmt.Sprintf("adversaries[%d]", i)
		if a == nil {
			vb.RequiredField(field)
			continue
		}
		validateName(field, a.Name, ruleNames, vb)
		if !a.Expansion.IsValid() {
			vb.InvalidField(field+".expansion", string(a.Expansion))
		}
		if len(a.Difficulties) == 0 {
			vb.RequiredField(field + ".difficulties")
		}
		for j, d := range a.Difficulties {
			if d < 0 {
				vb.Fieldf(fmt.Sprintf("%s.difficulties[%d]", field, j), "must not be negative")
			}
		}
	}
	for i, s := range c.Scenarios {
		field := fmt.Sprintf("scenarios[%d]", i)
		if s == nil {
			vb.RequiredField(field)
			continue
		}
		validateName(field, s.Name, ruleNames, vb)
		if !s.Expansion.IsValid() {
			vb.InvalidField(field+".expansion", string(s.Expansion))
		}
		if s.Difficulty < 0 {
			vb.Field(field+".difficulty", "must not be negative")
		}
	}

	return vb.Build()
}

func validateName(field, name string, seen map[string]bool, vb *errors.ValidationBuilder) {
	errors.ValidateRequired(field+".name", name, vb)
	if seen[name] {
		vb.Fieldf(field+".name", "duplicates %q", name)
	}
	seen[name] = true
}

// Rules returns adversaries followed by scenarios, the order rules are
// first shown in
func (c *Catalog) Rules() []entities.Rule {
	rules := make([]entities.Rule, 0, len(c.Adversaries)+len(c.Scenarios))
	for _, a := range c.Adversaries {
		rules = append(rules, a)
	}
	for _, s := range c.Scenarios {
		rules = append(rules, s)
	}
	return rules
}

// Spirit looks up a spirit by name
func (c *Catalog) Spirit(name string) (entities.Spirit, bool) {
	for _, s := range c.Spirits {
		if s.Name == name {
			return s, true
		}
	}
	return entities.Spirit{}, false
}

// Rule looks up a scenario or adversary by name
func (c *Catalog) Rule(name string) (entities.Rule, bool) {
	for _, r := range c.Rules() {
		if r.GetName() == name {
			return r, true
		}
	}
	return nil, false
}

func mustParseEmbedded() *Catalog {
	cat, err := Parse(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return cat
}
