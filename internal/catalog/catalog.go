// Package catalog holds the strategic framework library: the frameworks
// themselves plus the tag, effectiveness, antipattern, and relationship
// tables the selection engine scores against.
package catalog

import (
	"fmt"

	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// Framework is one entry in the library.
type Framework struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	WhenToUse        string   `json:"when_to_use"`
	ApplicationSteps []string `json:"application_steps"`
}

// Catalog bundles the framework library with its lookup tables. Construct
// with NewDefault and pass explicitly to consumers.
type Catalog struct {
	frameworks    map[string]Framework
	order         []string
	tags          map[string]Tags
	effectiveness map[string]Effectiveness
	antiPatterns  map[string][]AntiPattern
	relationships map[string]Relationships
	synergies     map[string][]Synergy
	enhancements  map[taxonomy.StrategicInflection][]string
}

// NewDefault builds the catalog from the built-in tables.
func NewDefault() *Catalog {
	c := &Catalog{
		frameworks:    map[string]Framework{},
		tags:          defaultTags(),
		effectiveness: defaultEffectiveness(),
		antiPatterns:  defaultAntiPatterns(),
		relationships: defaultRelationships(),
		synergies:     map[string][]Synergy{},
		enhancements:  defaultEnhancements(),
	}
	for _, f := range defaultFrameworks() {
		c.frameworks[f.ID] = f
		c.order = append(c.order, f.ID)
	}
	return c
}

// Framework returns the entry for id.
func (c *Catalog) Framework(id string) (Framework, bool) {
	f, ok := c.frameworks[id]
	return f, ok
}

// IDs returns all framework ids in catalog order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Frameworks returns all entries in catalog order.
func (c *Catalog) Frameworks() []Framework {
	out := make([]Framework, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.frameworks[id])
	}
	return out
}

// Tags returns the scoring tags for id.
func (c *Catalog) Tags(id string) (Tags, bool) {
	t, ok := c.tags[id]
	return t, ok
}

// Effectiveness returns the effectiveness record for id.
func (c *Catalog) Effectiveness(id string) (Effectiveness, bool) {
	e, ok := c.effectiveness[id]
	return e, ok
}

// AntiPatterns returns the disqualification rules for id.
func (c *Catalog) AntiPatterns(id string) []AntiPattern {
	return c.antiPatterns[id]
}

// Relationships returns the relationship record for id.
func (c *Catalog) Relationships(id string) Relationships {
	return c.relationships[id]
}

// Synergies returns known synergy pairs involving id.
func (c *Catalog) Synergies(id string) []Synergy {
	return c.synergies[id]
}

// EnhancedFrameworksFor returns the research-backed framework ids recommended
// for an inflection point, filtered to ids present in the catalog.
func (c *Catalog) EnhancedFrameworksFor(infl taxonomy.StrategicInflection) []string {
	var out []string
	for _, id := range c.enhancements[infl] {
		if _, ok := c.frameworks[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Validate checks table integrity: every tagged id resolves to a framework
// and tag ranges are sane.
func (c *Catalog) Validate() error {
	for id, t := range c.tags {
		if _, ok := c.frameworks[id]; !ok {
			return fmt.Errorf("catalog: tags reference unknown framework %q", id)
		}
		if t.TeamSizeMin > t.TeamSizeMax {
			return fmt.Errorf("catalog: %s team size range inverted (%d > %d)", id, t.TeamSizeMin, t.TeamSizeMax)
		}
		if t.TimeToValueDays <= 0 {
			return fmt.Errorf("catalog: %s time to value must be positive", id)
		}
		for name, v := range map[string]float64{
			"ease_of_use":      t.EaseOfUse,
			"actionability":    t.Actionability,
			"accuracy":         t.Accuracy,
			"strategic_impact": t.StrategicImpact,
		} {
			if v < 0 || v > 100 {
				return fmt.Errorf("catalog: %s %s out of range: %v", id, name, v)
			}
		}
	}
	return nil
}
