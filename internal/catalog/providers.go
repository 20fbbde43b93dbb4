package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// Synergy records a pair of frameworks whose combined application observed
// better outcomes than either alone.
type Synergy struct {
	Frameworks [2]string `json:"frameworks"`
	Multiplier float64   `json:"multiplier"`
	Evidence   string    `json:"evidence"`
}

// LoadSynergies reads a synergy table from a JSON file. A missing file is
// not an error; the catalog keeps its empty table.
func (c *Catalog) LoadSynergies(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("catalog: synergy file %s not found, using empty table", path)
			return nil
		}
		return fmt.Errorf("read synergy file: %w", err)
	}
	var records []Synergy
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse synergy file: %w", err)
	}
	table := map[string][]Synergy{}
	for _, s := range records {
		for _, id := range s.Frameworks {
			if _, ok := c.frameworks[id]; ok {
				table[id] = append(table[id], s)
			}
		}
	}
	c.synergies = table
	log.Printf("catalog: loaded %d synergy records from %s", len(records), path)
	return nil
}

// LoadEnhancements reads an inflection-to-frameworks recommendation table
// from a JSON file, replacing the built-in defaults. A missing file keeps
// the defaults.
func (c *Catalog) LoadEnhancements(path string) error {
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("catalog: enhancement file %s not found, keeping built-in table", path)
			return nil
		}
		return fmt.Errorf("read enhancement file: %w", err)
	}
	var table map[taxonomy.StrategicInflection][]string
	if err := json.Unmarshal(raw, &table); err != nil {
		return fmt.Errorf("parse enhancement file: %w", err)
	}
	c.enhancements = table
	log.Printf("catalog: loaded enhancement table from %s (%d inflections)", path, len(table))
	return nil
}

// defaultEnhancements maps strategic inflection points onto the frameworks
// whose published evidence base is strongest for that situation.
func defaultEnhancements() map[taxonomy.StrategicInflection][]string {
	return map[taxonomy.StrategicInflection][]string{
		taxonomy.InflectionPrePMF: {
			"customer_development", "lean_canvas", "mvp_framework", "jobs_to_be_done",
		},
		taxonomy.InflectionAchievingPMF: {
			"product_market_fit", "cohort_analysis", "aarrr_metrics",
		},
		taxonomy.InflectionScalingGrowth: {
			"unit_economics", "growth_loops", "ltv_cac_ratio", "okr_framework",
		},
		taxonomy.InflectionMarketExpansion: {
			"ansoff_matrix", "porters_five_forces", "tam_sam_som",
		},
		taxonomy.InflectionMarketLeadership: {
			"bcg_matrix", "blue_ocean_strategy", "balanced_scorecard",
		},
		taxonomy.InflectionProfitabilityTransition: {
			"unit_economics", "value_chain_analysis", "balanced_scorecard",
		},
		taxonomy.InflectionDisruptionThreat: {
			"porters_five_forces", "blue_ocean_strategy", "swot_analysis",
		},
	}
}
