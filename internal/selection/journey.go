package selection

import (
	"github.com/avendel/framework-advisor/internal/contextengine"
	"github.com/avendel/framework-advisor/internal/taxonomy"
)

// JourneyPhase groups recommended frameworks into one execution horizon.
type JourneyPhase struct {
	Name         string   `json:"name"`
	Horizon      string   `json:"horizon"`
	FrameworkIDs []string `json:"framework_ids"`
}

// Journey is a phased application plan for a recommendation portfolio.
type Journey struct {
	Phases       []JourneyPhase `json:"phases"`
	CriticalPath []string       `json:"critical_path"`
}

// BuildJourney orders the portfolio into execution phases by decision
// context: diagnostic work first, then prescriptive, predictive, and
// evaluative. Crisis mode compresses everything into the first two phases.
func (s *Selector) BuildJourney(ctx *contextengine.CompanyContext, recs []Recommendation) Journey {
	byContext := map[taxonomy.DecisionContext][]string{}
	for _, r := range recs {
		tags, ok := s.cat.Tags(r.FrameworkID)
		if !ok {
			continue
		}
		placed := false
		for _, d := range []taxonomy.DecisionContext{
			taxonomy.DecisionDiagnostic,
			taxonomy.DecisionExploratory,
			taxonomy.DecisionPrescriptive,
			taxonomy.DecisionPredictive,
			taxonomy.DecisionEvaluative,
		} {
			if hasContext(tags.DecisionContexts, d) {
				byContext[d] = append(byContext[d], r.FrameworkID)
				placed = true
				break
			}
		}
		if !placed {
			byContext[taxonomy.DecisionDiagnostic] = append(byContext[taxonomy.DecisionDiagnostic], r.FrameworkID)
		}
	}

	immediate := append(byContext[taxonomy.DecisionDiagnostic], byContext[taxonomy.DecisionExploratory]...)
	short := byContext[taxonomy.DecisionPrescriptive]
	medium := byContext[taxonomy.DecisionPredictive]
	long := byContext[taxonomy.DecisionEvaluative]

	var j Journey
	if ctx.CrisisMode {
		// No medium or long horizon in a crisis.
		j.Phases = []JourneyPhase{
			{Name: "stabilize", Horizon: "0-2 weeks", FrameworkIDs: immediate},
			{Name: "decide", Horizon: "2-4 weeks", FrameworkIDs: append(short, append(medium, long...)...)},
		}
	} else {
		j.Phases = []JourneyPhase{
			{Name: "diagnose", Horizon: "0-4 weeks", FrameworkIDs: immediate},
			{Name: "act", Horizon: "1-3 months", FrameworkIDs: short},
			{Name: "project", Horizon: "3-6 months", FrameworkIDs: medium},
			{Name: "evaluate", Horizon: "6-12 months", FrameworkIDs: long},
		}
	}

	for _, ph := range j.Phases {
		for _, id := range ph.FrameworkIDs {
			if len(j.CriticalPath) >= 5 {
				return j
			}
			j.CriticalPath = append(j.CriticalPath, id)
		}
	}
	return j
}

func hasContext(have []taxonomy.DecisionContext, want taxonomy.DecisionContext) bool {
	for _, d := range have {
		if d == want {
			return true
		}
	}
	return false
}
