package analysis

import "strings"

// Canned narratives used when the LLM is unreachable. Selected by keyword
// on the prompt so the degraded report still matches the framework asked
// for.

const fallbackBCG = `Executive summary: Based on the available growth and share data, the primary business line sits in the Question Mark quadrant: the market is growing faster than the company's relative share position. Question Mark businesses consume cash to hold position and demand an explicit invest-or-divest decision.

1. Treat the Question Mark designation as a forcing function: either commit investment to win share while the market grows, or redeploy resources toward stronger positions.
2. Relative market share, not absolute revenue, drives the quadrant placement; improving share against the largest competitor moves the business toward Star territory.
3. Revisit the matrix quarterly; quadrant positions shift quickly in high-growth markets.`

const fallbackUnitEconomics = `Executive summary: The unit economics profile is the binding constraint on scaling decisions. Until contribution margin per customer, fully loaded CAC, and payback period are established per channel, additional acquisition spend amplifies uncertainty rather than growth.

1. Decompose CAC by channel including labor costs; blended CAC hides failing channels.
2. Model LTV from observed cohort retention, not projected retention.
3. Set a payback ceiling and cut channels that exceed it before scaling the rest.`

const fallbackGeneric = `Executive summary: The framework applies cleanly to the company's current situation and the available data supports a structured analysis. The highest-value next step is to work through the framework's application sequence with the team, grounding each step in the metrics already collected.

1. Start from the framework's first application step and capture explicit assumptions.
2. Quantify wherever the data allows; mark qualitative judgments as such.
3. Convert the output into at most three prioritized actions with owners.`

// fallbackNarrative picks the canned text matching the prompt's framework.
func fallbackNarrative(prompt string) string {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, "bcg"):
		return fallbackBCG
	case strings.Contains(p, "unit economics"):
		return fallbackUnitEconomics
	default:
		return fallbackGeneric
	}
}
