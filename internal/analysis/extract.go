package analysis

import "strings"

// Extraction heuristics over free narrative text. These are intentionally
// forgiving: the narrative layer is advisory and a missed extraction
// degrades to the sentinel, never to an error.

func extractExecutiveSummary(narrative string) string {
	lines := strings.Split(narrative, "\n")
	for i, line := range lines {
		l := strings.ToLower(line)
		if strings.Contains(l, "summary") || strings.Contains(l, "overall") || strings.Contains(l, "conclusion") {
			var parts []string
			if _, after, found := strings.Cut(line, ":"); found && strings.TrimSpace(after) != "" {
				parts = append(parts, strings.TrimSpace(after))
			}
			for _, next := range lines[i+1:] {
				if strings.TrimSpace(next) == "" {
					break
				}
				parts = append(parts, strings.TrimSpace(next))
			}
			if len(parts) > 0 {
				return strings.Join(parts, " ")
			}
		}
	}
	// No summary marker: fall back to the first paragraph.
	for _, para := range strings.Split(narrative, "\n\n") {
		if p := strings.TrimSpace(para); p != "" {
			return strings.Join(strings.Fields(p), " ")
		}
	}
	return ""
}

func extractInsights(narrative string) []Insight {
	var out []Insight
	for _, line := range strings.Split(narrative, "\n") {
		text, ok := stripListMarker(strings.TrimSpace(line))
		if !ok || len(text) <= 20 {
			continue
		}
		out = append(out, Insight{
			Text:      text,
			Impact:    classifyImpact(text),
			Timeframe: classifyTimeframe(text),
		})
		if len(out) == 5 {
			break
		}
	}
	return out
}

func stripListMarker(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	switch line[0] {
	case '-', '*', '+':
		return strings.TrimSpace(line[1:]), true
	}
	if line[0] >= '1' && line[0] <= '9' {
		rest := strings.TrimLeft(line, "0123456789")
		if strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, ")") {
			return strings.TrimSpace(rest[1:]), true
		}
	}
	return "", false
}

func classifyImpact(text string) string {
	l := strings.ToLower(text)
	for _, kw := range []string{"revenue", "cash", "runway", "market share", "margin", "invest"} {
		if strings.Contains(l, kw) {
			return "high"
		}
	}
	return "medium"
}

func classifyTimeframe(text string) string {
	l := strings.ToLower(text)
	for _, kw := range []string{"immediate", "now", "week", "this quarter"} {
		if strings.Contains(l, kw) {
			return "near_term"
		}
	}
	for _, kw := range []string{"year", "long", "annual"} {
		if strings.Contains(l, kw) {
			return "long_term"
		}
	}
	return "medium_term"
}

var bcgQuadrants = []string{"question mark", "cash cow", "star", "dog"}

// extractBCGQuadrant finds the first named quadrant. "star" and "dog" are
// common words ("startup", "dogfooding"), so they only count when the text
// also talks about a quadrant or position.
func extractBCGQuadrant(narrative string) Extracted {
	l := strings.ToLower(narrative)
	placed := strings.Contains(l, "quadrant") || strings.Contains(l, "position")
	for _, q := range bcgQuadrants {
		if !strings.Contains(l, q) {
			continue
		}
		if (q == "star" || q == "dog") && !placed {
			continue
		}
		return Extracted{Value: titleCase(q), Confidence: 0.8}
	}
	return notDetermined("narrative did not name a quadrant")
}

var ansoffStrategies = []string{"market penetration", "market development", "product development", "diversification"}

func extractAnsoffStrategy(narrative string) Extracted {
	l := strings.ToLower(narrative)
	for _, s := range ansoffStrategies {
		if strings.Contains(l, s) {
			return Extracted{Value: titleCase(s), Confidence: 0.8}
		}
	}
	return notDetermined("narrative did not name a growth strategy")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
