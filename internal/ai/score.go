package ai

import (
	"encoding/json"
	"strings"
)

// Score is the structured CV assessment. Fields stay nil when the model output could not be parsed.
type Score struct {
	Overall                  *float64 `json:"overall"`
	ImpactAchievementDensity *float64 `json:"impact_achievement_density"`
	ClarityReadability       *float64 `json:"clarity_readability"`
	ActionVerbStrength       *float64 `json:"action_verb_strength"`
	Professionalism          *float64 `json:"professionalism"`
	Feedback                 []string `json:"feedback"`
	Raw                      string   `json:"raw"`
}

// ParseScore extracts the first JSON object from raw. Raw is always preserved.
func ParseScore(raw string) Score {
	score := Score{Raw: raw}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return score
	}

	var parsed Score
	if err := json.Unmarshal([]byte(raw[start:end+1]), &parsed); err != nil {
		return score
	}
	parsed.Raw = raw
	return parsed
}
