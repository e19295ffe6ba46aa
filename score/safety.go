package score

import (
	"github.com/tourguard-inc/tourguard-api/schema"
)

const (
	MinScore = 0
	MaxScore = 100

	// fixed deltas for the emergency state machine
	PanicDelta   = -30
	ResolveDelta = 20

	baseScore = 75

	thresholdLowRisk    = 80
	thresholdMediumRisk = 50
)

// Factors - inputs for an absolute safety score recomputation. A zero
// HeartRate means the device did not report one.
type Factors struct {
	LocationRisk    string `json:"location_risk"`
	InactiveMinutes int    `json:"inactive_minutes"`
	HeartRate       int    `json:"heart_rate"`
}

const (
	LocationRiskHigh   = "High"
	LocationRiskMedium = "Medium"
)

// RiskLevelFromScore maps a safety score onto its risk tier
func RiskLevelFromScore(score int) schema.RiskLevel {
	switch {
	case score >= thresholdLowRisk:
		return schema.RiskLevelLow
	case score >= thresholdMediumRisk:
		return schema.RiskLevelMedium
	default:
		return schema.RiskLevelHigh
	}
}

// ApplyDelta shifts the safety score by delta, clamped to [0, 100], and
// re-derives the risk tier. Oversized deltas clamp instead of failing.
func ApplyDelta(profile schema.SafetyProfile, delta int) schema.SafetyProfile {
	profile.SafetyScore = clamp(profile.SafetyScore + delta)
	profile.RiskLevel = RiskLevelFromScore(profile.SafetyScore)
	return profile
}

// ComputeFromFactors recomputes an absolute safety score from reported
// factors. This is the recompute path for profile-factor updates; panic and
// resolve go through ApplyDelta instead.
func ComputeFromFactors(factors Factors) int {
	score := baseScore

	switch factors.LocationRisk {
	case LocationRiskHigh:
		score -= 20
	case LocationRiskMedium:
		score -= 10
	}

	if factors.InactiveMinutes > 30 {
		score -= 15
	}

	if factors.HeartRate > 120 {
		score -= 10
	} else if factors.HeartRate > 0 && factors.HeartRate < 50 {
		score -= 15
	}

	return clamp(score)
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
