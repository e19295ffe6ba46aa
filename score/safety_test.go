package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tourguard-inc/tourguard-api/schema"
)

func TestRiskLevelThresholds(t *testing.T) {
	assert.Equal(t, schema.RiskLevelLow, RiskLevelFromScore(100))
	assert.Equal(t, schema.RiskLevelLow, RiskLevelFromScore(80))
	assert.Equal(t, schema.RiskLevelMedium, RiskLevelFromScore(79))
	assert.Equal(t, schema.RiskLevelMedium, RiskLevelFromScore(50))
	assert.Equal(t, schema.RiskLevelHigh, RiskLevelFromScore(49))
	assert.Equal(t, schema.RiskLevelHigh, RiskLevelFromScore(0))
}

func TestApplyDeltaClampsLow(t *testing.T) {
	p := schema.SafetyProfile{SafetyScore: 20}
	p = ApplyDelta(p, -1000)
	assert.Equal(t, 0, p.SafetyScore)
	assert.Equal(t, schema.RiskLevelHigh, p.RiskLevel)
}

func TestApplyDeltaClampsHigh(t *testing.T) {
	p := schema.SafetyProfile{SafetyScore: 90}
	p = ApplyDelta(p, 1000)
	assert.Equal(t, 100, p.SafetyScore)
	assert.Equal(t, schema.RiskLevelLow, p.RiskLevel)
}

func TestApplyDeltaRecomputesRiskLevel(t *testing.T) {
	p := schema.SafetyProfile{SafetyScore: 60, RiskLevel: schema.RiskLevelMedium}

	p = ApplyDelta(p, PanicDelta)
	assert.Equal(t, 30, p.SafetyScore)
	assert.Equal(t, schema.RiskLevelHigh, p.RiskLevel)

	p = ApplyDelta(p, ResolveDelta)
	assert.Equal(t, 50, p.SafetyScore)
	assert.Equal(t, schema.RiskLevelMedium, p.RiskLevel)
}

func TestComputeFromFactorsBase(t *testing.T) {
	assert.Equal(t, 75, ComputeFromFactors(Factors{}))
}

func TestComputeFromFactorsLocationRisk(t *testing.T) {
	assert.Equal(t, 55, ComputeFromFactors(Factors{LocationRisk: LocationRiskHigh}))
	assert.Equal(t, 65, ComputeFromFactors(Factors{LocationRisk: LocationRiskMedium}))
}

func TestComputeFromFactorsInactivity(t *testing.T) {
	assert.Equal(t, 75, ComputeFromFactors(Factors{InactiveMinutes: 30}))
	assert.Equal(t, 60, ComputeFromFactors(Factors{InactiveMinutes: 31}))
}

func TestComputeFromFactorsHeartRate(t *testing.T) {
	assert.Equal(t, 65, ComputeFromFactors(Factors{HeartRate: 121}))
	assert.Equal(t, 60, ComputeFromFactors(Factors{HeartRate: 49}))
	// unreported heart rate takes no penalty
	assert.Equal(t, 75, ComputeFromFactors(Factors{HeartRate: 0}))
	assert.Equal(t, 75, ComputeFromFactors(Factors{HeartRate: 80}))
}

func TestComputeFromFactorsStacked(t *testing.T) {
	s := ComputeFromFactors(Factors{
		LocationRisk:    LocationRiskHigh,
		InactiveMinutes: 45,
		HeartRate:       45,
	})
	assert.Equal(t, 25, s)
}
