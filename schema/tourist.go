package schema

const (
	ProfileCollection = "profile"
)

// TouristStatus - current distress state of a tourist
type TouristStatus string

const (
	TouristStatusActive    TouristStatus = "active"
	TouristStatusEmergency TouristStatus = "emergency"
)

// RiskLevel - coarse tier derived from the safety score
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// SafetyProfile - per-tourist safety state. RiskLevel is always derived from
// SafetyScore; it is never written independently.
type SafetyProfile struct {
	TouristID   string        `bson:"tourist_id" json:"tourist_id"`
	Name        string        `bson:"name,omitempty" json:"name,omitempty"`
	SafetyScore int           `bson:"safety_score" json:"safety_score"`
	RiskLevel   RiskLevel     `bson:"risk_level" json:"risk_level"`
	Status      TouristStatus `bson:"status" json:"status"`
	LastActive  int64         `bson:"last_active" json:"last_active"`
}
