package models

// Health data categories tracked per user per day.
const (
	CategoryFood          = "food"
	CategoryVitals        = "vitals"
	CategoryMedicalRecord = "medical_record"
)

// HealthFact is one ingested daily health observation for a user.
type HealthFact struct {
	UserID   string `bson:"user_id" json:"user_id"`
	Date     string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Category string `bson:"category" json:"category"`
	Text     string `bson:"text" json:"text"`
}
