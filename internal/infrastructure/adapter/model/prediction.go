package model

// Prediction represents the database model for recorded predictions
type Prediction struct {
	ID         uint64  `gorm:"primaryKey"`
	UserID     uint64  `gorm:"index;not null"`
	ModelID    uint64  `gorm:"not null"`
	InputData  string  `gorm:"not null"`
	OutputData *string // Nullable until computed
}

// TableName specifies the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}
