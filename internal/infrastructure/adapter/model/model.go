package model

// PredictionModel represents the database model for catalog entries
type PredictionModel struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
	Cost int64  `gorm:"not null"` // Cost per call in cents
}

// TableName specifies the table name for PredictionModel
func (PredictionModel) TableName() string {
	return "models"
}
