package models

import "gorm.io/gorm"

// LogEntry - одна запись тренировки: дата и подходы упражнения.
// Weights и Reps хранятся как "100/102.5/105" и "5/4/3", по позиции.
type LogEntry struct {
	gorm.Model
	Date       string   `gorm:"type:varchar(10);not null;index"` // YYYY/MM/DD
	ExerciseID uint     `gorm:"not null;index"`
	Exercise   Exercise `gorm:"foreignKey:ExerciseID"`
	Weights    string   `gorm:"type:text;not null"`
	Reps       string   `gorm:"type:text;not null"`
	Notes      string   `gorm:"type:text"`
}

func (LogEntry) TableName() string {
	return "logs"
}
