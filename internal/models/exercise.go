package models

import "gorm.io/gorm"

type Exercise struct {
	gorm.Model
	Name string     `gorm:"column:exercise_name;type:varchar(100);uniqueIndex;not null"`
	Logs []LogEntry `gorm:"foreignKey:ExerciseID"`
}
