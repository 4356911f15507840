package models

import "gorm.io/gorm"

type WorkoutSplit struct {
	gorm.Model
	Name        string `gorm:"column:workout_split_name;type:varchar(100);not null"`
	DaysPerWeek int    `gorm:"default:0"`
}
