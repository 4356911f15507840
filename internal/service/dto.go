package service

// Log DTOs
type AddLogDTO struct {
	Exercise string `json:"exercise" binding:"required"`
	Date     string `json:"date" binding:"required"`    // YYYY/MM/DD
	Weights  string `json:"weights" binding:"required"` // "100/102.5"
	Reps     string `json:"reps" binding:"required"`    // "5/4"
	Notes    string `json:"notes"`
}

// Workout split DTOs
type CreateSplitDTO struct {
	Name        string `json:"name" binding:"required"`
	DaysPerWeek int    `json:"daysPerWeek"`
}
