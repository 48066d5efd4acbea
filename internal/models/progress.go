package models

// Progress is a user's learning progress as reported by the backend
type Progress struct {
	Level           int                               `json:"level"`
	XP              int                               `json:"xp"`
	WordsLearned    int                               `json:"words_learned"`
	CurrentStreak   int                               `json:"current_streak"`
	BestStreak      int                               `json:"best_streak"`
	TotalTestsTaken int                               `json:"total_tests_taken"`
	ProgressData    map[Difficulty]DifficultyProgress `json:"progress_data,omitempty"`
}

// ProgressUpdate is a partial progress write; nil fields are left unchanged
type ProgressUpdate struct {
	Level           *int                              `json:"level,omitempty"`
	XP              *int                              `json:"xp,omitempty"`
	WordsLearned    *int                              `json:"words_learned,omitempty"`
	CurrentStreak   *int                              `json:"current_streak,omitempty"`
	BestStreak      *int                              `json:"best_streak,omitempty"`
	TotalTestsTaken *int                              `json:"total_tests_taken,omitempty"`
	ProgressData    map[Difficulty]DifficultyProgress `json:"progress_data,omitempty"`
	Settings        *Settings                         `json:"settings,omitempty"`
	Achievements    []string                          `json:"achievements,omitempty"`
	VirtualPet      *VirtualPet                       `json:"virtual_pet,omitempty"`
}
