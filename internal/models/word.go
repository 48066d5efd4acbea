package models

// Difficulty is the difficulty band of a word
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known bands
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Word represents a vocabulary entry
type Word struct {
	ID            int64      `json:"id"`
	Text          string     `json:"word"`
	Pronunciation string     `json:"pronunciation"`
	Definition    string     `json:"definition"`
	Example       string     `json:"example"`
	FunFact       string     `json:"fun_fact"`
	Emoji         string     `json:"emoji"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
}

// WordFilter narrows word queries; zero values are omitted
type WordFilter struct {
	Category   string
	Difficulty Difficulty
	UserID     int64
}
