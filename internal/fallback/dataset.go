package fallback

import (
	"math/rand"
	"time"

	"wordadventure/internal/models"
)

// Dataset is the local data served when the backend cannot be reached
type Dataset struct {
	Words        []models.Word
	Categories   []models.Category
	Difficulties []models.Difficulty
}

// Default returns the built-in dataset
func Default() *Dataset {
	return &Dataset{
		Words:        defaultWords(),
		Categories:   defaultCategories(),
		Difficulties: []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard},
	}
}

// AllWords returns a copy of every local word
func (d *Dataset) AllWords() []models.Word {
	return append([]models.Word(nil), d.Words...)
}

// RandomWords returns up to count distinct local words in random order
func (d *Dataset) RandomWords(count int) []models.Word {
	words := d.AllWords()
	rand.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if count < 0 {
		count = 0
	}
	if count < len(words) {
		words = words[:count]
	}
	return words
}

// AllCategories returns a copy of the local categories
func (d *Dataset) AllCategories() []models.Category {
	return append([]models.Category(nil), d.Categories...)
}

// AllDifficulties returns a copy of the local difficulty bands
func (d *Dataset) AllDifficulties() []models.Difficulty {
	return append([]models.Difficulty(nil), d.Difficulties...)
}

func defaultWords() []models.Word {
	return []models.Word{
		{
			ID:            1,
			Text:          "apple",
			Pronunciation: "/ˈæpəl/",
			Definition:    "A round fruit with red or green skin",
			Example:       "I eat an apple for breakfast",
			FunFact:       "Apples float because they are 25% air!",
			Emoji:         "🍎",
			Category:      "food",
			Difficulty:    models.DifficultyEasy,
		},
		{
			ID:            2,
			Text:          "banana",
			Pronunciation: "/bəˈnænə/",
			Definition:    "A long yellow fruit",
			Example:       "Monkeys love to eat bananas",
			FunFact:       "Bananas are berries, but strawberries are not!",
			Emoji:         "🍌",
			Category:      "food",
			Difficulty:    models.DifficultyEasy,
		},
		{
			ID:            3,
			Text:          "cat",
			Pronunciation: "/kæt/",
			Definition:    "A small furry pet animal that meows",
			Example:       "My cat likes to sleep in the sun",
			FunFact:       "Cats spend 70% of their lives sleeping!",
			Emoji:         "🐱",
			Category:      "animals",
			Difficulty:    models.DifficultyEasy,
		},
		{
			ID:            4,
			Text:          "dog",
			Pronunciation: "/dɔːɡ/",
			Definition:    "A friendly pet animal that barks",
			Example:       "Dogs are loyal companions",
			FunFact:       "Dogs can learn over 150 words!",
			Emoji:         "🐶",
			Category:      "animals",
			Difficulty:    models.DifficultyEasy,
		},
		{
			ID:            5,
			Text:          "elephant",
			Pronunciation: "/ˈeləfənt/",
			Definition:    "A large gray animal with a long trunk",
			Example:       "Elephants are the largest land animals",
			FunFact:       "Elephants can remember friends after decades!",
			Emoji:         "🐘",
			Category:      "animals",
			Difficulty:    models.DifficultyMedium,
		},
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "food", Name: "Food"},
		{ID: "animals", Name: "Animals"},
		{ID: "colors", Name: "Colors"},
		{ID: "nature", Name: "Nature"},
		{ID: "family", Name: "Family"},
		{ID: "school", Name: "School"},
	}
}

// Demo account identity
const (
	DemoUserID = 1
	DemoEmail  = "demo@wordadventure.com"
)

// DemoSession builds the synthetic profile used for offline demo logins.
// The pet was last fed an hour before now.
func DemoSession(username string, now time.Time) *models.Session {
	return &models.Session{
		ID:              DemoUserID,
		Username:        username,
		Email:           DemoEmail,
		Level:           5,
		XP:              1250,
		WordsLearned:    45,
		CurrentStreak:   7,
		BestStreak:      12,
		TotalTestsTaken: 23,
		ProgressData: map[models.Difficulty]models.DifficultyProgress{
			models.DifficultyEasy:   {Learned: 20, Total: 30},
			models.DifficultyMedium: {Learned: 15, Total: 25},
			models.DifficultyHard:   {Learned: 10, Total: 20},
		},
		Settings: models.Settings{
			FontSize:      "medium",
			HighContrast:  false,
			ReducedMotion: false,
			SoundEnabled:  true,
		},
		Achievements: []string{"first_word", "streak_5", "level_5"},
		VirtualPet: &models.VirtualPet{
			Name:        "Buddy",
			Type:        "cat",
			Happiness:   85,
			Growth:      65,
			Accessories: []string{"hat", "bow"},
			LastFed:     now.Add(-time.Hour).UnixMilli(),
		},
		IsDemo: true,
	}
}
