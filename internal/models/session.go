package models

// Session is the signed-in user's profile as cached on this device
type Session struct {
	ID              int64                             `json:"id"`
	Username        string                            `json:"username"`
	Email           string                            `json:"email,omitempty"`
	Token           string                            `json:"token,omitempty"`
	Level           int                               `json:"level"`
	XP              int                               `json:"xp"`
	WordsLearned    int                               `json:"words_learned"`
	CurrentStreak   int                               `json:"current_streak"`
	BestStreak      int                               `json:"best_streak"`
	TotalTestsTaken int                               `json:"total_tests_taken"`
	ProgressData    map[Difficulty]DifficultyProgress `json:"progress_data,omitempty"`
	Settings        Settings                          `json:"settings"`
	Achievements    []string                          `json:"achievements,omitempty"`
	VirtualPet      *VirtualPet                       `json:"virtual_pet,omitempty"`
	IsDemo          bool                              `json:"isDemo"`
}

// DifficultyProgress counts learned words within one difficulty band
type DifficultyProgress struct {
	Learned int `json:"learned"`
	Total   int `json:"total"`
}

// Settings holds accessibility and sound preferences
type Settings struct {
	FontSize      string `json:"fontSize,omitempty"`
	HighContrast  bool   `json:"highContrast"`
	ReducedMotion bool   `json:"reducedMotion"`
	SoundEnabled  bool   `json:"soundEnabled"`
}

// VirtualPet is the companion shown on the dashboard
type VirtualPet struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Happiness   int      `json:"happiness"`
	Growth      int      `json:"growth"`
	Accessories []string `json:"accessories,omitempty"`
	LastFed     int64    `json:"lastFed"` // unix milliseconds
}

// Clone returns a deep copy of the session
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.ProgressData != nil {
		c.ProgressData = make(map[Difficulty]DifficultyProgress, len(s.ProgressData))
		for k, v := range s.ProgressData {
			c.ProgressData[k] = v
		}
	}
	if s.Achievements != nil {
		c.Achievements = append([]string(nil), s.Achievements...)
	}
	if s.VirtualPet != nil {
		pet := *s.VirtualPet
		if s.VirtualPet.Accessories != nil {
			pet.Accessories = append([]string(nil), s.VirtualPet.Accessories...)
		}
		c.VirtualPet = &pet
	}
	return &c
}

// ApplyProgress merges the set fields of u into the session.
// Fields left nil in u are kept.
func (s *Session) ApplyProgress(u ProgressUpdate) {
	if u.Level != nil {
		s.Level = *u.Level
	}
	if u.XP != nil {
		s.XP = *u.XP
	}
	if u.WordsLearned != nil {
		s.WordsLearned = *u.WordsLearned
	}
	if u.CurrentStreak != nil {
		s.CurrentStreak = *u.CurrentStreak
	}
	if u.BestStreak != nil {
		s.BestStreak = *u.BestStreak
	}
	if u.TotalTestsTaken != nil {
		s.TotalTestsTaken = *u.TotalTestsTaken
	}
	if u.ProgressData != nil {
		if s.ProgressData == nil {
			s.ProgressData = make(map[Difficulty]DifficultyProgress, len(u.ProgressData))
		}
		for k, v := range u.ProgressData {
			s.ProgressData[k] = v
		}
	}
	if u.Settings != nil {
		s.Settings = *u.Settings
	}
	if u.Achievements != nil {
		s.Achievements = append([]string(nil), u.Achievements...)
	}
	if u.VirtualPet != nil {
		pet := *u.VirtualPet
		s.VirtualPet = &pet
	}
}
