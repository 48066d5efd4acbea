package models

import "time"

// TestData is what a finished test submits
type TestData struct {
	TestType       string     `json:"test_type"`
	Score          int        `json:"score"`
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	Category       string     `json:"category,omitempty"`
	Difficulty     Difficulty `json:"difficulty,omitempty"`
	TimeSpent      int        `json:"time_spent"` // seconds
	WordIDs        []int64    `json:"words,omitempty"`
}

// TestResult is a submitted test. Results recorded offline carry a
// locally generated ID.
type TestResult struct {
	TestData
	ID          FlexibleID `json:"id"`
	UserID      int64      `json:"userId"`
	CompletedAt time.Time  `json:"completed_at"`
}

// TestResultReceipt is returned to callers of a test submission
type TestResultReceipt struct {
	Success bool       `json:"success"`
	Result  TestResult `json:"result"`
}
