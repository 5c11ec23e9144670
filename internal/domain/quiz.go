package domain

import (
	"context"
	"time"
)

// QuizStatus is the static status tag shown on a quiz card.
type QuizStatus string

const (
	QuizOngoing  QuizStatus = "ongoing"
	QuizUpcoming QuizStatus = "upcoming"
	QuizPast     QuizStatus = "past"
)

// QuizTab selects which quizzes the catalog shows.
type QuizTab string

const (
	TabOngoing  QuizTab = "ongoing"
	TabUpcoming QuizTab = "upcoming"
	TabPast     QuizTab = "past"
	TabMyQuiz   QuizTab = "my-quiz"
	TabAll      QuizTab = "all"
)

// QuizTabs lists the tabs in display order.
var QuizTabs = []QuizTab{TabOngoing, TabUpcoming, TabPast, TabMyQuiz, TabAll}

// Label returns the human-readable tab caption.
func (t QuizTab) Label() string {
	switch t {
	case TabOngoing:
		return "Ongoing"
	case TabUpcoming:
		return "Upcoming"
	case TabPast:
		return "Past"
	case TabMyQuiz:
		return "My Quiz"
	case TabAll:
		return "All"
	}
	return string(t)
}

// Question is a single multiple-choice question.
type Question struct {
	Prompt  string
	Options []string
	Correct int // index into Options
}

// Quiz is a read-only catalog entry.
type Quiz struct {
	ID           string
	Title        string
	Organizer    string
	Image        string
	StartDate    time.Time
	EndDate      time.Time
	ExpiryDate   time.Time
	Duration     string // "HH:MM"
	AttemptCount int    // attempts allowed per user
	PassingScore int
	Status       QuizStatus
	Questions    []Question
}

// TotalQuestions is the number of questions in the quiz.
func (q Quiz) TotalQuestions() int { return len(q.Questions) }

// TotalScore is the maximum achievable score; every question is worth one.
func (q Quiz) TotalScore() int { return len(q.Questions) }

// QuizAttempt records one submission of a quiz by a user.
type QuizAttempt struct {
	ID         int64
	QuizID     string
	UserID     string
	Language   string
	Score      int
	TotalScore int
	Passed     bool
	CreatedAt  time.Time
}

// QuizAttemptRepository persists quiz attempts.
type QuizAttemptRepository interface {
	Create(ctx context.Context, attempt *QuizAttempt) error
	GetByID(ctx context.Context, id int64) (*QuizAttempt, error)
	ListByUser(ctx context.Context, userID string) ([]QuizAttempt, error)
}
