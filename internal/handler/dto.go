package handler

import (
	"github.com/msomdec/youth-portal/internal/domain"
)

const dateFormat = "2006-01-02"

// QuizDTO is the JSON representation of a catalog entry. Correct answers
// are never exposed.
type QuizDTO struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Organizer      string        `json:"organizer"`
	Image          string        `json:"image"`
	StartDate      string        `json:"startDate"`
	EndDate        string        `json:"endDate"`
	ExpiryDate     string        `json:"expiryDate"`
	TotalQuestions int           `json:"totalQuestions"`
	Duration       string        `json:"duration"`
	AttemptCount   int           `json:"attemptCount"`
	TotalScore     int           `json:"totalScore"`
	PassingScore   int           `json:"passingScore"`
	Status         string        `json:"status"`
	Attempted      bool          `json:"attempted"`
	Questions      []QuestionDTO `json:"questions"`
}

// QuestionDTO is a question without its answer.
type QuestionDTO struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

func toQuizDTO(q domain.Quiz, attempted bool) QuizDTO {
	questions := make([]QuestionDTO, len(q.Questions))
	for i, question := range q.Questions {
		questions[i] = QuestionDTO{Prompt: question.Prompt, Options: question.Options}
	}
	return QuizDTO{
		ID:             q.ID,
		Title:          q.Title,
		Organizer:      q.Organizer,
		Image:          q.Image,
		StartDate:      q.StartDate.Format(dateFormat),
		EndDate:        q.EndDate.Format(dateFormat),
		ExpiryDate:     q.ExpiryDate.Format(dateFormat),
		TotalQuestions: q.TotalQuestions(),
		Duration:       q.Duration,
		AttemptCount:   q.AttemptCount,
		TotalScore:     q.TotalScore(),
		PassingScore:   q.PassingScore,
		Status:         string(q.Status),
		Attempted:      attempted,
		Questions:      questions,
	}
}

func toQuizDTOs(quizzes []domain.Quiz, attempted map[string]bool) []QuizDTO {
	dtos := make([]QuizDTO, len(quizzes))
	for i, q := range quizzes {
		dtos[i] = toQuizDTO(q, attempted[q.ID])
	}
	return dtos
}

// SessionDTO reports whether the client is logged in and as whom. User
// uses the stored record's own JSON shape.
type SessionDTO struct {
	LoggedIn bool         `json:"loggedIn"`
	User     *domain.User `json:"user"`
}
