package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/msomdec/youth-portal/internal/domain"
)

// QuizService serves the quiz catalog and scores submissions.
type QuizService struct {
	quizzes  []domain.Quiz
	attempts domain.QuizAttemptRepository
}

// NewQuizService creates a QuizService over the given catalog.
func NewQuizService(quizzes []domain.Quiz, attempts domain.QuizAttemptRepository) *QuizService {
	return &QuizService{quizzes: quizzes, attempts: attempts}
}

// ParseTab maps a query value to a tab. Empty selects the ongoing tab.
func ParseTab(s string) (domain.QuizTab, error) {
	if s == "" {
		return domain.TabOngoing, nil
	}
	tab := domain.QuizTab(s)
	if !slices.Contains(domain.QuizTabs, tab) {
		return "", fmt.Errorf("%w: unknown tab %q", domain.ErrInvalidInput, s)
	}
	return tab, nil
}

// Filter returns the quizzes on tab whose title contains query, ignoring
// case. The my-quiz tab lets every quiz through, like all. Catalog order is
// preserved.
func (s *QuizService) Filter(tab domain.QuizTab, query string) []domain.Quiz {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []domain.Quiz{}
	for _, q := range s.quizzes {
		switch tab {
		case domain.TabAll, domain.TabMyQuiz:
		default:
			if string(q.Status) != string(tab) {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(q.Title), query) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Get returns a quiz by ID.
func (s *QuizService) Get(id string) (*domain.Quiz, error) {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			q := s.quizzes[i]
			return &q, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Submit scores answers against the quiz and records the attempt. answers
// holds one option index per question; a negative or missing entry counts
// as unanswered.
func (s *QuizService) Submit(ctx context.Context, userID, quizID, language string, answers []int) (*domain.QuizAttempt, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	quiz, err := s.Get(quizID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(QuizLanguages, language) {
		return nil, fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, language)
	}
	if len(answers) > len(quiz.Questions) {
		return nil, fmt.Errorf("%w: %d answers for %d questions", domain.ErrInvalidInput, len(answers), len(quiz.Questions))
	}

	score := 0
	for i, a := range answers {
		if a >= 0 && a == quiz.Questions[i].Correct {
			score++
		}
	}

	attempt := &domain.QuizAttempt{
		QuizID:     quiz.ID,
		UserID:     userID,
		Language:   language,
		Score:      score,
		TotalScore: quiz.TotalScore(),
		Passed:     score >= quiz.PassingScore,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	return attempt, nil
}

// GetAttempt returns an attempt owned by userID. Another user's attempt is
// reported as not found.
func (s *QuizService) GetAttempt(ctx context.Context, userID string, id int64) (*domain.QuizAttempt, error) {
	attempt, err := s.attempts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if userID == "" || attempt.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return attempt, nil
}

// Certificate returns a passed attempt owned by userID and its quiz.
func (s *QuizService) Certificate(ctx context.Context, userID string, id int64) (*domain.QuizAttempt, *domain.Quiz, error) {
	attempt, err := s.GetAttempt(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if !attempt.Passed {
		return nil, nil, fmt.Errorf("%w: attempt %d did not pass", domain.ErrNotFound, id)
	}
	quiz, err := s.Get(attempt.QuizID)
	if err != nil {
		return nil, nil, err
	}
	return attempt, quiz, nil
}

// AttemptedQuizIDs returns the set of quizzes userID has submitted. An empty
// user has attempted nothing.
func (s *QuizService) AttemptedQuizIDs(ctx context.Context, userID string) (map[string]bool, error) {
	ids := map[string]bool{}
	if userID == "" {
		return ids, nil
	}
	attempts, err := s.attempts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	for _, a := range attempts {
		ids[a.QuizID] = true
	}
	return ids, nil
}
