package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/service"
)

func newTestQuizService(t *testing.T) *service.QuizService {
	t.Helper()
	return service.NewQuizService(service.Catalog(), newTestDB(t).QuizAttempts())
}

func TestParseTab(t *testing.T) {
	tab, err := service.ParseTab("")
	if err != nil || tab != domain.TabOngoing {
		t.Fatalf("expected default ongoing tab, got %q (err %v)", tab, err)
	}
	tab, err = service.ParseTab("my-quiz")
	if err != nil || tab != domain.TabMyQuiz {
		t.Fatalf("expected my-quiz tab, got %q (err %v)", tab, err)
	}
	if _, err := service.ParseTab("archived"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestQuizService_Filter(t *testing.T) {
	svc := newTestQuizService(t)

	tests := []struct {
		name    string
		tab     domain.QuizTab
		query   string
		wantIDs []string
	}{
		{"ongoing", domain.TabOngoing, "", []string{"1", "2"}},
		{"past is empty", domain.TabPast, "", nil},
		{"upcoming is empty", domain.TabUpcoming, "", nil},
		{"all", domain.TabAll, "", []string{"1", "2"}},
		{"search ignores case", domain.TabOngoing, "telangana", []string{"1", "2"}},
		{"search narrows", domain.TabAll, "HERITAGE", []string{"2"}},
		{"search no match", domain.TabAll, "chess", nil},
		{"my quiz shows everything", domain.TabMyQuiz, "", []string{"1", "2"}},
		{"my quiz search", domain.TabMyQuiz, "heritage", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(tt.tab, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d quizzes, got %d", len(tt.wantIDs), len(got))
			}
			for i, q := range got {
				if q.ID != tt.wantIDs[i] {
					t.Fatalf("expected quiz %s at %d, got %s", tt.wantIDs[i], i, q.ID)
				}
			}
		})
	}
}

func TestQuizService_Get(t *testing.T) {
	svc := newTestQuizService(t)

	q, err := svc.Get("1")
	if err != nil {
		t.Fatalf("get quiz: %v", err)
	}
	if q.Title != "Telangana State Youth Leadership Quiz 2025" {
		t.Fatalf("unexpected title %q", q.Title)
	}
	if q.TotalQuestions() != len(q.Questions) || q.TotalScore() != len(q.Questions) {
		t.Fatalf("expected totals to match %d questions", len(q.Questions))
	}

	if _, err := svc.Get("99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func answersFor(q *domain.Quiz, correct int) []int {
	answers := make([]int, len(q.Questions))
	for i, question := range q.Questions {
		if i < correct {
			answers[i] = question.Correct
		} else {
			answers[i] = -1
		}
	}
	return answers
}

func TestQuizService_Submit(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()
	q, _ := svc.Get("2")

	failed, err := svc.Submit(ctx, "user-1", "2", "english", answersFor(q, q.PassingScore-1))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if failed.Passed || failed.Score != q.PassingScore-1 {
		t.Fatalf("expected failing score %d, got %d (passed %v)", q.PassingScore-1, failed.Score, failed.Passed)
	}
	if failed.TotalScore != q.TotalScore() {
		t.Fatalf("expected total score %d, got %d", q.TotalScore(), failed.TotalScore)
	}

	passed, err := svc.Submit(ctx, "user-1", "2", "telugu", answersFor(q, q.PassingScore))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !passed.Passed {
		t.Fatal("expected attempt at passing score to pass")
	}
	if passed.ID == failed.ID {
		t.Fatal("expected distinct attempt IDs")
	}
}

func TestQuizService_SubmitRejects(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()

	if _, err := svc.Submit(ctx, "", "1", "english", nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Submit(ctx, "u", "99", "english", nil); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Submit(ctx, "u", "1", "klingon", nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for language, got %v", err)
	}
	if _, err := svc.Submit(ctx, "u", "1", "english", make([]int, 50)); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for answers, got %v", err)
	}
}

func TestQuizService_AttemptOwnershipAndCertificate(t *testing.T) {
	svc := newTestQuizService(t)
	ctx := context.Background()
	q, _ := svc.Get("1")

	passed, _ := svc.Submit(ctx, "owner", "1", "english", answersFor(q, len(q.Questions)))
	failed, _ := svc.Submit(ctx, "owner", "1", "english", nil)

	if _, err := svc.GetAttempt(ctx, "owner", passed.ID); err != nil {
		t.Fatalf("owner get attempt: %v", err)
	}
	if _, err := svc.GetAttempt(ctx, "intruder", passed.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}

	attempt, quiz, err := svc.Certificate(ctx, "owner", passed.ID)
	if err != nil {
		t.Fatalf("certificate: %v", err)
	}
	if attempt.ID != passed.ID || quiz.ID != "1" {
		t.Fatalf("unexpected certificate for attempt %d quiz %s", attempt.ID, quiz.ID)
	}
	if _, _, err := svc.Certificate(ctx, "owner", failed.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for failed attempt, got %v", err)
	}

	ids, err := svc.AttemptedQuizIDs(ctx, "owner")
	if err != nil {
		t.Fatalf("attempted ids: %v", err)
	}
	if !ids["1"] || ids["2"] {
		t.Fatalf("expected only quiz 1 attempted, got %v", ids)
	}

	empty, _ := svc.AttemptedQuizIDs(ctx, "")
	if len(empty) != 0 {
		t.Fatalf("expected no attempts for empty user, got %v", empty)
	}
}
