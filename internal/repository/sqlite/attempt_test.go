package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/repository/sqlite"
)

func TestQuizAttemptRepository_CreateAndGet(t *testing.T) {
	repo := sqlite.NewQuizAttemptRepository(newTestDB(t))
	ctx := context.Background()

	a := &domain.QuizAttempt{QuizID: "1", UserID: "u-1", Language: "english", Score: 4, TotalScore: 5, Passed: true}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("expected attempt ID to be set after create")
	}

	found, err := repo.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.QuizID != "1" || found.UserID != "u-1" || found.Score != 4 || !found.Passed {
		t.Fatalf("unexpected attempt: %+v", found)
	}
}

func TestQuizAttemptRepository_GetByID_NotFound(t *testing.T) {
	repo := sqlite.NewQuizAttemptRepository(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 4242)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuizAttemptRepository_ListByUser(t *testing.T) {
	repo := sqlite.NewQuizAttemptRepository(newTestDB(t))
	ctx := context.Background()

	for _, a := range []*domain.QuizAttempt{
		{QuizID: "1", UserID: "u-1", Language: "english", Score: 1, TotalScore: 5},
		{QuizID: "2", UserID: "u-2", Language: "english", Score: 2, TotalScore: 5},
		{QuizID: "2", UserID: "u-1", Language: "hindi", Score: 3, TotalScore: 5},
	} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	attempts, err := repo.ListByUser(ctx, "u-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].QuizID != "1" || attempts[1].QuizID != "2" {
		t.Fatalf("expected attempts in insertion order, got %q then %q", attempts[0].QuizID, attempts[1].QuizID)
	}
}
