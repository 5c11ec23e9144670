package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/youth-portal/internal/domain"
)

// QuizAttemptRepository implements domain.QuizAttemptRepository using SQLite.
type QuizAttemptRepository struct {
	db *sql.DB
}

// NewQuizAttemptRepository creates a new SQLite-backed QuizAttemptRepository.
func NewQuizAttemptRepository(db *DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{db: db.SqlDB}
}

func (r *QuizAttemptRepository) Create(ctx context.Context, a *domain.QuizAttempt) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (quiz_id, user_id, language, score, total_score, passed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.QuizID, a.UserID, a.Language, a.Score, a.TotalScore, a.Passed, now,
	)
	if err != nil {
		return fmt.Errorf("insert quiz attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	a.ID = id
	a.CreatedAt = now
	return nil
}

func (r *QuizAttemptRepository) GetByID(ctx context.Context, id int64) (*domain.QuizAttempt, error) {
	a := &domain.QuizAttempt{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, quiz_id, user_id, language, score, total_score, passed, created_at
		 FROM quiz_attempts WHERE id = ?`, id,
	).Scan(&a.ID, &a.QuizID, &a.UserID, &a.Language, &a.Score, &a.TotalScore, &a.Passed, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query quiz attempt by id: %w", err)
	}
	return a, nil
}

func (r *QuizAttemptRepository) ListByUser(ctx context.Context, userID string) ([]domain.QuizAttempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, quiz_id, user_id, language, score, total_score, passed, created_at
		 FROM quiz_attempts WHERE user_id = ? ORDER BY created_at, id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts by user: %w", err)
	}
	defer rows.Close()

	var attempts []domain.QuizAttempt
	for rows.Next() {
		var a domain.QuizAttempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.UserID, &a.Language, &a.Score, &a.TotalScore, &a.Passed, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
