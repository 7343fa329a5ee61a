package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoInsertReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO job_analyses").
		WithArgs(
			"user-1",
			"wire transfer required",
			nil,
			ClassificationFake,
			30,
			[]byte(`["wire transfer"]`),
			"explanation text",
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).
			AddRow("a2f9c2de-0000-0000-0000-000000000001", createdAt))

	stored, err := repo.Insert(context.Background(), JobAnalysis{
		UserID:           "user-1",
		JobDescription:   "wire transfer required",
		Classification:   ClassificationFake,
		ConfidenceScore:  30,
		DetectedKeywords: []string{"wire transfer"},
		Explanation:      "explanation text",
	})
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if stored.ID != "a2f9c2de-0000-0000-0000-000000000001" {
		t.Fatalf("id = %q", stored.ID)
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt = %v, want %v", stored.CreatedAt, createdAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoInsertPropagatesWriteError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("INSERT INTO job_analyses").
		WillReturnError(errors.New("connection reset"))

	if _, err := repo.Insert(context.Background(), JobAnalysis{UserID: "user-1"}); err == nil {
		t.Fatalf("expected insert error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScopesToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id, job_description").
		WithArgs("analysis-1", "user-2").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "job_description", "job_url", "classification",
			"confidence_score", "detected_keywords", "explanation", "created_at",
		}))

	if _, err := repo.GetByID(context.Background(), "user-2", "analysis-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "job_description", "job_url", "classification",
		"confidence_score", "detected_keywords", "explanation", "created_at",
	}).
		AddRow("id-2", "user-1", "newer posting", nil, ClassificationLegitimate, 0, []byte(`[]`), "text", now).
		AddRow("id-1", "user-1", "older posting", "https://example.com", ClassificationFake, 60, []byte(`["wire transfer","pay fee"]`), "text", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id, job_description").
		WithArgs("user-1", 20, 0).
		WillReturnRows(rows)

	listed, err := repo.ListByUser(context.Background(), "user-1", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(listed))
	}
	if listed[0].ID != "id-2" {
		t.Fatalf("expected newest first, got %q", listed[0].ID)
	}
	if listed[1].JobURL != "https://example.com" {
		t.Fatalf("jobUrl = %q", listed[1].JobURL)
	}
	if len(listed[1].DetectedKeywords) != 2 || listed[1].DetectedKeywords[0] != "wire transfer" {
		t.Fatalf("keywords = %v", listed[1].DetectedKeywords)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
