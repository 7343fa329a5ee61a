package analyses

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type stubIdentity struct {
	userID string
	err    error
}

func (s stubIdentity) Verify(ctx context.Context, token string) (string, error) {
	return s.userID, s.err
}

type failingRepo struct{}

func (failingRepo) Insert(ctx context.Context, analysis JobAnalysis) (JobAnalysis, error) {
	return JobAnalysis{}, errors.New("connection refused")
}

func (failingRepo) GetByID(ctx context.Context, userID, analysisID string) (JobAnalysis, error) {
	return JobAnalysis{}, ErrNotFound
}

func (failingRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobAnalysis, error) {
	return nil, errors.New("connection refused")
}

func TestServiceAnalyzePersistsOneRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Identity: stubIdentity{userID: "user-1"}}

	analysis, err := svc.Analyze(context.Background(), "user-1", AnalyzeInput{
		JobInput: "wire transfer required, pay fee upfront",
		JobURL:   "https://example.com/job/1",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if analysis.ID == "" {
		t.Fatalf("expected generated id")
	}
	if analysis.CreatedAt.IsZero() {
		t.Fatalf("expected server timestamp")
	}
	if analysis.Classification != ClassificationFake {
		t.Fatalf("classification = %q, want fake", analysis.Classification)
	}
	if analysis.JobURL != "https://example.com/job/1" {
		t.Fatalf("jobUrl not stored: %q", analysis.JobURL)
	}

	stored, err := repo.ListByUser(context.Background(), "user-1", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(stored))
	}
	if stored[0].ID != analysis.ID {
		t.Fatalf("stored id %q != returned id %q", stored[0].ID, analysis.ID)
	}
}

func TestServiceAnalyzeDiscardsResultOnWriteFailure(t *testing.T) {
	svc := &Service{Repo: failingRepo{}, Identity: stubIdentity{userID: "user-1"}}

	_, err := svc.Analyze(context.Background(), "user-1", AnalyzeInput{JobInput: "easy money"})
	if err == nil {
		t.Fatalf("expected error when repo write fails")
	}
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
}

func TestServiceVerifyUser(t *testing.T) {
	tests := []struct {
		name     string
		identity IdentityProvider
		wantErr  error
	}{
		{"valid token", stubIdentity{userID: "user-1"}, nil},
		{"rejected token", stubIdentity{err: ErrUnauthorized}, ErrUnauthorized},
		{"provider failure", stubIdentity{err: fmt.Errorf("%w: timeout", ErrUpstreamAuth)}, ErrUpstreamAuth},
		{"empty subject", stubIdentity{userID: "  "}, ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &Service{Repo: NewMemoryRepo(), Identity: tt.identity}
			userID, err := svc.VerifyUser(context.Background(), "token")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("VerifyUser: %v", err)
				}
				if userID != "user-1" {
					t.Fatalf("userID = %q", userID)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestServiceVerifyUserWithoutProvider(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo()}
	_, err := svc.VerifyUser(context.Background(), "token")
	if !errors.Is(err, ErrUpstreamAuth) {
		t.Fatalf("expected ErrUpstreamAuth, got %v", err)
	}
}

func TestServiceGetIsOwnerScoped(t *testing.T) {
	repo := NewMemoryRepo()
	svc := &Service{Repo: repo, Identity: stubIdentity{userID: "user-1"}}

	analysis, err := svc.Analyze(context.Background(), "user-1", AnalyzeInput{JobInput: "team"})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if _, err := svc.Get(context.Background(), "user-2", analysis.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	got, err := svc.Get(context.Background(), "user-1", analysis.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != analysis.ID {
		t.Fatalf("got id %q, want %q", got.ID, analysis.ID)
	}
}
