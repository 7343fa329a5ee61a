package analyses

import (
	"context"
	"fmt"
	"strings"
)

// IdentityProvider resolves a bearer token into a user ID. Implementations
// should return ErrUnauthorized for rejected tokens and wrap ErrUpstreamAuth
// when the provider itself cannot be reached.
type IdentityProvider interface {
	Verify(ctx context.Context, bearerToken string) (string, error)
}

// AnalyzeInput is the parsed request body for one analysis.
type AnalyzeInput struct {
	JobInput string
	JobURL   string
}

// Service orchestrates classification and persistence.
type Service struct {
	Repo     Repo
	Identity IdentityProvider
}

// VerifyUser resolves the bearer token to a user ID via the identity provider.
func (s *Service) VerifyUser(ctx context.Context, bearerToken string) (string, error) {
	if s.Identity == nil {
		return "", fmt.Errorf("%w: no identity provider configured", ErrUpstreamAuth)
	}
	userID, err := s.Identity.Verify(ctx, bearerToken)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(userID) == "" {
		return "", ErrUnauthorized
	}
	return userID, nil
}

// Analyze classifies the input and persists exactly one record for the user.
// The classification is discarded if the write fails: no result is returned
// without a stored record, since the analysis id comes from persistence.
func (s *Service) Analyze(ctx context.Context, userID string, input AnalyzeInput) (JobAnalysis, error) {
	verdict := Classify(input.JobInput)

	record := JobAnalysis{
		UserID:           userID,
		JobDescription:   input.JobInput,
		JobURL:           input.JobURL,
		Classification:   verdict.Classification,
		ConfidenceScore:  verdict.Confidence,
		DetectedKeywords: verdict.Keywords,
		Explanation:      verdict.Explanation,
	}

	stored, err := s.Repo.Insert(ctx, record)
	if err != nil {
		return JobAnalysis{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return stored, nil
}

// Get fetches a single analysis owned by the user.
func (s *Service) Get(ctx context.Context, userID, analysisID string) (JobAnalysis, error) {
	return s.Repo.GetByID(ctx, userID, analysisID)
}

// List returns the user's analyses, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]JobAnalysis, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
