package analyses

import "context"

// Repo defines persistence operations for job analyses. Insert returns the
// stored record with its generated id and server timestamp filled in.
type Repo interface {
	Insert(ctx context.Context, analysis JobAnalysis) (JobAnalysis, error)
	GetByID(ctx context.Context, userID, analysisID string) (JobAnalysis, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobAnalysis, error)
}
