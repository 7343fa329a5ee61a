package analyses

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo stores analyses in memory and is safe for concurrent use. It
// backs dev environments without a DATABASE_URL.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]JobAnalysis
	byUser map[string][]JobAnalysis
}

var _ Repo = (*MemoryRepo)(nil)

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]JobAnalysis),
		byUser: make(map[string][]JobAnalysis),
	}
}

// Insert stores the analysis, assigning an id and timestamp.
func (r *MemoryRepo) Insert(ctx context.Context, analysis JobAnalysis) (JobAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return JobAnalysis{}, err
	}
	analysis.ID = uuid.NewString()
	analysis.CreatedAt = time.Now().UTC()
	if analysis.DetectedKeywords == nil {
		analysis.DetectedKeywords = []string{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[analysis.ID] = analysis
	r.byUser[analysis.UserID] = append(r.byUser[analysis.UserID], analysis)
	return analysis, nil
}

// GetByID returns an analysis by its ID, scoped to the owning user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, analysisID string) (JobAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return JobAnalysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	analysis, ok := r.byID[analysisID]
	if !ok || analysis.UserID != userID {
		return JobAnalysis{}, ErrNotFound
	}
	return analysis, nil
}

// ListByUser returns analyses for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]JobAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userAnalyses := r.byUser[userID]
	r.mu.RUnlock()

	if len(userAnalyses) == 0 || offset >= len(userAnalyses) {
		return []JobAnalysis{}, nil
	}

	analyses := make([]JobAnalysis, len(userAnalyses))
	copy(analyses, userAnalyses)
	sort.Slice(analyses, func(i, j int) bool {
		return analyses[i].CreatedAt.After(analyses[j].CreatedAt)
	})

	end := len(analyses)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return analyses[offset:end], nil
}
