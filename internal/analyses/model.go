package analyses

import "time"

// JobAnalysis is the persisted record of one classification. Records are
// created exactly once per successful analysis, never mutated, and are only
// readable by their owning user.
type JobAnalysis struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	JobDescription   string    `json:"jobDescription"`
	JobURL           string    `json:"jobUrl,omitempty"`
	Classification   string    `json:"classification"`
	ConfidenceScore  int       `json:"confidenceScore"`
	DetectedKeywords []string  `json:"detectedKeywords"`
	Explanation      string    `json:"explanation"`
	CreatedAt        time.Time `json:"createdAt"`
}
