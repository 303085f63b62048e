package stores

import "time"

// RunRecord is one persisted suite run.
type RunRecord struct {
	ID          string    `json:"id"`
	SuiteName   string    `json:"suite_name"`
	PlanPath    string    `json:"plan_path"`
	Checks      int       `json:"checks"`
	Violations  int       `json:"violations"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ViolationRecord is one persisted violation of a run.
type ViolationRecord struct {
	ID        int64     `json:"id"`
	RunID     string    `json:"run_id"`
	CheckName string    `json:"check_name"`
	Address   string    `json:"address"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
