package suggestionqueue

// CounterAuditJob recomputes every suggestion's vote counters from its vote rows.
type CounterAuditJob struct {
	// Reason is recorded in the job args for operators reading river_job.
	Reason string `json:"reason"`
}

// Kind returns the job type identifier for River
func (CounterAuditJob) Kind() string { return "suggestion_counter_audit" }
