package types

// BulkFailure reports a single target's failure within a bulk operation.
type BulkFailure struct {
	TargetID  uint64    `json:"targetId"`
	ErrorKind ErrorKind `json:"errorKind"`
}

// BulkResult reports the per-item outcome of a bulk operation. Counts are
// always exact; failures carry the specific error kind per target rather than
// an aggregate boolean.
type BulkResult struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Failures     []BulkFailure `json:"failures"`
}
