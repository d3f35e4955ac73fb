package constants

// OutcomeKind is the canonical terminal result for one processing attempt.
type OutcomeKind string

// Stable values (stored verbatim in the journal).
const (
	OutcomeRenamed  OutcomeKind = "RENAMED"   // renamed into the root folder
	OutcomeReviewed OutcomeKind = "REVIEWED"  // moved to the review subfolder
	OutcomeFailed   OutcomeKind = "FAILED"    // terminal failure, file left in place
)

// StatusKind is the lifecycle stage reported to the status sink.
type StatusKind string

const (
	StatusQueued     StatusKind = "QUEUED"
	StatusProcessing StatusKind = "PROCESSING"
	StatusCompleted  StatusKind = "COMPLETED"
)
