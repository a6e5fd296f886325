package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrProvider  = "provider"
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

// Outcome values for roster mutation metrics.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
)
