package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric this service exports
const Namespace = "unlimited_inventories"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Snapshot metric names
const (
	MetricNameSnapshotSaves     = "snapshot_saves_total"
	MetricNameSnapshotLoads     = "snapshot_loads_total"
	MetricNameSnapshotDeletes   = "snapshot_deletes_total"
	MetricNameSnapshotsCached   = "snapshots_cached"
	MetricNamePersistenceErrors = "persistence_errors_total"
	MetricNameCommandsExecuted  = "commands_executed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Snapshot metric help text
const (
	HelpTextSnapshotSaves     = "Total number of snapshot saves by outcome"
	HelpTextSnapshotLoads     = "Total number of snapshot loads by outcome"
	HelpTextSnapshotDeletes   = "Total number of snapshot deletes by outcome"
	HelpTextSnapshotsCached   = "Number of named snapshots held in the cache"
	HelpTextPersistenceErrors = "Total number of failed persistence statements by operation"
	HelpTextCommandsExecuted  = "Total number of inventory commands by subcommand"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelOutcome    = "outcome"
	LabelOperation  = "operation"
	LabelSubcommand = "subcommand"
)

// Outcome label values
const (
	OutcomeCreated  = "created"
	OutcomeUpdated  = "updated"
	OutcomeSuccess  = "success"
	OutcomeLimited  = "limited"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Operation label values
const (
	OperationLoadAll = "load_all"
	OperationInsert  = "insert"
	OperationUpdate  = "update"
	OperationDelete  = "delete"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
