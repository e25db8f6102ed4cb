package constants

// Pagination limits for the inspector API
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// InsertChunkSize is the number of rows per INSERT statement when a stage
// batch is flushed to the database.
const InsertChunkSize = 200

// MaxGeneratedNames caps how many task names a single content-service call
// may request.
const MaxGeneratedNames = 50
