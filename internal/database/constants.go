package database

// DefaultMinConnections is the pool floor. Keeping a couple of warm
// connections avoids cold-start latency on the first requests after a quiet
// period.
const DefaultMinConnections = 2

// Error messages for pool construction
const (
	ErrMsgFailedToParseConnString = "invalid database connection string"
	ErrMsgFailedToCreatePool      = "could not create connection pool"
	ErrMsgFailedToPingDatabase    = "database did not answer ping"
)

const LogMsgSuccessfullyConnectedToDatabase = "Connected to PostgreSQL"
