package ports

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a message visible with increased verbosity.
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	// Error logs err with its full cause chain.
	Error(err error)
}
