package ports

// Logger reports run progress and problems to the user. Test output itself
// goes through the Renderer, not the Logger.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	// Error prints err together with its cause chain.
	Error(err error)
}
