package i

// Logger is a levelled logger.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
