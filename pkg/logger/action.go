package logger

// ActionLogger records audit actions. Callers do not depend on the
// returned string.
type ActionLogger interface {
	LogAction(description string) string
}

// ActionLoggerFunc adapts a plain function to ActionLogger.
type ActionLoggerFunc func(description string) string

func (f ActionLoggerFunc) LogAction(description string) string { return f(description) }

// Actions is the ActionLogger backed by the base logger.
var Actions ActionLogger = ActionLoggerFunc(LogAction)

// LogAction writes an audit line at INFO level.
func LogAction(description string) string {
	L.Info("action", "description", description)
	return "Action: " + description
}
