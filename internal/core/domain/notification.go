package domain

// Level categorises a notification for display.
type Level string

// Notification levels.
const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
)

// String returns the string representation.
func (l Level) String() string {
	return string(l)
}

// Notification is an outcome message emitted by the core for the view layer.
type Notification struct {
	Level   Level
	Message string
}

// Info creates an info notification.
func Info(msg string) Notification {
	return Notification{Level: LevelInfo, Message: msg}
}

// Success creates a success notification.
func Success(msg string) Notification {
	return Notification{Level: LevelSuccess, Message: msg}
}

// Danger creates a danger notification.
func Danger(msg string) Notification {
	return Notification{Level: LevelDanger, Message: msg}
}
