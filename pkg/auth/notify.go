package auth

// Severity classifies a user-visible notification.
type Severity string

const (
	// SeveritySuccess is a confirmation toast.
	SeveritySuccess Severity = "success"
	// SeverityError is a failure toast.
	SeverityError Severity = "error"
	// SeverityInfo is a neutral toast.
	SeverityInfo Severity = "info"
)

// Notifier is the boundary through which the manager surfaces
// outcomes to the user. The web UI backs it with a flash queue;
// presentation is not this package's concern.
type Notifier interface {
	Notify(severity Severity, message string)
}

// NopNotifier discards notifications.
type NopNotifier struct{}

// Notify discards the notification.
func (NopNotifier) Notify(Severity, string) {}
