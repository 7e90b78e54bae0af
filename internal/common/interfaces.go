package common

type Observer interface {
	Update(event NotificationEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event NotificationEvent)
	NotifyAsync(event NotificationEvent)
}

// Notifier is the injected notification collaborator. Core components
// depend only on this interface, never on a process-wide emitter.
type Notifier interface {
	// NotifyUser pushes a plain {message, receiverId} event.
	NotifyUser(receiverID, message string)
	// NotifyPublish pushes a publish-outcome event with its platform and
	// post attached.
	NotifyPublish(receiverID, message string, platform Platform, postID string, success bool)
}
