package notify

import "github.com/mehmetadiyaman/DiyetimTakip-sub000/logger"

// Notifier delivers short out-of-band messages to a client. Anything that
// wants to message clients receives a Notifier explicitly; there is no
// package-level default to reach for.
type Notifier interface {
	Send(recipient, text string) error
}

// LogNotifier writes messages to the service log. Stands in wherever no
// real messaging channel is configured.
type LogNotifier struct{}

func NewLogNotifier() LogNotifier { return LogNotifier{} }

func (LogNotifier) Send(recipient, text string) error {
	logger.Info("notification", "recipient", recipient, "text", text)
	return nil
}
