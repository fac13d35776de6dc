// internal/ws/notifier.go
package ws

import "time"

// Notification is one transient UI event (a toast). Every mutating
// catalog operation and every auth transition emits one.
type Notification struct {
	Level   string    `json:"level"` // success or error
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is the side-effect surface the services emit toward.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Nop discards notifications. Used in tests.
type Nop struct{}

func (Nop) Success(string) {}
func (Nop) Failure(string) {}
