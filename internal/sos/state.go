package sos

import "errors"

// State - состояние экрана SOS
type State string

const (
	StateInactive State = "inactive"
	StateSwipe    State = "swipe"
	StateSending  State = "sending"
	StateSent     State = "sent"
	StateWaiting  State = "waiting"
)

var (
	ErrInvalidTransition = errors.New("sos: transition not allowed in current state")
	ErrNotDragging       = errors.New("sos: no active drag")
	ErrUnknownPointer    = errors.New("sos: unknown pointer event kind")
)

// reportable - состояния, в которых доступна запись экстренного обращения
func (s State) reportable() bool {
	return s == StateSent || s == StateWaiting
}
