package session

import "errors"

// Transition precondition violations. Callers treat these as no-ops: the
// state is unchanged whenever a transition returns one of them.
var (
	ErrEmptyTopic          = errors.New("topic must not be empty")
	ErrRequestInFlight     = errors.New("a lesson request is already in flight")
	ErrNoCurrentRequest    = errors.New("no lesson request to retry")
	ErrNoLesson            = errors.New("no lesson is loaded")
	ErrInvalidSection      = errors.New("section index out of range")
	ErrElaborationInFlight = errors.New("an elaboration request is already in flight")
	ErrAlreadyElaborated   = errors.New("section already has an elaboration")
	ErrQuizSubmitted       = errors.New("quiz already submitted")
	ErrQuizIncomplete      = errors.New("all questions must be answered before submitting")
	ErrInvalidAnswer       = errors.New("answer index out of range")
	ErrQuizNotPassed       = errors.New("quiz has not been passed")
)
