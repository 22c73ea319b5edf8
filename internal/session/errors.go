package session

import "fmt"

// DuplicateAnswerError indicates a second submission for a question that
// already has an answer in this session.
type DuplicateAnswerError struct {
	QuestionID string
	Index      int // position of the existing answer
}

func (e *DuplicateAnswerError) Error() string {
	return fmt.Sprintf("question %s already answered at index %d", e.QuestionID, e.Index)
}

// InvalidStateError indicates an operation invoked in a lifecycle state
// that does not permit it. These are contract violations by the caller,
// never silently ignored.
type InvalidStateError struct {
	Op     string
	Status Status
	Reason string
}

func (e *InvalidStateError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s not allowed in state %s: %s", e.Op, e.Status, e.Reason)
	}
	return fmt.Sprintf("%s not allowed in state %s", e.Op, e.Status)
}
