package tracker

import (
	"errors"
	"fmt"
)

// Sentinel errors used by the tracker usecases.
var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrMemberAlreadyExists  = errors.New("member already exists")
)

// EntityError は sentinel error に対象の名前を添える typed error。
// errors.Is で sentinel を、errors.As で名前を取り出せる。
type EntityError struct {
	Entity string // project, member, task
	Name   string
	cause  error
}

func newEntityError(entity, name string, cause error) *EntityError {
	return &EntityError{Entity: entity, Name: name, cause: cause}
}

// Error は error インターフェースを満たす。
func (e *EntityError) Error() string {
	return fmt.Sprintf("%v: %q", e.cause, e.Name)
}

// Unwrap は cause を返す（errors.Unwrap 対応）。
func (e *EntityError) Unwrap() error {
	return e.cause
}
