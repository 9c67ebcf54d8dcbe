package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	// ErrTransient marks failures that left nothing applied and are safe to retry.
	ErrTransient = errors.New("transient store error")
)

var (
	ErrInvalidTransition = fmt.Errorf("%w: invalid status transition", ErrValidation)
	ErrNotEditable       = fmt.Errorf("%w: commission is not editable", ErrValidation)
	ErrNegativeBalance   = fmt.Errorf("%w: negative balance", ErrValidation)
	ErrAlreadyExists     = fmt.Errorf("%w: already exists", ErrValidation)
	ErrConflict          = fmt.Errorf("%w: concurrent update", ErrTransient)
)
