package errorvalues

import "errors"

var (
	ErrHabitNotFound       = errors.New("habit doesn't exist")
	ErrHabitExists         = errors.New("user already has such habit")
	ErrTaskNotFound        = errors.New("task doesn't exist")
	ErrWrongOwner          = errors.New("resource belongs to different user")
	ErrCheckExist          = errors.New("habit already checked on this date")
	ErrCheckNotFound       = errors.New("check doesn't exist")
	ErrCheckDateNotAllowed = errors.New("checking future dates is not allowed")
)
