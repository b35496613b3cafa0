package worklog

import "errors"

var (
	ErrWorkLogNotFound     = errors.New("work log not found")
	ErrWorkLogAccessDenied = errors.New("you cannot modify this work log")
	ErrInvalidWorkLogID    = errors.New("invalid work log id")
)
