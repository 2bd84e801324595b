package service

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotStarted          = errors.New("service not started")
	ErrEmptyResume         = errors.New("resume text must not be empty")
	ErrEmptyJobDescription = errors.New("job description text must not be empty")
)
