package util

import "errors"

var (
	ErrExamDateNotAfterStart = errors.New("exam date must be after start date")
	ErrInvalidDifficulty     = errors.New("difficulty must be between 1 and 5")
	ErrInvalidWeekday        = errors.New("invalid weekday name")
	ErrInvalidMaterialTag    = errors.New("invalid material tag")
	ErrStudyTimeTooShort     = errors.New("study time must be at least 1 minute")
	ErrInvalidTimeSpent      = errors.New("invalid time spent")
)
