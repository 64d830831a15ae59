package domain

import "errors"

var (
	// ErrUnknownColumn is returned when a condition or table references a column
	// that is not part of the proposal table
	ErrUnknownColumn = errors.New("unknown proposal column")

	// ErrInvalidCondition is returned when a condition row cannot be evaluated
	ErrInvalidCondition = errors.New("invalid override condition")

	// ErrEmptyCatalog is returned when no catalog record survives filtering
	ErrEmptyCatalog = errors.New("reference catalog is empty after filtering")

	// ErrMissingColumn is returned when an input table lacks a required header
	ErrMissingColumn = errors.New("required column missing from input table")

	// ErrUnsupportedFormat is returned for file extensions we cannot read or write
	ErrUnsupportedFormat = errors.New("unsupported file format")
)
