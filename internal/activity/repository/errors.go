package repository

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrSheetNotFound = errors.New("sheet not found")
	ErrFailedToRead  = errors.New("failed to read range")
	ErrFailedToWrite = errors.New("failed to write cell")
)
