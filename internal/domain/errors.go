package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInsufficientBalance         = errors.New("insufficient wallet balance")
	ErrInsufficientPlatformBalance = errors.New("insufficient platform balance")
	ErrOverCollection              = errors.New("collection exceeds saved balance")
	ErrInvalidStatus               = errors.New("invalid transaction status")
	ErrInvalidAmount               = errors.New("invalid amount")
)
