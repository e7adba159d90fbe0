package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Root kinds
	ErrMsgInvalidConfig      = "invalid configuration"
	ErrMsgNotFound           = "not found"
	ErrMsgInvalidInput       = "invalid input"
	ErrMsgInvariantViolation = "internal invariant violated"

	// Pack config errors
	ErrMsgUnknownConfigField   = "unknown config fields"
	ErrMsgNegativeSlots        = "slot counts must be non-negative integers"
	ErrMsgPackSizeMismatch     = "pack must contain exactly 10 cards"
	ErrMsgHoloChanceOutOfRange = "holo_upgrade_chance must be between 0.0 and 1.0"
	ErrMsgPityNotPositive      = "pity_after_packs must be positive when provided"

	// Catalog and pool errors
	ErrMsgCatalogDirNotFound = "pools directory not found"
	ErrMsgPoolNotFound       = "pool file not found"
	ErrMsgSetNotFound        = "set not found"
	ErrMsgCardNotFound       = "card not found"
	ErrMsgInvalidPool        = "invalid pool file format"
	ErrMsgEmptyPool          = "pool is empty"
	ErrMsgPoolExhausted      = "no available cards left when duplicates are disallowed"

	// Request errors
	ErrMsgMissingSetID      = "set_id must be a non-empty string"
	ErrMsgUnknownSet        = "pack_result.set_id is missing or unknown"
	ErrMsgSlotsNotList      = "pack_result.slots must be a list"
	ErrMsgInvalidSegment    = "invalid set_id/card_id path segment"
	ErrMsgPackSizeInvariant = "pack size invariant violated"

	// Storage
	ErrMsgTxClosed = "tx is closed"
)

// Root errors, one per ErrorKind.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidConfig      = errors.New(ErrMsgInvalidConfig)
	ErrNotFound           = errors.New(ErrMsgNotFound)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
	ErrInvariantViolation = errors.New(ErrMsgInvariantViolation)
)

// Specific errors. Each wraps exactly one root error.
var (
	// Configuration
	ErrUnknownConfigField   = fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgUnknownConfigField)
	ErrNegativeSlots        = fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNegativeSlots)
	ErrPackSizeMismatch     = fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgPackSizeMismatch)
	ErrHoloChanceOutOfRange = fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgHoloChanceOutOfRange)
	ErrPityNotPositive      = fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgPityNotPositive)

	// Not found
	ErrCatalogDirNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgCatalogDirNotFound)
	ErrPoolNotFound       = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgPoolNotFound)
	ErrSetNotFound        = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgSetNotFound)
	ErrCardNotFound       = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgCardNotFound)

	// Invalid input
	ErrInvalidPool    = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidPool)
	ErrEmptyPool      = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgEmptyPool)
	ErrPoolExhausted  = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgPoolExhausted)
	ErrMissingSetID   = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgMissingSetID)
	ErrUnknownSet     = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgUnknownSet)
	ErrSlotsNotList   = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgSlotsNotList)
	ErrInvalidSegment = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgInvalidSegment)

	// Internal
	ErrPackSizeInvariant = fmt.Errorf("%w: %s", ErrInvariantViolation, ErrMsgPackSizeInvariant)
)

// ErrorKind tells a caller whether a whole call was rejected and why.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindNotFound
	KindInvalidInput
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// KindOf classifies err by the root error it wraps.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidConfig):
		return KindConfiguration
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrInvariantViolation):
		return KindInternal
	default:
		return KindUnknown
	}
}
