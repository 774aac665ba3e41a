package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgIconNotFound    = "icon not found"
	ErrMsgDuplicateIcon   = "duplicate icon id"
	ErrMsgEmptyCommonTier = "catalog has no common icons"

	// Recipe/Crafting errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Reward errors
	ErrMsgRewardNotFound = "reward not found"

	// Mini-game errors
	ErrMsgDailyLimitReached = "daily play limit reached"
	ErrMsgGameNotFound      = "game not found"
	ErrMsgGameNotRunning    = "game is not running"
	ErrMsgUnknownGameKind   = "unknown game kind"

	// Store errors
	ErrMsgNotFound    = "not found"
	ErrMsgStoreFailed = "store unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrIconNotFound    = errors.New(ErrMsgIconNotFound)
	ErrDuplicateIcon   = errors.New(ErrMsgDuplicateIcon)
	ErrEmptyCommonTier = errors.New(ErrMsgEmptyCommonTier)

	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	ErrRewardNotFound = errors.New(ErrMsgRewardNotFound)

	ErrDailyLimitReached = errors.New(ErrMsgDailyLimitReached)
	ErrGameNotFound      = errors.New(ErrMsgGameNotFound)
	ErrGameNotRunning    = errors.New(ErrMsgGameNotRunning)
	ErrUnknownGameKind   = errors.New(ErrMsgUnknownGameKind)

	ErrNotFound    = errors.New(ErrMsgNotFound)
	ErrStoreFailed = errors.New(ErrMsgStoreFailed)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
