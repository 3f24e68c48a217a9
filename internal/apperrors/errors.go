package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist
	// in the catalog.
	ErrFundNotFound = errors.New("fund not found")

	// ErrUnknownCategory indicates that a category string does not match any
	// known fund category.
	ErrUnknownCategory = errors.New("unknown fund category")

	// ErrSettingNotFound indicates that a settings key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint
// violations. These errors indicate that an operation cannot be completed
// due to business rules.
var (
	// ErrInvalidAge indicates that the profile's age is zero or negative.
	ErrInvalidAge = errors.New("age must be greater than zero")

	// ErrNegativeIncome indicates that the profile's annual income is negative.
	ErrNegativeIncome = errors.New("annual income cannot be negative")

	// ErrNegativeAmount indicates that an amount field has an invalid
	// negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrEmptyCatalog indicates that the fund catalog has not been loaded.
	ErrEmptyCatalog = errors.New("fund catalog is empty")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data. These errors indicate that an operation failed, but
// not due to missing entities or validation issues.
var (
	ErrFailedToLoadCatalog  = errors.New("failed to load fund catalog")
	ErrFailedToFetchNAVData = errors.New("failed to fetch NAV data")
	ErrNarrativeUnavailable = errors.New("narrative generator unavailable")
)
