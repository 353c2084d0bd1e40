package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrDuplicateAsset indicates that an asset with the same ID is already stored.
	ErrDuplicateAsset = errors.New("duplicate asset id")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrNotLoggedIn indicates that the session has no logged in user.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrUnknownPlan indicates a subscription plan outside Free, Pro, Premium and Gold.
	ErrUnknownPlan = errors.New("unknown subscription plan")

	// ErrInvalidCSV indicates an asset CSV that could not be parsed.
	ErrInvalidCSV = errors.New("invalid asset CSV")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveAssets = errors.New("failed to retrieve assets")
	ErrFailedToStoreAsset     = errors.New("failed to store asset")
	ErrFailedToRenderChart    = errors.New("failed to render chart")
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
