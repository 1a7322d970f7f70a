package errs

import "errors"

// Domain-specific sentinel errors for the query layers
var (
	// Catalog errors
	ErrItemNotFound = errors.New("item not found")

	// Discount report errors
	ErrNoComparisonData = errors.New("no comparison data available")
	ErrInvalidLookback  = errors.New("invalid lookback window")
)
