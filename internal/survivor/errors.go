package survivor

import "errors"

// Error kinds returned (wrapped) by the analyzer.  Test with errors.Is.
var (
	// ErrFeedFetch means the win probability source could not be read or parsed.
	ErrFeedFetch = errors.New("feed fetch failed")

	// ErrIntegrity means the slate is inconsistent: broken opponent references,
	// a team playing itself, or a team in zero or multiple matchups.
	ErrIntegrity = errors.New("slate integrity violated")

	// ErrUnknownTeam means a lookup or override named a team not in the registry.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrValidation means a value was out of range when entered.
	ErrValidation = errors.New("invalid value")

	// ErrDivisionUndefined means an expected value would have a zero denominator.
	ErrDivisionUndefined = errors.New("division undefined")
)
