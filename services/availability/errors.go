package availability

import "errors"

// Only the input-validation failures below surface as request errors; the
// engine absorbs everything else into partial or degraded results because
// availability is advisory, not authoritative.
var (
	// ErrEmptyGroup means the group resolved to zero members.
	ErrEmptyGroup = errors.New("group has no resolvable members")
	// ErrRangeTooLarge means the requested date range exceeds the cap.
	ErrRangeTooLarge = errors.New("requested date range exceeds the maximum")
	// ErrInvalidRange means a date failed to parse or end precedes start.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrGroupNotFound means the group ID did not resolve.
	ErrGroupNotFound = errors.New("group not found")
)
