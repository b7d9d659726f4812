package olc

import "errors"

// Sentinel errors returned by Optimize and its collaborators. Callers
// should compare with errors.Is; no other failure modes are produced.
// These are the only errors the core ever returns — it never logs and
// never retries (spec §7).
var (
	// ErrInsufficientFixes is returned when fewer than 7 fixes are supplied;
	// a 7-point path cannot be formed.
	ErrInsufficientFixes = errors.New("olc: fewer than 7 fixes supplied")

	// ErrDegenerateInput is returned when the projection centre is
	// ill-defined: the fix set is empty, or every fix shares the same
	// coordinate (no spatial extent to project).
	ErrDegenerateInput = errors.New("olc: degenerate fix set (no spatial extent)")

	// ErrNumericAnomaly is returned if a fix projects to a NaN or infinite
	// planar coordinate, which is checked before any distance is computed.
	// This should not arise for a well-defined projection; it guards
	// against malformed caller-supplied coordinates (e.g. NaN
	// latitude/longitude).
	ErrNumericAnomaly = errors.New("olc: NaN encountered during distance accumulation")
)

// errDimensionMismatch is an internal invariant guard for distance-matrix /
// graph-layer shape mismatches. Optimize returns it only when the global
// graph yields no rule-valid path, which cannot happen with a
// non-negative altitude rule; with such a rule it indicates a bug rather
// than bad input.
var errDimensionMismatch = errors.New("olc: internal dimension mismatch")
