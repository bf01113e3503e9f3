package usecase

import "github.com/cockroachdb/errors"

// Failure classes of a sync run. Every one of them aborts the run; callers
// tell them apart with errors.Is.
var (
	ErrNetwork = errors.New("network failure")
	ErrDecode  = errors.New("decode failure")
	ErrStorage = errors.New("storage failure")
)
