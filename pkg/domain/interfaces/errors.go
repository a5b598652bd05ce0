package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is wrapped by repository implementations when a requested
// record does not exist, so callers can tell absence from read failures.
var ErrNotFound = goerr.New("record not found")
