// Package app contains the application services. Services orchestrate core
// business logic with repository access; all I/O goes through the secondary
// ports.
package app

import "errors"

// ErrInvalidInput marks request-validation failures. Adapters map it to a
// 400 response or a usage error.
var ErrInvalidInput = errors.New("invalid input")
