// SPDX-License-Identifier: MIT
// Package solver: sentinel errors.
// Callers match with errors.Is; entry points wrap with call-site context.

package solver

import "errors"

// ErrUnsupportedDegree is returned when more than five coefficients
// (degree > 4) are supplied. Higher degrees have no closed form here.
var ErrUnsupportedDegree = errors.New("solver: unsupported polynomial degree")
