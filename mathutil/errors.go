// SPDX-License-Identifier: MIT

package mathutil

import "errors"

var (
	// ErrEmptyInput is returned when a helper needs at least one sample.
	ErrEmptyInput = errors.New("mathutil: empty input")

	// ErrLengthMismatch is returned when paired slices differ in length.
	ErrLengthMismatch = errors.New("mathutil: length mismatch")

	// ErrNotIncreasing is returned when abscissae are not strictly increasing.
	ErrNotIncreasing = errors.New("mathutil: abscissae not strictly increasing")
)
