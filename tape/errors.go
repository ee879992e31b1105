// SPDX-License-Identifier: MIT
// Package tape: sentinel error set.
// Codec functions return these sentinels (wrapped with an operation tag);
// callers match them via errors.Is. Symmetry and shape violations surface as
// the matrix package sentinels (matrix.ErrNotSymmetric, matrix.ErrNonSquare).

package tape

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStorage marks structurally invalid compact storage:
	// nil, m <= 0, m > n, or row lengths that do not fit the padding layout.
	ErrMalformedStorage = errors.New("tape: malformed storage")

	// ErrBandwidthRange is returned when an encode bandwidth lies outside [1, n].
	ErrBandwidthRange = errors.New("tape: bandwidth out of range")

	// ErrBandTruncated is returned by the strict encoders when a non-zero
	// entry lies outside the requested band.
	ErrBandTruncated = errors.New("tape: non-zero entry outside band")
)

// Operation tags for error wrapping.
const (
	opDetect       = "DetectBandwidth"
	opMaxOffset    = "MaxOffsetBandwidth"
	opEncode       = "Encode"
	opEncodeStrict = "EncodeStrict"
	opCompress     = "Compress"
	opDecode       = "Decode"
	opNewStorage   = "NewStorage"
)

// codecErrorf wraps err with an operation tag, preserving it for errors.Is.
func codecErrorf(tag string, err error) error {
	return fmt.Errorf("tape.%s: %w", tag, err)
}
