// Package matrix provides the dense integer matrix used by the tape codec.
//
// The matrix package provides:
//
//   - Matrix, a small interface over a two-dimensional int64 array, and Dense,
//     its row-major implementation with bounds-checked At/Set.
//   - IsSymmetric / ValidateSymmetric, the symmetry gate required before a
//     matrix may be packed into band storage.
//   - Mul, the plain triple-loop product used on matrices decoded from band
//     storage, and Transpose.
//
// Every operation is pure with respect to its inputs: results are freshly
// allocated and callers may use them from any goroutine.
package matrix
