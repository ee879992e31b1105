// Package tape stores symmetric banded ("tape") matrices in compact
// diagonal-band form.
//
// A symmetric n×n matrix whose non-zero entries lie within m-1 places of the
// main diagonal is kept as an n×m Storage: one column per diagonal, main
// diagonal last. The package provides:
//
//   - DetectBandwidth, the band width detector used for every stored matrix;
//   - Encode / Decode, the exact inverse pair between matrix.Dense and Storage;
//   - EncodeStrict / CompressStrict, opt-in encoders that refuse to drop data;
//   - NewStorage, which builds a Storage from parsed text rows.
//
// Quick example (bandwidth 2):
//
//	dense        storage
//	4 1 0          _ 4
//	1 4 1          1 4
//	0 1 4          1 4
//
// All functions are pure and safe for concurrent use on distinct data.
package tape
