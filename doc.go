// Package tapematrix stores symmetric band ("tape") matrices in compact
// diagonal form and converts them back.
//
// A symmetric n×n matrix whose non-zero entries all lie within m-1 steps of
// the main diagonal is fully described by its lower band. The band is kept
// as an n×m table: the main diagonal in the last column, each sub-diagonal
// one column further left, right-aligned so that row i holds a[i][i-m+1..i].
//
//	dense (n=3, m=2)        storage
//	[4 1 0]                 [_ 4]
//	[1 4 1]       ⇄         [1 4]
//	[0 1 4]                 [1 4]
//
// Packages:
//
//	matrix/   - int64 Dense matrix, validators, multiplication, transpose
//	tape/     - Storage, bandwidth detection, Encode/Compress/Decode
//	textio/   - whitespace-separated integer text files and aligned output
//	session/  - named storages of one run: load, multiply, export, snapshots
//	errlog/   - timestamped error log file
//	config/   - YAML configuration
//	tui/      - interactive menu
//	cmd/      - tapematrix command line
//
//	go install github.com/katalvlaran/tapematrix/cmd/tapematrix@latest
package tapematrix
