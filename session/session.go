// SPDX-License-Identifier: MIT

// Package session keeps the named compact storages of an interactive run.
//
// A Session is an ordered list of entries (name + *tape.Storage). Entries are
// addressed by 0-based index in list order; names need not be unique. All
// methods are safe for concurrent use: the entry list is guarded by a single
// RWMutex, while decoding, multiplication and file I/O run outside the lock on
// immutable storages.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/tapematrix/config"
	"github.com/katalvlaran/tapematrix/matrix"
	"github.com/katalvlaran/tapematrix/tape"
	"github.com/katalvlaran/tapematrix/textio"
)

var (
	// ErrNotFound is returned for an index outside the entry list.
	ErrNotFound = errors.New("session: matrix number out of range")

	// ErrInvalidName is returned for an empty or whitespace-only name.
	ErrInvalidName = errors.New("session: invalid matrix name")

	// ErrNilStorage is returned when Add receives a nil storage.
	ErrNilStorage = errors.New("session: nil storage")
)

// MultiplySep joins operand names into the product's name.
const MultiplySep = "_multiply_"

// Entry is one named storage.
type Entry struct {
	Name    string
	Storage *tape.Storage
}

// Option configures a Session.
type Option func(*Session)

// WithStrict makes every load and product use tape.CompressStrict.
func WithStrict(strict bool) Option {
	return func(s *Session) { s.strict = strict }
}

// Session is the ordered, named collection of storages.
type Session struct {
	mu      sync.RWMutex // guards entries
	entries []Entry
	strict  bool
}

// New returns an empty Session.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// compress applies the configured encoder.
func (s *Session) compress(d matrix.Matrix) (*tape.Storage, error) {
	if s.strict {
		return tape.CompressStrict(d)
	}

	return tape.Compress(d)
}

func validName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%q: %w", name, ErrInvalidName)
	}

	return nil
}

// Add appends a named storage and returns the stored entry.
func (s *Session) Add(name string, st *tape.Storage) (Entry, error) {
	if err := validName(name); err != nil {
		return Entry{}, err
	}
	if st == nil {
		return Entry{}, ErrNilStorage
	}
	e := Entry{Name: name, Storage: st}

	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	Logger().Debug("session.add",
		zap.String("name", name),
		zap.Int("order", st.Order()),
		zap.Int("bandwidth", st.Bandwidth()))

	return e, nil
}

// Len returns the number of entries.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// List returns a copy of the entries in order.
func (s *Session) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Get returns entry idx.
func (s *Session) Get(idx int) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx < 0 || idx >= len(s.entries) {
		return Entry{}, fmt.Errorf("index %d of %d: %w", idx, len(s.entries), ErrNotFound)
	}

	return s.entries[idx], nil
}

// Lookup returns the index and entry of the first entry called name.
func (s *Session) Lookup(name string) (int, Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i, e := range s.entries {
		if e.Name == name {
			return i, e, nil
		}
	}

	return -1, Entry{}, fmt.Errorf("name %q: %w", name, ErrNotFound)
}

// Rename sets the name of entry idx.
func (s *Session) Rename(idx int, name string) error {
	if err := validName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.entries) {
		return fmt.Errorf("index %d of %d: %w", idx, len(s.entries), ErrNotFound)
	}
	Logger().Debug("session.rename", zap.String("from", s.entries[idx].Name), zap.String("to", name))
	s.entries[idx].Name = name

	return nil
}

// Remove deletes entry idx; later entries shift down by one.
func (s *Session) Remove(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.entries) {
		return fmt.Errorf("index %d of %d: %w", idx, len(s.entries), ErrNotFound)
	}
	Logger().Debug("session.remove", zap.String("name", s.entries[idx].Name))
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)

	return nil
}

// LoadMatrix reads a dense symmetric matrix file, compresses it and adds it
// under the file path as name.
func (s *Session) LoadMatrix(path string) (Entry, error) {
	st, err := s.readMatrix(path)
	if err != nil {
		return Entry{}, err
	}

	return s.Add(path, st)
}

// LoadStorage reads a compact storage file and adds it under the file path.
func (s *Session) LoadStorage(path string) (Entry, error) {
	st, err := textio.ReadStorage(path)
	if err != nil {
		return Entry{}, err
	}

	return s.Add(path, st)
}

func (s *Session) readMatrix(path string) (*tape.Storage, error) {
	d, err := textio.ReadDense(path)
	if err != nil {
		return nil, err
	}
	st, err := s.compress(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return st, nil
}

// Multiply decodes entries i and j, multiplies them and adds the compressed
// product as "<name i>_multiply_<name j>".
//
// Errors: ErrNotFound, matrix.ErrDimensionMismatch (orders differ),
// matrix.ErrNotSymmetric (the operands do not commute, so the product is
// not symmetric and has no band form).
func (s *Session) Multiply(i, j int) (Entry, error) {
	a, err := s.Get(i)
	if err != nil {
		return Entry{}, err
	}
	b, err := s.Get(j)
	if err != nil {
		return Entry{}, err
	}

	da, err := tape.Decode(a.Storage)
	if err != nil {
		return Entry{}, err
	}
	db, err := tape.Decode(b.Storage)
	if err != nil {
		return Entry{}, err
	}
	p, err := matrix.Mul(da, db)
	if err != nil {
		return Entry{}, err
	}
	st, err := s.compress(p)
	if err != nil {
		return Entry{}, fmt.Errorf("product %s%s%s: %w", a.Name, MultiplySep, b.Name, err)
	}

	return s.Add(a.Name+MultiplySep+b.Name, st)
}

// ExportMatrix writes the decoded dense matrix of entry idx to path.
func (s *Session) ExportMatrix(idx int, path string) error {
	e, err := s.Get(idx)
	if err != nil {
		return err
	}
	d, err := tape.Decode(e.Storage)
	if err != nil {
		return err
	}

	return textio.WriteFile(path, d.Rows2D())
}

// ExportStorage writes the compact storage of entry idx to path.
func (s *Session) ExportStorage(idx int, path string) error {
	e, err := s.Get(idx)
	if err != nil {
		return err
	}

	return textio.WriteFile(path, e.Storage.Rows2D())
}

// Render returns the detail view of entry idx: the tape matrix and its
// storage side by side.
func (s *Session) Render(idx int, disp config.Display) (string, error) {
	e, err := s.Get(idx)
	if err != nil {
		return "", err
	}

	return RenderEntry(e, disp)
}

// RenderEntry renders one entry; see Render.
func RenderEntry(e Entry, disp config.Display) (string, error) {
	d, err := tape.Decode(e.Storage)
	if err != nil {
		return "", err
	}
	band := 0
	if disp.BlankOutOfBand {
		band = e.Storage.Bandwidth()
	}

	return textio.SideBySide(
		"tape matrix: ", textio.FormatBand(d, band),
		"storage: ", textio.FormatStorage(e.Storage, disp.BlankPadding),
	), nil
}
