// SPDX-License-Identifier: MIT

package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tapematrix/tape"
)

// SnapshotVersion is written into every snapshot file.
const SnapshotVersion = 1

// ErrSnapshot marks an unreadable or inconsistent snapshot file.
var ErrSnapshot = errors.New("session: invalid snapshot")

type snapshotDTO struct {
	Version  int        `yaml:"version"`
	Matrices []entryDTO `yaml:"matrices"`
}

type entryDTO struct {
	Name      string    `yaml:"name"`
	Order     int       `yaml:"order"`
	Bandwidth int       `yaml:"bandwidth"`
	Rows      [][]int64 `yaml:"rows,flow"`
}

func compressed(path string) bool { return strings.HasSuffix(path, ".zst") }

// Save writes every entry to path as YAML; a ".zst" suffix selects zstd
// compression.
func (s *Session) Save(path string) error {
	dto := snapshotDTO{Version: SnapshotVersion}
	for _, e := range s.List() {
		dto.Matrices = append(dto.Matrices, entryDTO{
			Name:      e.Name,
			Order:     e.Storage.Order(),
			Bandwidth: e.Storage.Bandwidth(),
			Rows:      e.Storage.Rows2D(),
		})
	}
	body, err := yaml.Marshal(&dto)
	if err != nil {
		return fmt.Errorf("session.save: %w", err)
	}

	if compressed(path) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return fmt.Errorf("session.save: %w", err)
		}
		body = enc.EncodeAll(body, nil)
		_ = enc.Close()
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("session.save %s: %w", path, err)
	}

	return nil
}

// Open loads a snapshot written by Save into a new Session.
func Open(path string, opts ...Option) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session.open %s: %w", path, err)
	}
	if compressed(path) {
		dec, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("session.open %s: %w", path, err)
		}
		raw, err = io.ReadAll(dec)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("session.open %s: %w: %v", path, ErrSnapshot, err)
		}
	}

	var dto snapshotDTO
	if err := yaml.Unmarshal(raw, &dto); err != nil {
		return nil, fmt.Errorf("session.open %s: %w: %v", path, ErrSnapshot, err)
	}
	if dto.Version != SnapshotVersion {
		return nil, fmt.Errorf("session.open %s: version %d: %w", path, dto.Version, ErrSnapshot)
	}

	s := New(opts...)
	for _, m := range dto.Matrices {
		st, err := tape.NewStorage(m.Rows)
		if err != nil {
			return nil, fmt.Errorf("session.open %s: %q: %w", path, m.Name, err)
		}
		if st.Order() != m.Order || st.Bandwidth() != m.Bandwidth {
			return nil, fmt.Errorf("session.open %s: %q is %dx%d, header says %dx%d: %w",
				path, m.Name, st.Order(), st.Bandwidth(), m.Order, m.Bandwidth, ErrSnapshot)
		}
		if _, err := s.Add(m.Name, st); err != nil {
			return nil, fmt.Errorf("session.open %s: %w", path, err)
		}
	}

	return s, nil
}
