// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tapematrix/tape"
	"github.com/katalvlaran/tapematrix/textio"
)

// Kind selects how LoadFiles interprets its files.
type Kind int

const (
	// KindMatrix files hold dense symmetric matrices.
	KindMatrix Kind = iota
	// KindStorage files hold compact storages.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindMatrix:
		return "matrix"
	case KindStorage:
		return "storage"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LoadFiles reads and compresses several files concurrently, then adds them
// in argument order. Either every file is added or none is: the first
// failure cancels the remaining reads and is returned.
func (s *Session) LoadFiles(ctx context.Context, kind Kind, paths ...string) ([]Entry, error) {
	if kind != KindMatrix && kind != KindStorage {
		return nil, fmt.Errorf("session: unknown kind %v", kind)
	}

	storages := make([]*tape.Storage, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var (
				st  *tape.Storage
				err error
			)
			if kind == KindMatrix {
				st, err = s.readMatrix(path)
			} else {
				st, err = textio.ReadStorage(path)
			}
			if err != nil {
				return err
			}
			storages[i] = st

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(paths))
	for i, path := range paths {
		e, err := s.Add(path, storages[i])
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}

	return out, nil
}
