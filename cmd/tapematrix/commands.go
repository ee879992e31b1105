// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tapematrix/session"
	"github.com/katalvlaran/tapematrix/tape"
	"github.com/katalvlaran/tapematrix/textio"
)

// emit writes rows to out, or prints them when out is empty.
func emit(cmd *cobra.Command, out string, rows [][]int64) error {
	if out != "" {
		return textio.WriteFile(out, rows)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), textio.Format(rows, nil))

	return err
}

func (a *app) encodeCmd() *cobra.Command {
	var (
		out       string
		bandwidth int
		strict    bool
	)

	c := &cobra.Command{
		Use:   "encode <dense-file>",
		Short: "Convert a dense symmetric matrix to diagonal storage",
		Args:  cobra.ExactArgs(1),
		RunE: a.recorded(func(cmd *cobra.Command, args []string) error {
			d, err := textio.ReadDense(args[0])
			if err != nil {
				return err
			}

			strict = strict || a.cfg.Encode.Strict
			var st *tape.Storage
			switch {
			case bandwidth == 0 && strict:
				st, err = tape.CompressStrict(d)
			case bandwidth == 0:
				st, err = tape.Compress(d)
			case strict:
				st, err = tape.EncodeStrict(d, bandwidth)
			default:
				st, err = tape.Encode(d, bandwidth)
			}
			if err != nil {
				return err
			}

			return emit(cmd, out, st.Rows2D())
		}),
	}

	c.Flags().StringVarP(&out, "output", "o", "", "write the storage to this file instead of stdout")
	c.Flags().IntVarP(&bandwidth, "bandwidth", "m", 0, "band width to keep (0 detects it)")
	c.Flags().BoolVar(&strict, "strict", false, "fail instead of dropping entries outside the band")

	return c
}

func (a *app) decodeCmd() *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "decode <storage-file>",
		Short: "Expand diagonal storage back to the full symmetric matrix",
		Args:  cobra.ExactArgs(1),
		RunE: a.recorded(func(cmd *cobra.Command, args []string) error {
			st, err := textio.ReadStorage(args[0])
			if err != nil {
				return err
			}
			d, err := tape.Decode(st)
			if err != nil {
				return err
			}

			return emit(cmd, out, d.Rows2D())
		}),
	}

	c.Flags().StringVarP(&out, "output", "o", "", "write the matrix to this file instead of stdout")

	return c
}

func (a *app) bandwidthCmd() *cobra.Command {
	var full bool

	c := &cobra.Command{
		Use:   "bandwidth <dense-file>",
		Short: "Print the band width detected for a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: a.recorded(func(cmd *cobra.Command, args []string) error {
			d, err := textio.ReadDense(args[0])
			if err != nil {
				return err
			}

			detect := tape.DetectBandwidth
			if full {
				detect = tape.MaxOffsetBandwidth
			}
			m, err := detect(d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m)

			return err
		}),
	}

	c.Flags().BoolVar(&full, "full", false, "scan every cell for the widest non-zero diagonal")

	return c
}

func (a *app) multiplyCmd() *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "multiply <storage-a> <storage-b>",
		Short: "Multiply two stored matrices and print the product storage",
		Args:  cobra.ExactArgs(2),
		RunE: a.recorded(func(cmd *cobra.Command, args []string) error {
			s := session.New(session.WithStrict(a.cfg.Encode.Strict))
			if _, err := s.LoadFiles(cmd.Context(), session.KindStorage, args...); err != nil {
				return err
			}
			e, err := s.Multiply(0, 1)
			if err != nil {
				return err
			}

			return emit(cmd, out, e.Storage.Rows2D())
		}),
	}

	c.Flags().StringVarP(&out, "output", "o", "", "write the product storage to this file instead of stdout")

	return c
}
