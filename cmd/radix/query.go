// Copyright 2026 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"

	"github.com/google/radix"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var (
		prefix string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print members in byte order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			s.AscendPrefix(prefix, func(key string) bool {
				fmt.Fprintln(out, key)
				n++
				return limit <= 0 || n < limit
			})
			return nil
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only list members beginning with this prefix")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many members, 0 for all")
	return cmd
}

func newHasCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "has WORD...",
		Short: "Report whether each word is a member",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			for _, w := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", w, s.Has(w))
			}
			return nil
		},
	}
}

func newPrefixCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "prefix PREFIX...",
		Short: "Report whether some member begins with each prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			for _, p := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%v\n", p, s.HasPrefix(p))
			}
			return nil
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	var list, compact bool
	cmd := &cobra.Command{
		Use:   "delete WORD...",
		Short: "Delete words and report which were members",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range args {
				ok, err := s.Delete(w)
				switch {
				case errors.Is(err, radix.ErrFuse):
					opts.log.Warn().Str("word", w).Int("nodes", s.Nodes()).Msg("tree left uncompressed")
				case err != nil:
					return err
				}
				fmt.Fprintf(out, "%s\t%v\n", w, ok)
			}
			if compact {
				if err := s.Compact(); err != nil {
					opts.log.Warn().Err(err).Int("nodes", s.Nodes()).Msg("compact incomplete")
				}
			}
			if list {
				for key := range s.All() {
					fmt.Fprintln(out, key)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the remaining members afterwards")
	cmd.Flags().BoolVar(&compact, "compact", false, "retry pending fuses afterwards")
	return cmd
}

func newTreeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the node structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			s.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print member and node counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(cmd)
			if err != nil {
				return err
			}
			keyBytes, longest := 0, 0
			s.Ascend(func(key string) bool {
				keyBytes += len(key)
				if len(key) > longest {
					longest = len(key)
				}
				return true
			})
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "members\t%d\n", s.Len())
			fmt.Fprintf(out, "nodes\t%d\n", s.Nodes())
			fmt.Fprintf(out, "bytes\t%d\n", keyBytes)
			fmt.Fprintf(out, "longest\t%d\n", longest)
			return nil
		},
	}
}
