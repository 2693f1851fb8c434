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
	"fmt"
	"io"
	"os"

	"github.com/google/radix"
	"github.com/google/radix/internal/wordlist"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// EnvLogLevel is consulted when --log-level is not given.
const EnvLogLevel = "RADIX_LOG_LEVEL"

type options struct {
	words    string
	logLevel string
	maxNodes int

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "radix",
		Short:         "Query a word list stored in a radix tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogger(cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.words, "words", "w", "", "word list, one per line (default stdin)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (default $"+EnvLogLevel+" or warn)")
	cmd.PersistentFlags().IntVar(&opts.maxNodes, "max-nodes", 0, "node budget of the set, 0 for none")

	cmd.AddCommand(
		newListCmd(opts),
		newHasCmd(opts),
		newPrefixCmd(opts),
		newDeleteCmd(opts),
		newTreeCmd(opts),
		newStatsCmd(opts),
	)
	return cmd
}

func (o *options) setupLogger(w io.Writer) error {
	level := o.logLevel
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	if level == "" {
		level = zerolog.LevelWarnValue
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", level, err)
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = zerolog.ConsoleWriter{Out: f}
	}
	o.log = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}

// load builds the set from --words, or from the command's input.
func (o *options) load(cmd *cobra.Command) (*radix.Set, error) {
	in := cmd.InOrStdin()
	src := "stdin"
	if o.words != "" {
		f, err := os.Open(o.words)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in, src = f, o.words
	}
	s := radix.NewWithLimit(o.maxNodes, nil)
	st, err := wordlist.Load(in, s, o.log.With().Str("source", src).Logger())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	o.log.Info().Str("source", src).Int("members", s.Len()).Int("duplicates", st.Duplicates).Msg("loaded")
	return s, nil
}
