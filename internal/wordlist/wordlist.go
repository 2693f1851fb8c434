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

// Package wordlist loads newline separated word lists into a radix.Set.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/radix"
	"github.com/rs/zerolog"
)

// MaxLineSize is the longest line Load accepts.
const MaxLineSize = 1 << 20

// Stats summarizes a Load call.
type Stats struct {
	Lines      int
	Inserted   int
	Duplicates int
	Blank      int
}

// Load inserts every non-blank line of r into s.  A trailing "\r" is dropped
// from each line.  It stops at the first line that cannot be inserted.
func Load(r io.Reader, s *radix.Set, log zerolog.Logger) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for sc.Scan() {
		st.Lines++
		word := strings.TrimSuffix(sc.Text(), "\r")
		if word == "" {
			st.Blank++
			continue
		}
		before := s.Len()
		if err := s.Insert(word); err != nil {
			log.Error().Err(err).Int("line", st.Lines).Int("nodes", s.Nodes()).Msg("insert failed")
			return st, fmt.Errorf("line %d: %w", st.Lines, err)
		}
		if s.Len() == before {
			st.Duplicates++
			log.Trace().Str("word", word).Msg("duplicate")
			continue
		}
		st.Inserted++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("line %d: %w", st.Lines+1, err)
	}
	log.Debug().
		Int("lines", st.Lines).
		Int("inserted", st.Inserted).
		Int("duplicates", st.Duplicates).
		Int("nodes", s.Nodes()).
		Msg("word list loaded")
	return st, nil
}
