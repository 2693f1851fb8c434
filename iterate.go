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

package radix

import (
	"iter"
	"strings"
)

// ItemIterator allows callers of Ascend* to iterate in-order over the members
// of a set.  When this function returns false, iteration will stop and the
// associated Ascend* function will immediately return true.
type ItemIterator func(key string) bool

// BytesIterator is the []byte form of ItemIterator used by AscendInto.  The
// slice is only valid until the iterator returns.
type BytesIterator func(key []byte) bool

// Has returns true if key is a member of the set.
func (s *Set) Has(key string) bool {
	if key == "" {
		return s.empty
	}
	n := s.root
	for {
		n = lookup(n, key[0])
		if n == nil || !strings.HasPrefix(key, n.prefix) {
			return false
		}
		if len(key) == len(n.prefix) {
			return n.terminal
		}
		key = key[len(n.prefix):]
		n = n.child
	}
}

// HasPrefix returns true if some member of the set begins with prefix.  The
// empty prefix begins every string, so HasPrefix("") is always true, even for
// an empty set.
func (s *Set) HasPrefix(prefix string) bool {
	_, _, ok := s.seek(prefix)
	return ok || prefix == ""
}

// seek finds the node below which every member beginning with prefix is
// found, along with the bytes leading up to that node.  prefix must not be
// empty for ok to be true.
func (s *Set) seek(prefix string) (path string, n *node, ok bool) {
	n = s.root
	depth := 0
	for depth < len(prefix) {
		rest := prefix[depth:]
		if n = lookup(n, rest[0]); n == nil {
			return "", nil, false
		}
		i := common(n.prefix, rest)
		if i == len(rest) {
			return prefix[:depth], n, true
		}
		if i < len(n.prefix) {
			return "", nil, false
		}
		depth += i
		n = n.child
	}
	return "", nil, false
}

// walker rebuilds members into buf during an ordered walk.
type walker struct {
	buf   []byte
	fixed bool // truncate members to len(buf) instead of growing it
	visit BytesIterator
}

// walk visits every member in the sibling list at n and below it, in order.
// depth is the length of the bytes leading up to the list.  It returns false
// if the visitor asked to stop.
func (w *walker) walk(n *node, depth int) bool {
	for ; n != nil; n = n.sibling {
		if !w.visitNode(n, depth) {
			return false
		}
	}
	return true
}

// visitNode visits n, then every member below it.
func (w *walker) visitNode(n *node, depth int) bool {
	end := depth + len(n.prefix)
	if w.fixed {
		if depth < len(w.buf) {
			copy(w.buf[depth:], n.prefix)
		}
	} else {
		w.buf = append(w.buf[:depth], n.prefix...)
	}
	if n.terminal {
		if end > len(w.buf) {
			end = len(w.buf)
		}
		if !w.visit(w.buf[:end]) {
			return false
		}
	}
	return w.walk(n.child, depth+len(n.prefix))
}

func stringVisitor(iterator ItemIterator) BytesIterator {
	return func(b []byte) bool { return iterator(string(b)) }
}

// Ascend calls the iterator for every member of the set in ascending byte
// order, until iterator returns false.  It returns true if the iteration was
// stopped early.
func (s *Set) Ascend(iterator ItemIterator) bool {
	if s.empty && !iterator("") {
		return true
	}
	w := &walker{visit: stringVisitor(iterator)}
	return !w.walk(s.root, 0)
}

// AscendPrefix calls the iterator for every member beginning with prefix, in
// ascending byte order, until iterator returns false.  It returns true if the
// iteration was stopped early.
func (s *Set) AscendPrefix(prefix string, iterator ItemIterator) bool {
	if prefix == "" {
		return s.Ascend(iterator)
	}
	path, n, ok := s.seek(prefix)
	if !ok {
		return false
	}
	w := &walker{buf: []byte(path), visit: stringVisitor(iterator)}
	return !w.visitNode(n, len(path))
}

// AscendInto is like Ascend, but rebuilds each member in buf instead of
// a buffer of its own.  Members longer than buf are silently truncated to len(buf)
// bytes; size buf to the longest member to see every member whole.  If buf is
// empty nothing is visited.
func (s *Set) AscendInto(buf []byte, iterator BytesIterator) bool {
	if len(buf) == 0 {
		return false
	}
	if s.empty && !iterator(buf[:0]) {
		return true
	}
	w := &walker{buf: buf, fixed: true, visit: iterator}
	return !w.walk(s.root, 0)
}

// All returns an iterator over the members of the set in ascending byte order.
func (s *Set) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		s.Ascend(yield)
	}
}

// Min returns the smallest member of the set, or ("", false) if the set is
// empty.
func (s *Set) Min() (string, bool) {
	if s.empty {
		return "", true
	}
	var b strings.Builder
	for n := s.root; n != nil; n = n.child {
		b.WriteString(n.prefix)
		if n.terminal {
			return b.String(), true
		}
	}
	return "", false
}

// Max returns the largest member of the set, or ("", false) if the set is
// empty.
func (s *Set) Max() (string, bool) {
	if s.root == nil {
		return "", s.empty
	}
	var b strings.Builder
	n := s.root
	for {
		for n.sibling != nil {
			n = n.sibling
		}
		b.WriteString(n.prefix)
		if n.child == nil {
			return b.String(), true
		}
		n = n.child
	}
}
