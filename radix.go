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

// Package radix implements an in-memory ordered set of strings stored in a
// compressed prefix tree (a radix or PATRICIA trie).
//
// radix is meant for sets where many members share prefixes, such as symbol
// tables, autocomplete dictionaries or routing tables.  Each node holds a run
// of bytes common to every member passing through it, so a shared prefix is
// stored once.  It is not meant for persistent storage solutions.
//
// The tree is always kept in compressed (canonical) form: a node that is not
// itself the end of a member has at least two children.  Insert splits a node
// when a new member diverges from it part way through, and Delete fuses a node
// with its only remaining child.
//
// Members are ordered by raw byte value, which for UTF-8 strings matches
// code point order.  Any byte, including 0, may appear in a member.
//
// Fusing allocates a replacement node.  When a Set is created with a node
// budget (see NewWithLimit) that allocation can fail; the member is still
// removed, but the tree stays less compact than it could be until Compact
// succeeds.
package radix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAllocation is returned when a node cannot be allocated because the
	// set's node budget is exhausted.
	ErrAllocation = errors.New("radix: node budget exhausted")

	// ErrFuse is returned by Delete and Compact when a node could not be fused
	// with its only child.  The set is still correct, only less compact.
	ErrFuse = fmt.Errorf("radix: fuse failed: %w", ErrAllocation)
)

// Set is an ordered set of strings.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Set struct {
	root     *node
	empty    bool // "" is a member
	length   int
	nodes    int
	maxNodes int
	freelist *FreeList
}

// New creates a new empty Set.
func New() *Set {
	return NewWithFreeList(NewFreeList(DefaultFreeListSize))
}

// NewWithFreeList creates a new Set that uses the given node free list.
func NewWithFreeList(f *FreeList) *Set {
	return NewWithLimit(0, f)
}

// NewWithLimit creates a new Set that never holds more than maxNodes nodes at
// once.  Operations that would need more fail with ErrAllocation.  A maxNodes
// of zero or less means no limit.  If f is nil the Set gets its own free list.
func NewWithLimit(maxNodes int, f *FreeList) *Set {
	if f == nil {
		f = NewFreeList(DefaultFreeListSize)
	}
	if maxNodes < 0 {
		maxNodes = 0
	}
	return &Set{maxNodes: maxNodes, freelist: f}
}

func (s *Set) newNode(prefix string, terminal bool) (*node, error) {
	if s.maxNodes > 0 && s.nodes >= s.maxNodes {
		return nil, ErrAllocation
	}
	n := s.freelist.newNode()
	n.prefix = prefix
	n.terminal = terminal
	s.nodes++
	return n, nil
}

func (s *Set) freeNode(n *node) {
	*n = node{} // clear to allow GC
	s.nodes--
	s.freelist.freeNode(n)
}

// Insert adds key to the set.  Inserting a member again is a no-op.
//
// If a node cannot be allocated, Insert returns ErrAllocation and the set is
// left exactly as it was.
func (s *Set) Insert(key string) error {
	if key == "" {
		if !s.empty {
			s.empty = true
			s.length++
		}
		return nil
	}
	pos := &s.root
	for {
		pos = find(pos, key[0])
		n := *pos
		if n == nil || n.prefix[0] != key[0] {
			leaf, err := s.newNode(strings.Clone(key), true)
			if err != nil {
				return err
			}
			link(pos, leaf)
			s.length++
			return nil
		}
		i := common(n.prefix, key)
		if i < len(n.prefix) {
			return s.splitInsert(pos, i, key)
		}
		if i == len(key) {
			if !n.terminal {
				n.terminal = true
				s.length++
			}
			return nil
		}
		pos, key = &n.child, key[i:]
	}
}

// splitInsert splits the node held at pos after its first i bytes and adds
// key, which diverges from that node at index i, below the new prefix node.
// Both nodes are allocated before anything is relinked.
func (s *Set) splitInsert(pos **node, i int, key string) error {
	parent, err := s.newNode(strings.Clone(key[:i]), i == len(key))
	if err != nil {
		return err
	}
	var leaf *node
	if i < len(key) {
		if leaf, err = s.newNode(strings.Clone(key[i:]), true); err != nil {
			s.freeNode(parent)
			return err
		}
	}
	split(pos, parent)
	if leaf != nil {
		link(find(&parent.child, leaf.prefix[0]), leaf)
	}
	s.length++
	return nil
}

// Delete removes key from the set, reporting whether it was a member.
// Deleting a non-member is a no-op.
//
// If the tree cannot be brought back to compressed form, Delete returns true
// along with ErrFuse: key is removed and the set remains usable.
func (s *Set) Delete(key string) (bool, error) {
	if key == "" {
		if !s.empty {
			return false, nil
		}
		s.empty = false
		s.length--
		return true, nil
	}
	found, err := s.remove(&s.root, key)
	if found {
		s.length--
	}
	return found, err
}

// remove deletes key from the subtree in the sibling list at head, repairing
// every node on the way back up.
func (s *Set) remove(head **node, key string) (found bool, err error) {
	pos := find(head, key[0])
	n := *pos
	if n == nil || !strings.HasPrefix(key, n.prefix) {
		return false, nil
	}
	if len(key) == len(n.prefix) {
		if !n.terminal {
			return false, nil
		}
		n.terminal = false
	} else if found, err = s.remove(&n.child, key[len(n.prefix):]); !found {
		return false, nil
	}
	if rerr := s.repair(pos); err == nil {
		err = rerr
	}
	return true, err
}

// repair restores compressed form at the node held at pos.
func (s *Set) repair(pos **node) error {
	n := *pos
	switch {
	case n.dead():
		*pos = n.sibling
		s.freeNode(n)
	case n.mergeable():
		return s.fuse(pos)
	}
	return nil
}

// fuse replaces the node held at pos and its only child with a single node.
// On failure nothing is changed.
func (s *Set) fuse(pos **node) error {
	n := *pos
	c := n.child
	merged, err := s.newNode(n.prefix+c.prefix, c.terminal)
	if err != nil {
		return ErrFuse
	}
	merged.child = c.child
	merged.sibling = n.sibling
	*pos = merged
	s.freeNode(c)
	s.freeNode(n)
	return nil
}

// Compact retries every fuse left pending by earlier Delete calls.  It returns
// ErrFuse if some could still not be performed.
func (s *Set) Compact() error {
	return s.compact(&s.root)
}

func (s *Set) compact(pos **node) (err error) {
	for *pos != nil {
		n := *pos
		if cerr := s.compact(&n.child); err == nil {
			err = cerr
		}
		if n.dead() {
			*pos = n.sibling
			s.freeNode(n)
			continue
		}
		if n.mergeable() {
			if ferr := s.fuse(pos); err == nil {
				err = ferr
			}
		}
		pos = &(*pos).sibling
	}
	return err
}

// Len returns the number of members currently in the set.
func (s *Set) Len() int {
	return s.length
}

// Nodes returns the number of nodes currently in the tree.
func (s *Set) Nodes() int {
	return s.nodes
}

// Clear removes all members from the set.  If addNodesToFreelist is true,
// the set's nodes are added to its freelist as part of this call, until the
// freelist is full.  Otherwise, the root node is simply dereferenced and the
// subtree left to Go's normal GC processes.
func (s *Set) Clear(addNodesToFreelist bool) {
	if addNodesToFreelist {
		s.release(s.root)
	}
	s.root, s.empty, s.length, s.nodes = nil, false, 0, 0
}

// release hands the subtree at n to the free list, child first, then sibling,
// then n itself.  It returns false once the free list is full.
func (s *Set) release(n *node) bool {
	if n == nil {
		return true
	}
	if !s.release(n.child) || !s.release(n.sibling) {
		return false
	}
	*n = node{}
	return s.freelist.freeNode(n)
}

// Clone returns a deep copy of s.  The copy shares s's free list but no nodes,
// and has no node budget.
func (s *Set) Clone() *Set {
	out := &Set{
		empty:    s.empty,
		length:   s.length,
		freelist: s.freelist,
	}
	out.root = out.copyNode(s.root)
	return out
}

func (s *Set) copyNode(n *node) *node {
	if n == nil {
		return nil
	}
	c := s.freelist.newNode()
	s.nodes++
	c.prefix, c.terminal = n.prefix, n.terminal
	c.child = s.copyNode(n.child)
	c.sibling = s.copyNode(n.sibling)
	return c
}
