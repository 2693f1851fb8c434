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

import "strings"

// node is a run of bytes shared by every member passing through it.
//
// It must at all times maintain the invariants that
//   - len(prefix) > 0
//   - siblings are ordered strictly by prefix[0], with no duplicates
//   - a non-terminal node has at least two children
//
// The last one is only relaxed after a failed fuse, see Set.Delete.
type node struct {
	prefix   string
	terminal bool
	child    *node
	sibling  *node
}

// find returns the link in the sibling list at head that holds the first node
// whose leading byte is not less than c.  That is where a node starting with c
// is, or belongs if there is none.
func find(head **node, c byte) **node {
	for *head != nil && (*head).prefix[0] < c {
		head = &(*head).sibling
	}
	return head
}

// lookup returns the node in the sibling list at head starting with c, or nil.
func lookup(head *node, c byte) *node {
	for head != nil && head.prefix[0] < c {
		head = head.sibling
	}
	if head == nil || head.prefix[0] != c {
		return nil
	}
	return head
}

// common returns the length of the longest common prefix of a and b.
func common(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// link places n in front of the node held at pos.
func link(pos **node, n *node) {
	n.sibling = *pos
	*pos = n
}

// split puts parent in place of the node held at pos, which must start with
// parent.prefix.  The original node keeps the rest of its prefix and becomes
// parent's only child.
func split(pos **node, parent *node) {
	n := *pos
	n.prefix = strings.Clone(n.prefix[len(parent.prefix):])
	parent.sibling, n.sibling = n.sibling, nil
	parent.child = n
	*pos = parent
}

// mergeable reports whether n can be fused with its only child.
func (n *node) mergeable() bool {
	return !n.terminal && n.child != nil && n.child.sibling == nil
}

// dead reports whether n no longer leads to any member.
func (n *node) dead() bool {
	return !n.terminal && n.child == nil
}
