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
	"fmt"
	"io"
	"strconv"

	"github.com/xlab/treeprint"
)

// Fprint writes the node structure of the set to w, one node per line.  Each
// node shows its quoted prefix, with members marked by a trailing "*".  It is
// meant for testing and debugging.
func (s *Set) Fprint(w io.Writer) {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%d members, %d nodes", s.length, s.nodes))
	if s.empty {
		tree.AddNode(`"" *`)
	}
	addNodes(tree, s.root)
	fmt.Fprint(w, tree.String())
}

func addNodes(tree treeprint.Tree, n *node) {
	for ; n != nil; n = n.sibling {
		label := strconv.Quote(n.prefix)
		if n.terminal {
			label += " *"
		}
		if n.child == nil {
			tree.AddNode(label)
			continue
		}
		addNodes(tree.AddBranch(label), n.child)
	}
}
