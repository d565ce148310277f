// Copyright the Mica Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"sync/atomic"
)

// Node is anything which can appear in the tree of an analysed compilation
// unit.  Every node carries a stable identity, allocated at construction,
// which analysis passes use to key per-node state (e.g. the constant
// evaluation cache).  Identities are never reused within a process, hence
// state keyed on them survives across passes without aliasing hazards.
type Node interface {
	// Id returns the stable identity of this node.
	Id() uint
	// Produce a source-like string representation of this node.
	String() string
}

// counter used for allocating node identities.
var nodeCounter atomic.Uint64

// node provides the identity underpinning every concrete AST node.
type node struct {
	id uint
}

// newNode allocates a fresh node with the next available identity.
func newNode() node {
	return node{uint(nodeCounter.Add(1))}
}

// Id returns the stable identity of this node.
func (p *node) Id() uint {
	return p.id
}

// Unit represents a single parsed compilation unit (i.e. one source file),
// which is simply a sequence of declarations.
type Unit struct {
	// Declarations in this unit, in source order.
	Declarations []Declaration
}
