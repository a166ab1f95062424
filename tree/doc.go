// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - a family of generic binary trees sharing one node
// type and one set of traversal and shape routines
//
// A tree is built from two policies selected at construction:
//
//	placement:  where a value goes
//	            shape   - first free slot in level order (complete tree)
//	            ordered - binary search tree descent, no duplicates
//
//	rebalancer: what is repaired after a structural change
//	            none    - nothing
//	            avl     - AVL rotations along the edit path
//	            heap    - max-heap sift up/down
//
// New, NewOrdered and NewBalanced give the three standard
// combinations; NewMaxHeap wraps shape placement with heap order.
// NewWithPolicy also accepts a custom rebalancer.  The AVL rebalancer
// requires ordered placement and heap order requires shape placement,
// the other pairings panic.
//
// Note: an individual tree is not thread safe, so either access only
// in a single go routine or use mutex/rwmutex to restrict access.
//
// Node handles returned by lookups remain valid only until the next
// Push, Pop, rotation or Clear on the same tree: deletion relocates
// values between nodes and freed nodes are reused.  Traversals are
// snapshots, mutating the tree while one is being consumed gives
// undefined results.
package tree
