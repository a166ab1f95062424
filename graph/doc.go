// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package graph - a fixed capacity weighted directed graph
//
// Vertices live in a slot array sized at construction.  Each vertex
// carries a value, the cost of arriving at it and a singly linked
// list of outgoing edges threaded through edge records.  Searches
// that need a starting point use the lowest occupied slot.
//
// Note: a graph is not thread safe.
package graph
