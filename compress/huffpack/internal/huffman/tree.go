// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman implements the prefix-code core of huffpack: symbol
// frequencies, Huffman tree construction, canonical code assignment and the
// bit-level encoder and decoder.
package huffman

import "container/heap"

const noChild = -1

type node struct {
	weight      uint64
	left, right int32
	symbol      byte
}

// Tree is a binary prefix tree stored as an arena of nodes.
// A Tree is never modified after construction and may be shared freely.
type Tree struct {
	nodes []node
	root  int32
}

func (t *Tree) leaf(symbol byte, weight uint64) int32 {
	t.nodes = append(t.nodes, node{weight: weight, left: noChild, right: noChild, symbol: symbol})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) internal(left, right int32) int32 {
	var w uint64
	if left != noChild {
		w += t.nodes[left].weight
	}
	if right != noChild {
		w += t.nodes[right].weight
	}
	t.nodes = append(t.nodes, node{weight: w, left: left, right: right})
	return int32(len(t.nodes) - 1)
}

func (t *Tree) isLeaf(n int32) bool {
	return t.nodes[n].left == noChild && t.nodes[n].right == noChild
}

// Leaves returns the number of leaf nodes.
func (t *Tree) Leaves() (n int) {
	for i := range t.nodes {
		if t.isLeaf(int32(i)) {
			n++
		}
	}
	return n
}

// InternalNodes returns the number of non-leaf nodes.
func (t *Tree) InternalNodes() int {
	return len(t.nodes) - t.Leaves()
}

// Weight returns the weight of the root. Trees rebuilt from code lengths
// carry no weights and report 0.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].weight
}

// queued is a merge candidate. rank breaks weight ties: leaves rank by
// symbol value, merged nodes by 256 plus their creation order.
type queued struct {
	weight uint64
	rank   uint32
	handle int32
}

type mergeQueue []queued

func (q mergeQueue) Len() int { return len(q) }

func (q mergeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].rank < q[j].rank
}

func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *mergeQueue) Push(x any) { *q = append(*q, x.(queued)) }

func (q *mergeQueue) Pop() any {
	old := *q
	x := old[len(old)-1]
	*q = old[:len(old)-1]
	return x
}

// BuildTree builds the Huffman tree for freq by repeatedly merging the two
// lightest trees. The first tree taken becomes the left child.
// A single distinct symbol yields a tree made of one leaf.
func BuildTree(freq *FrequencyTable) (*Tree, error) {
	k := freq.Distinct()
	if k == 0 {
		return nil, ErrEmptyInput
	}
	t := &Tree{nodes: make([]node, 0, 2*k-1)}
	q := make(mergeQueue, 0, k)
	for sym, w := range freq {
		if w != 0 {
			q = append(q, queued{weight: w, rank: uint32(sym), handle: t.leaf(byte(sym), w)})
		}
	}
	heap.Init(&q)

	seq := uint32(256)
	for q.Len() > 1 {
		a := heap.Pop(&q).(queued)
		b := heap.Pop(&q).(queued)
		heap.Push(&q, queued{weight: a.weight + b.weight, rank: seq, handle: t.internal(a.handle, b.handle)})
		seq++
	}
	t.root = q[0].handle
	return t, nil
}

// CodeLengths returns the depth of every leaf, indexed by symbol.
// The sole leaf of a single-symbol tree has length 1.
func (t *Tree) CodeLengths() (lengths [256]uint8, err error) {
	if t == nil || len(t.nodes) == 0 {
		return lengths, ErrMissingTree
	}
	if t.isLeaf(t.root) {
		lengths[t.nodes[t.root].symbol] = 1
		return lengths, nil
	}
	type item struct {
		n     int32
		depth int
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isLeaf(it.n) {
			// depth never exceeds 255 with at most 256 leaves
			lengths[t.nodes[it.n].symbol] = uint8(it.depth)
			continue
		}
		if r := t.nodes[it.n].right; r != noChild {
			stack = append(stack, item{r, it.depth + 1})
		}
		if l := t.nodes[it.n].left; l != noChild {
			stack = append(stack, item{l, it.depth + 1})
		}
	}
	return lengths, nil
}
