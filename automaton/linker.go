// SPDX-License-Identifier: MIT

package automaton

import "github.com/katalvlaran/acgt/alphabet"

// linker encapsulates the mutable state of the breadth-first failure-link
// construction.
type linker struct {
	a     *Automaton
	opts  Options
	queue []NodeID
}

func newLinker(a *Automaton, opts Options) *linker {
	return &linker{
		a:     a,
		opts:  opts,
		queue: make([]NodeID, 0, a.nodes),
	}
}

// run seeds the work-list from the root row, completing it, then links
// every remaining node in FIFO order.
func (l *linker) run() {
	for sym := 0; sym < alphabet.Size; sym++ {
		slot := l.a.slot(Root, sym)
		child := l.a.next[slot]
		if child == Absent {
			l.a.next[slot] = Root
			continue
		}
		l.link(child, Root)
		l.enqueue(child)
	}

	for len(l.queue) > 0 {
		l.linkChildren(l.dequeue())
	}
}

// enqueue calls OnEnqueue and appends node to the work-list.
func (l *linker) enqueue(node NodeID) {
	l.opts.OnEnqueue(node, l.a.depth[node])
	l.queue = append(l.queue, node)
}

// dequeue pops the first node and calls OnDequeue.
func (l *linker) dequeue() NodeID {
	node := l.queue[0]
	l.queue = l.queue[1:]
	l.opts.OnDequeue(node, l.a.depth[node])
	return node
}

// linkChildren resolves the failure link of every direct child of u.
// u's own link is already final because u is shallower than its children.
func (l *linker) linkChildren(u NodeID) {
	for sym := 0; sym < alphabet.Size; sym++ {
		v := l.a.next[l.a.slot(u, sym)]
		if v == Absent {
			continue
		}
		f := l.a.fail[u]
		// terminates: the root row is total
		for l.a.next[l.a.slot(f, sym)] == Absent {
			f = l.a.fail[f]
		}
		l.link(v, l.a.next[l.a.slot(f, sym)])
		l.enqueue(v)
	}
}

// link stores fail as v's failure link and merges fail's outputs into v's.
func (l *linker) link(v, fail NodeID) {
	l.a.fail[v] = fail
	l.a.out[v].insertAll(l.a.out[fail])
	l.opts.OnLink(v, fail)
}
