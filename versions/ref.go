/*
Package versions publishes successive versions of a persistent AA tree.

A Ref holds the most recently published version of a tree. Writers derive a
new version from the current one and publish it; readers load the current
version and work with it as long as they like, as published versions never
change. Subscribers receive every newly published version in order.

	ref, _ := versions.NewRef(ctx, aatree.NewOrdered[string, int]())
	ref.Update(func(t *aatree.Tree[string, int]) *aatree.Tree[string, int] {
	    return t.Select("hits").Set(1)
	})

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package versions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/aatree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'aatree'
func tracer() tracing.Trace {
	return tracing.Select("aatree")
}

// ErrClosed is returned for operations on a closed Ref.
var ErrClosed = errors.New("versions: ref is closed")

// Version is a published tree together with its sequence number. The initial
// tree of a Ref has sequence number 0.
type Version[K, V any] struct {
	Seq  uint64
	Tree *aatree.Tree[K, V]
}

// Ref is a mutable reference to immutable trees. It is safe for concurrent
// use. Publishing is serialized; loading never blocks.
type Ref[K, V any] struct {
	mu      sync.Mutex // serializes publishers
	current atomic.Pointer[Version[K, V]]
	cast    *caster.Caster // broadcasts *Version[K, V]
	closed  atomic.Bool
}

// NewRef creates a Ref with initial as its first version. Cancelling ctx
// terminates all subscriptions.
func NewRef[K, V any](ctx context.Context, initial *aatree.Tree[K, V]) (*Ref[K, V], error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: initial tree is nil", aatree.ErrInvalidConfig)
	}
	ref := &Ref[K, V]{cast: caster.New(ctx)}
	ref.current.Store(&Version[K, V]{Tree: initial})
	return ref, nil
}

// Load returns the current tree.
func (ref *Ref[K, V]) Load() *aatree.Tree[K, V] {
	return ref.current.Load().Tree
}

// Current returns the current tree together with its sequence number.
func (ref *Ref[K, V]) Current() Version[K, V] {
	return *ref.current.Load()
}

// Update publishes the tree returned by fn, which receives the current tree.
// If fn returns the current tree itself or nil, nothing is published.
// Update returns the tree which is current after the call.
func (ref *Ref[K, V]) Update(fn func(*aatree.Tree[K, V]) *aatree.Tree[K, V]) (*aatree.Tree[K, V], error) {
	ref.mu.Lock()
	defer ref.mu.Unlock()
	if ref.closed.Load() {
		return nil, ErrClosed
	}
	cur := ref.current.Load()
	next := fn(cur.Tree)
	if next == nil || next == cur.Tree {
		return cur.Tree, nil
	}
	ref.publish(cur, next)
	return next, nil
}

// CompareAndSwap publishes next if old is still the current tree, and
// reports whether it did. Clients derive next from old, typically through
// a cursor:
//
//	old := ref.Load()
//	ok, err := ref.CompareAndSwap(old, old.Select(k).Unset())
func (ref *Ref[K, V]) CompareAndSwap(old, next *aatree.Tree[K, V]) (bool, error) {
	if next == nil {
		return false, fmt.Errorf("%w: cannot publish nil tree", aatree.ErrInvalidConfig)
	}
	ref.mu.Lock()
	defer ref.mu.Unlock()
	if ref.closed.Load() {
		return false, ErrClosed
	}
	cur := ref.current.Load()
	if cur.Tree != old {
		return false, nil
	}
	if next != old {
		ref.publish(cur, next)
	}
	return true, nil
}

// publish must be called with ref.mu held.
func (ref *Ref[K, V]) publish(cur *Version[K, V], tree *aatree.Tree[K, V]) {
	v := &Version[K, V]{Seq: cur.Seq + 1, Tree: tree}
	ref.current.Store(v)
	if !ref.cast.Pub(v) {
		tracer().Infof("versions: version %d not broadcast, caster is done", v.Seq)
	}
}

// Subscribe returns a channel receiving every version published after the
// call, in order. The channel is closed when ctx is done, or when the Ref is
// closed or its context is cancelled.
//
// Subscribers which do not keep up delay publishers once capacity is
// exhausted.
func (ref *Ref[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan Version[K, V], error) {
	if ref.closed.Load() {
		return nil, ErrClosed
	}
	// sub is detached by forward rather than by the caster watching ctx, so
	// that it is closed exactly once.
	sub, ok := ref.cast.Sub(context.Background(), capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan Version[K, V], capacity)
	go ref.forward(ctx, sub, out)
	tracer().Debugf("versions: new subscriber at version %d", ref.current.Load().Seq)
	return out, nil
}

func (ref *Ref[K, V]) forward(ctx context.Context, sub chan interface{}, out chan<- Version[K, V]) {
	defer close(out)
	for {
		select {
		case msg, ok := <-sub:
			if !ok {
				return
			}
			v, isVersion := msg.(*Version[K, V])
			if !isVersion {
				tracer().Errorf("versions: unexpected broadcast message %T", msg)
				continue
			}
			select {
			case out <- *v:
			case <-ctx.Done():
				ref.unsubscribe(sub)
				return
			}
		case <-ctx.Done():
			ref.unsubscribe(sub)
			return
		}
	}
}

// unsubscribe detaches sub from the caster. The caster may be blocked sending
// to sub, therefore sub is drained until the caster has closed it.
func (ref *Ref[K, V]) unsubscribe(sub chan interface{}) {
	go ref.cast.Unsub(sub)
	for range sub {
	}
	tracer().Debugf("versions: subscriber left")
}

// Close terminates all subscriptions. Subsequent updates fail with ErrClosed;
// Load continues to return the last published tree.
func (ref *Ref[K, V]) Close() {
	ref.mu.Lock()
	defer ref.mu.Unlock()
	if ref.closed.Swap(true) {
		return
	}
	ref.cast.Close()
}
