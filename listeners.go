// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"container/list"
	"sync"
)

// CancelEventListenerFunc removes the listener it's associated with and cancels any
// future events sent to that listener.
//
// A CancelEventListenerFunc is idempotent:  after the first invocation, calling this
// closure will have no effect.
type CancelEventListenerFunc func()

// listeners is a container of event sinks of a single type that is safe for
// concurrent access and dispatch.
type listeners[T any] struct {
	lock sync.RWMutex
	list *list.List
}

// add inserts a new listener and returns a closure that will remove it.
func (l *listeners[T]) add(newListener T) CancelEventListenerFunc {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.list == nil {
		l.list = list.New()
	}

	e := l.list.PushBack(newListener)
	return func() {
		l.lock.Lock()
		defer l.lock.Unlock()

		// NOTE: Remove is idempotent: it will not do anything if e is not in the list
		l.list.Remove(e)
	}
}

// visit applies the given closure to each listener in the list.
func (l *listeners[T]) visit(f func(T)) {
	l.lock.RLock()
	defer l.lock.RUnlock()

	if l.list == nil {
		return
	}

	for e := l.list.Front(); e != nil; e = e.Next() {
		f(e.Value.(T))
	}
}
