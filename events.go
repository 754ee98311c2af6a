// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

// TokenEvent is an event that occurs during the PrepareToSend() call.
//
// Cached reports whether the token came from the cache.  Size holds the
// length of the token in bytes.  Any error that occurs is included.
type TokenEvent struct {
	// Mode holds the mode of the builder when the token was requested.
	Mode Mode

	// Cached is true when the previously prepared token was returned.
	Cached bool

	// Size holds the length of the token in bytes.
	Size int

	// Err holds any error that occurred while preparing the token.
	Err error
}

// TokenEventListener is a sink for token events.
type TokenEventListener interface {
	OnTokenEvent(TokenEvent)
}

// TokenEventListenerFunc is an adapter to allow the use of ordinary functions
// as token event listeners.
type TokenEventListenerFunc func(TokenEvent)

func (f TokenEventListenerFunc) OnTokenEvent(e TokenEvent) {
	f(e)
}

// SourceEvent is an event that occurs when the user data or payload of a
// builder is set.
type SourceEvent struct {
	// From holds the mode before the change.
	From Mode

	// To holds the mode after the change.
	To Mode
}

// SourceEventListener is a sink for source events.
type SourceEventListener interface {
	OnSourceEvent(SourceEvent)
}

// SourceEventListenerFunc is an adapter to allow the use of ordinary functions
// as source event listeners.
type SourceEventListenerFunc func(SourceEvent)

func (f SourceEventListenerFunc) OnSourceEvent(e SourceEvent) {
	f(e)
}
