// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Logger is an option that provides the logger to use.  A nil value will
// cause a no-op logger to be used.
func Logger(logger *zap.Logger) Option {
	return &loggerOption{
		logger: logger,
	}
}

type loggerOption struct {
	logger *zap.Logger
}

func (l loggerOption) apply(s *SSO) error {
	if l.logger == nil {
		s.logger = zap.NewNop()
		return nil
	}

	s.logger = l.logger
	return nil
}

func (l loggerOption) String() string {
	if l.logger != nil {
		return "Logger(zap)"
	}
	return "Logger(nil)"
}

// Metrics is an option that provides the metrics to use.  Any metric left
// unset is replaced with a no-op metric.  A nil value will cause no-op
// metrics to be used.
func Metrics(m *Measure) Option {
	return &metricsOption{
		m: m,
	}
}

type metricsOption struct {
	m *Measure
}

func (m metricsOption) apply(s *SSO) error {
	if m.m == nil {
		s.metrics = new(Measure).init()
		return nil
	}

	s.metrics = m.m.init()
	return nil
}

func (m metricsOption) String() string {
	if m.m != nil {
		return "Metrics(metrics)"
	}
	return "Metrics(nil)"
}

// Clock is an option that provides the function used to read the current
// time when a secure payload is signed.  A nil value will cause time.Now to
// be used.
func Clock(now func() time.Time) Option {
	text := "Clock(nil)"
	if now != nil {
		text = "Clock(fn)"
	}
	return &clockOption{
		text: text,
		now:  now,
	}
}

// Timestamp is an option that fixes the unix time, in seconds, used when a
// secure payload is signed.
func Timestamp(ts int64) Option {
	return &clockOption{
		text: fmt.Sprintf("Timestamp(%d)", ts),
		now: func() time.Time {
			return time.Unix(ts, 0)
		},
	}
}

type clockOption struct {
	text string
	now  func() time.Time
}

func (c clockOption) apply(s *SSO) error {
	if c.now == nil {
		s.now = time.Now
		return nil
	}

	s.now = c.now
	return nil
}

func (c clockOption) String() string {
	return c.text
}

// TokenListener is an option that adds a listener for token events.  If a
// cancel pointer is provided, it is set to the function that removes the
// listener.  A nil listener is ignored.
func TokenListener(l TokenEventListener, cancel ...*CancelEventListenerFunc) Option {
	return &tokenListenerOption{
		l:      l,
		cancel: cancel,
	}
}

type tokenListenerOption struct {
	l      TokenEventListener
	cancel []*CancelEventListenerFunc
}

func (t tokenListenerOption) apply(s *SSO) error {
	if t.l == nil {
		return nil
	}

	setCancel(s.AddTokenEventListener(t.l), t.cancel)
	return nil
}

func (t tokenListenerOption) String() string {
	if t.l != nil {
		return "TokenListener(listener)"
	}
	return "TokenListener(nil)"
}

// SourceListener is an option that adds a listener for source events.  If a
// cancel pointer is provided, it is set to the function that removes the
// listener.  A nil listener is ignored.
func SourceListener(l SourceEventListener, cancel ...*CancelEventListenerFunc) Option {
	return &sourceListenerOption{
		l:      l,
		cancel: cancel,
	}
}

type sourceListenerOption struct {
	l      SourceEventListener
	cancel []*CancelEventListenerFunc
}

func (o sourceListenerOption) apply(s *SSO) error {
	if o.l == nil {
		return nil
	}

	setCancel(s.AddSourceEventListener(o.l), o.cancel)
	return nil
}

func (o sourceListenerOption) String() string {
	if o.l != nil {
		return "SourceListener(listener)"
	}
	return "SourceListener(nil)"
}

func setCancel(fn CancelEventListenerFunc, cancels []*CancelEventListenerFunc) {
	for _, c := range cancels {
		if c != nil {
			*c = fn
		}
	}
}
