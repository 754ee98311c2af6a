// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"reflect"

	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
)

// Measure is a struct that holds the metrics used by the SSO token builder.
// The default is to use a no-op metric for each.
type Measure struct {
	// Token is a metric and configuration that holds the number of times a
	// token has been requested with PrepareToSend() and its outcome.
	Token MeasureToken

	// Hash is a metric and configuration that holds the number of times the
	// verification hash has been computed and its outcome.
	Hash MeasureHash

	// SourceChanged is a metric and configuration that holds the number of
	// times the user data or payload of a builder has been set.
	SourceChanged MeasureSourceChanged

	// TokenReset is a counter that holds the number of times the cached token
	// has been reset.
	//
	// With() is not called.
	TokenReset metrics.Counter `default:"discard.NewCounter()"`

	// TokenSize is a histogram of the size in bytes of the tokens created.
	//
	// With() is not called.
	TokenSize metrics.Histogram `default:"discard.NewHistogram()"`
}

func (m *Measure) init() *Measure {
	if m != nil {
		setDefaults(m)
	}
	return m
}

// MeasureToken is a metric and configuration that holds the number of times a
// token has been requested.  The outcome is used as the label.
//
// Counter.With(Label, Outcome).Add(1) is called.
type MeasureToken struct {
	Label      string          `default:"outcome"`
	Created    string          `default:"created"`
	Cached     string          `default:"cached"`
	NoUserData string          `default:"failure_no_user_data"`
	Counter    metrics.Counter `default:"discard.NewCounter()"`
}

func (m *MeasureToken) incCreated() {
	m.Counter.With(m.Label, m.Created).Add(1)
}

func (m *MeasureToken) incCached() {
	m.Counter.With(m.Label, m.Cached).Add(1)
}

func (m *MeasureToken) incNoUserData() {
	m.Counter.With(m.Label, m.NoUserData).Add(1)
}

// MeasureHash is a metric and configuration that holds the number of times
// the verification hash has been computed.  The outcome is used as the label.
//
// Counter.With(Label, Outcome).Add(1) is called.
type MeasureHash struct {
	Label   string          `default:"outcome"`
	Valid   string          `default:"success"`
	Failure string          `default:"failure_hash_computation"`
	Counter metrics.Counter `default:"discard.NewCounter()"`
}

func (m *MeasureHash) incValid() {
	m.Counter.With(m.Label, m.Valid).Add(1)
}

func (m *MeasureHash) incFailure() {
	m.Counter.With(m.Label, m.Failure).Add(1)
}

// MeasureSourceChanged is a metric and configuration that holds the number of
// times the source of the token has been set.  The new mode is used as the
// label.
//
// Counter.With(Label, mode).Add(1) is called.
type MeasureSourceChanged struct {
	Label   string          `default:"mode"`
	Counter metrics.Counter `default:"discard.NewCounter()"`
}

func (m *MeasureSourceChanged) inc(mode Mode) {
	m.Counter.With(m.Label, mode.String()).Add(1)
}

// setDefaults sets the default values for any field that has not been set.
func setDefaults(obj any) {
	valueOf := reflect.ValueOf(obj).Elem()

	for i := 0; i < valueOf.NumField(); i++ {
		field := valueOf.Field(i)
		fieldType := valueOf.Type().Field(i)
		tag := fieldType.Tag.Get("default")

		switch field.Kind() {
		case reflect.String:
			if tag != "" && field.IsZero() {
				field.SetString(tag)
			}
			continue
		case reflect.Struct:
			setDefaults(field.Addr().Interface())
			continue
		}

		switch field.Type().String() {
		case "metrics.Counter":
			if field.IsNil() {
				if tag != "discard.NewCounter()" {
					panic("invalid default value for counter")
				}
				field.Set(reflect.ValueOf(discard.NewCounter()))
			}
		case "metrics.Histogram":
			if field.IsNil() {
				if tag != "discard.NewHistogram()" {
					panic("invalid default value for histogram")
				}
				field.Set(reflect.ValueOf(discard.NewHistogram()))
			}
		}
	}
}
