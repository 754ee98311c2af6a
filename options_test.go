// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOptionStrings(t *testing.T) {
	tests := []struct {
		in       Option
		expected string
	}{
		{
			in:       Logger(zap.NewNop()),
			expected: "Logger(zap)",
		}, {
			in:       Logger(nil),
			expected: "Logger(nil)",
		}, {
			in:       Metrics(new(Measure)),
			expected: "Metrics(metrics)",
		}, {
			in:       Metrics(nil),
			expected: "Metrics(nil)",
		}, {
			in:       Clock(time.Now),
			expected: "Clock(fn)",
		}, {
			in:       Clock(nil),
			expected: "Clock(nil)",
		}, {
			in:       Timestamp(1700000000),
			expected: "Timestamp(1700000000)",
		}, {
			in:       TokenListener(TokenEventListenerFunc(func(TokenEvent) {})),
			expected: "TokenListener(listener)",
		}, {
			in:       TokenListener(nil),
			expected: "TokenListener(nil)",
		}, {
			in:       SourceListener(SourceEventListenerFunc(func(SourceEvent) {})),
			expected: "SourceListener(listener)",
		}, {
			in:       SourceListener(nil),
			expected: "SourceListener(nil)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.in.String())
		})
	}
}

// failingOption is an option that always fails to apply.
type failingOption struct{}

func (failingOption) apply(*SSO) error {
	return fmt.Errorf("%w: failing option", ErrInput)
}

func (failingOption) String() string {
	return "failingOption()"
}

type newTest struct {
	description string
	opt         Option
	opts        []Option
	check       func(*assert.Assertions, *SSO)
	expectedErr error
}

func commonNewTest(t *testing.T, tests []newTest) {
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			opts := append(tc.opts, tc.opt)

			s, err := NewSimple(testSimpleUser, opts...)

			if tc.expectedErr != nil {
				assert.ErrorIs(err, tc.expectedErr)
				assert.Nil(s)
				return
			}

			require.NoError(err)
			require.NotNil(s)
			if tc.check != nil {
				tc.check(assert, s)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	logger, err := zap.NewProduction()
	require.NoError(t, err)

	tests := []newTest{
		{
			description: "assert default logger is there",
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotNil(s.logger)
			},
		}, {
			description: "assert specified logger is there",
			opt:         Logger(logger),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(s.logger, logger)
			},
		}, {
			description: "assert nil logger is there",
			opts:        []Option{Logger(logger), Logger(nil)},
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotNil(s.logger)
				assert.NotEqual(s.logger, logger)
			},
		},
	}
	commonNewTest(t, tests)
}

func TestMetrics(t *testing.T) {
	metrics := Measure{
		Token: MeasureToken{
			Label: "label",
		},
	}

	tests := []newTest{
		{
			description: "assert default metrics is there",
			check: func(assert *assert.Assertions, s *SSO) {
				tmp := new(Measure).init()
				assert.Equal(s.metrics, tmp)
			},
		}, {
			description: "assert specified metrics is there",
			opt:         Metrics(&metrics),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(&metrics, s.metrics)
				assert.Equal("label", s.metrics.Token.Label)
				assert.Equal("created", s.metrics.Token.Created)
				assert.NotNil(s.metrics.Token.Counter)
			},
		}, {
			description: "assert nil metrics is there",
			opts:        []Option{Metrics(&metrics), Metrics(nil)},
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotSame(&metrics, s.metrics)
				assert.Equal(new(Measure).init(), s.metrics)
			},
		},
	}
	commonNewTest(t, tests)
}

func TestClock(t *testing.T) {
	fixed := time.Unix(vectorTimestamp, 0)

	tests := []newTest{
		{
			description: "assert default clock is there",
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotNil(s.now)
			},
		}, {
			description: "assert specified clock is there",
			opt:         Clock(func() time.Time { return fixed }),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(fixed, s.now())
			},
		}, {
			description: "assert nil clock is there",
			opts:        []Option{Clock(func() time.Time { return fixed }), Clock(nil)},
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotNil(s.now)
				assert.NotEqual(fixed, s.now())
			},
		}, {
			description: "assert timestamp is there",
			opt:         Timestamp(vectorTimestamp),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(vectorTimestamp, s.now().Unix())
			},
		}, {
			description: "negative timestamp",
			opt:         Timestamp(-5),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(int64(-5), s.now().Unix())
			},
		}, {
			description: "zero timestamp",
			opt:         Timestamp(0),
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Equal(int64(0), s.now().Unix())
			},
		}, {
			description: "failing option",
			opts:        []Option{Timestamp(1), failingOption{}},
			expectedErr: ErrInput,
		},
	}
	commonNewTest(t, tests)
}

func TestListenerOptions(t *testing.T) {
	var (
		tokenCancel  CancelEventListenerFunc
		sourceCancel CancelEventListenerFunc
		count        int
	)

	tests := []newTest{
		{
			description: "nil listeners are ignored",
			opts:        []Option{TokenListener(nil, &tokenCancel), SourceListener(nil, &sourceCancel)},
			check: func(assert *assert.Assertions, s *SSO) {
				assert.Nil(tokenCancel)
				assert.Nil(sourceCancel)
			},
		}, {
			description: "listeners are added",
			opts: []Option{
				TokenListener(TokenEventListenerFunc(func(TokenEvent) { count++ }), &tokenCancel, nil),
				SourceListener(SourceEventListenerFunc(func(SourceEvent) { count++ }), &sourceCancel),
			},
			check: func(assert *assert.Assertions, s *SSO) {
				assert.NotNil(tokenCancel)
				assert.NotNil(sourceCancel)

				count = 0
				_, err := s.PrepareToSend()
				assert.NoError(err)
				s.SetSimpleUserData(testSimpleUser)
				assert.Equal(2, count)

				tokenCancel()
				sourceCancel()

				_, err = s.PrepareToSend()
				assert.NoError(err)
				s.SetSimpleUserData(testSimpleUser)
				assert.Equal(2, count)
			},
		},
	}
	commonNewTest(t, tests)
}
