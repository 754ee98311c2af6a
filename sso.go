// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Mode is the trust model a builder produces tokens for.
type Mode int

const (
	// ModeNone means neither a payload nor user data has been provided.
	ModeNone Mode = iota

	// ModeSecure tokens carry user data signed with a shared secret.
	ModeSecure

	// ModeSimple tokens carry the user data as-is.
	ModeSimple
)

func (m Mode) String() string {
	switch m {
	case ModeSecure:
		return "secure"
	case ModeSimple:
		return "simple"
	}
	return "none"
}

// source is the data a token is produced from.  It is implemented by Payload
// and SimpleUserData, so a builder can only ever hold one of them.
type source interface {
	Mode() Mode
	ToJSON() string
}

// SecretGetter gets the secret key to use when hashing.  If getting the secret
// is unsuccessful, an error can be returned.
type SecretGetter interface {
	GetSecret() (string, error)
}

// SSO builds the token sent to the FastComments service.  It holds either a
// secure payload or simple user data, and caches the token once it has been
// prepared.
//
// An SSO is not safe for concurrent use.
type SSO struct {
	src       source
	loginURL  *string
	logoutURL *string
	cached    *string

	now             func() time.Time
	logger          *zap.Logger
	metrics         *Measure
	opts            []Option
	tokenListeners  listeners[TokenEventListener]
	sourceListeners listeners[SourceEventListener]
}

// Option is an interface that is used to configure the SSO token builder.
type Option interface {
	fmt.Stringer
	apply(*SSO) error
}

func newSSO(opts []Option) (*SSO, error) {
	s := SSO{
		now:     time.Now,
		logger:  zap.NewNop(),
		metrics: new(Measure).init(),
		opts:    opts,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		err := opt.apply(&s)
		if err != nil {
			return nil, err
		}
	}

	return &s, nil
}

// NewSecure creates a secure mode builder.  The current time is captured once
// and the user data is signed with the secret key.
func NewSecure(secretKey string, user SecureUserData, opts ...Option) (*SSO, error) {
	s, err := newSSO(opts)
	if err != nil {
		return nil, err
	}

	p, err := s.sign(secretKey, user)
	if err != nil {
		return nil, err
	}

	s.set(p)
	return s, nil
}

// NewSecureWithSecretGetter creates a secure mode builder using the secret
// provided by the SecretGetter.
func NewSecureWithSecretGetter(g SecretGetter, user SecureUserData, opts ...Option) (*SSO, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil SecretGetter", ErrInput)
	}

	secret, err := g.GetSecret()
	if err != nil {
		return nil, multierr.Combine(err, fmt.Errorf("%w: unable to fetch the secret", ErrSecretUnavailable))
	}

	return NewSecure(secret, user, opts...)
}

// NewSimple creates a simple mode builder.  No hashing is done.
func NewSimple(user SimpleUserData, opts ...Option) (*SSO, error) {
	s, err := newSSO(opts)
	if err != nil {
		return nil, err
	}

	s.set(user)
	return s, nil
}

// NewSecureWithURLs creates a secure mode builder from a payload that was
// computed elsewhere.  The login and logout URLs are passed through as-is.
func NewSecureWithURLs(p Payload, loginURL, logoutURL string, opts ...Option) (*SSO, error) {
	s, err := newSSO(opts)
	if err != nil {
		return nil, err
	}

	s.loginURL = &loginURL
	s.logoutURL = &logoutURL
	s.set(p)
	return s, nil
}

// Mode returns the mode the builder is in.
func (s *SSO) Mode() Mode {
	if s.src == nil {
		return ModeNone
	}
	return s.src.Mode()
}

// LoginURL returns the login URL if one was provided.
func (s *SSO) LoginURL() (string, bool) {
	if s.loginURL == nil {
		return "", false
	}
	return *s.loginURL, true
}

// LogoutURL returns the logout URL if one was provided.
func (s *SSO) LogoutURL() (string, bool) {
	if s.logoutURL == nil {
		return "", false
	}
	return *s.logoutURL, true
}

// CreateToken renders the token for the active mode.  The cache is neither
// read nor written.  ErrNoUserData is returned if no payload or user data
// has been provided.
func (s *SSO) CreateToken() (string, error) {
	if s.src == nil {
		return "", ErrNoUserData
	}
	return s.src.ToJSON(), nil
}

// PrepareToSend returns the cached token, creating and caching it first if
// needed.  Repeated calls return the same token until the cache is reset or
// the source is replaced.
func (s *SSO) PrepareToSend() (string, error) {
	mode := s.Mode()

	if s.cached != nil {
		token := *s.cached
		s.measure().Token.incCached()
		s.dispatchToken(TokenEvent{Mode: mode, Cached: true, Size: len(token)})
		return token, nil
	}

	token, err := s.CreateToken()
	if err != nil {
		s.measure().Token.incNoUserData()
		s.log().Error("unable to prepare the sso token", zap.Error(err))
		s.dispatchToken(TokenEvent{Mode: mode, Err: err})
		return "", err
	}

	s.cached = &token

	m := s.measure()
	m.Token.incCreated()
	m.TokenSize.Observe(float64(len(token)))
	s.log().Debug("prepared sso token",
		zap.Stringer("mode", mode),
		zap.Int("size", len(token)))
	s.dispatchToken(TokenEvent{Mode: mode, Size: len(token)})

	return token, nil
}

// ResetToken clears the cached token.  The payload or user data is kept.
func (s *SSO) ResetToken() {
	s.cached = nil
	s.measure().TokenReset.Add(1)
}

// SetSecurePayload switches the builder to secure mode using the payload.
// Any simple user data and the cached token are discarded.
func (s *SSO) SetSecurePayload(p Payload) {
	s.set(p)
}

// SetSimpleUserData switches the builder to simple mode using the user data.
// Any secure payload and the cached token are discarded.
func (s *SSO) SetSimpleUserData(u SimpleUserData) {
	s.set(u)
}

// AddTokenEventListener adds a listener for token events.  The returned
// function removes the listener.
func (s *SSO) AddTokenEventListener(l TokenEventListener) CancelEventListenerFunc {
	return s.tokenListeners.add(l)
}

// AddSourceEventListener adds a listener for source events.  The returned
// function removes the listener.
func (s *SSO) AddSourceEventListener(l SourceEventListener) CancelEventListenerFunc {
	return s.sourceListeners.add(l)
}

// String returns a string representation of the builder and the options used
// to configure it.
func (s *SSO) String() string {
	buf := strings.Builder{}

	buf.WriteString("SSO(")
	buf.WriteString(s.Mode().String())
	for _, opt := range s.opts {
		if opt == nil {
			continue
		}
		buf.WriteString(", ")
		buf.WriteString(opt.String())
	}
	buf.WriteString(")")

	return buf.String()
}

// sign builds a payload for the user at the current time of the builder's
// clock.
func (s *SSO) sign(secretKey string, user SecureUserData) (Payload, error) {
	now := time.Now
	if s.now != nil {
		now = s.now
	}

	p, err := NewSecurePayload(secretKey, user, now())
	if err != nil {
		s.measure().Hash.incFailure()
		s.log().Error("failed to create verification hash", zap.Error(err))
		return Payload{}, err
	}

	s.measure().Hash.incValid()
	s.log().Debug("signed sso user data",
		zap.String("user_id", user.UserID),
		zap.Int64("timestamp", p.Timestamp))

	return p, nil
}

// set replaces the source and invalidates the cached token.
func (s *SSO) set(src source) {
	from := s.Mode()

	s.src = src
	s.cached = nil

	to := s.Mode()
	s.measure().SourceChanged.inc(to)
	s.log().Debug("sso source set",
		zap.Stringer("from", from),
		zap.Stringer("to", to))

	s.sourceListeners.visit(func(l SourceEventListener) {
		l.OnSourceEvent(SourceEvent{From: from, To: to})
	})
}

func (s *SSO) dispatchToken(e TokenEvent) {
	s.tokenListeners.visit(func(l TokenEventListener) {
		l.OnTokenEvent(e)
	})
}

func (s *SSO) log() *zap.Logger {
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s.logger
}

func (s *SSO) measure() *Measure {
	if s.metrics == nil {
		s.metrics = new(Measure).init()
	}
	return s.metrics
}
