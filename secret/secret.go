// SPDX-FileCopyrightText: 2019 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package secret provides sources for the secret key used to sign secure SSO
// tokens.
package secret

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotSet is returned when the secret has no value.
var ErrNotSet = errors.New("secret not set")

// DefaultEnvVar is the environment variable conventionally holding the tenant
// API key.
const DefaultEnvVar = "FASTCOMMENTS_API_KEY"

type constantSecret struct {
	secret string
}

func (c *constantSecret) GetSecret() (string, error) {
	return c.secret, nil
}

// NewConstantSecret returns a getter that always returns the secret given.
func NewConstantSecret(secret string) *constantSecret {
	return &constantSecret{
		secret: secret,
	}
}

type envSecret struct {
	name string
}

func (e *envSecret) GetSecret() (string, error) {
	val := os.Getenv(e.name)
	if val == "" {
		return "", fmt.Errorf("%w: environment variable %s is empty", ErrNotSet, e.name)
	}
	return val, nil
}

// NewEnvSecret returns a getter that reads the secret from the named
// environment variable each time it is asked.  The value is returned as-is,
// since any change to it changes the signature.  An empty name uses
// DefaultEnvVar.
func NewEnvSecret(name string) *envSecret {
	if name == "" {
		name = DefaultEnvVar
	}
	return &envSecret{
		name: name,
	}
}
