// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"errors"
)

var (
	ErrInput             = errors.New("invalid input")
	ErrNoUserData        = errors.New("no user data provided")
	ErrHashComputation   = errors.New("failed to create verification hash")
	ErrSecretUnavailable = errors.New("secret unavailable")
)
