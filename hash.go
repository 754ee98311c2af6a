// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"

	"github.com/goph/emperror"
	"go.uber.org/multierr"
)

// ComputeVerificationHash returns the lowercase hex HMAC-SHA256 of the decimal
// timestamp immediately followed by the encoded user data, keyed with the
// secret.  The remote service performs the same computation, so the message
// layout is part of the wire contract.
//
// An error is only returned if the hash primitive itself fails; it matches
// ErrHashComputation.
func ComputeVerificationHash(secretKey string, timestamp int64, encodedUserData string) (string, error) {
	return computeVerificationHash(sha256.New, secretKey, timestamp, encodedUserData)
}

func computeVerificationHash(fn func() hash.Hash, secretKey string, timestamp int64, encodedUserData string) (sum string, err error) {
	defer func() {
		if r := recover(); r != nil {
			sum = ""
			err = multierr.Combine(
				emperror.With(fmt.Errorf("hash primitive panicked: %v", r), "timestamp", timestamp),
				ErrHashComputation,
			)
		}
	}()

	msg := strconv.FormatInt(timestamp, 10) + encodedUserData

	h := hmac.New(fn, []byte(secretKey))
	if _, err := h.Write([]byte(msg)); err != nil {
		return "", multierr.Combine(
			emperror.Wrap(err, "unable to write the message"),
			ErrHashComputation,
		)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
