// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import "time"

// Payload is the secure mode token.  The VerificationHash is expected to be
// the HMAC of Timestamp and UserDataJSONBase64 under a secret shared with the
// remote service; it is never recomputed once the payload exists.
type Payload struct {
	UserDataJSONBase64 string
	VerificationHash   string
	Timestamp          int64
}

// NewPayload creates a payload from values that were already computed, for
// example by a trusted backend.
func NewPayload(userDataJSONBase64, verificationHash string, timestamp int64) Payload {
	return Payload{
		UserDataJSONBase64: userDataJSONBase64,
		VerificationHash:   verificationHash,
		Timestamp:          timestamp,
	}
}

// NewSecurePayload encodes the user data and signs it with the secret key
// using the unix time of at.
func NewSecurePayload(secretKey string, user SecureUserData, at time.Time) (Payload, error) {
	timestamp := at.Unix()
	encoded := user.AsJSONBase64()

	sum, err := ComputeVerificationHash(secretKey, timestamp, encoded)
	if err != nil {
		return Payload{}, err
	}

	return NewPayload(encoded, sum, timestamp), nil
}

// ToJSON returns the canonical JSON form of the payload.  This is the secure
// mode token.
func (p Payload) ToJSON() string {
	var o object
	o.num("timestamp", p.Timestamp).
		str("user_data_json_base64", p.UserDataJSONBase64).
		str("verification_hash", p.VerificationHash)
	return o.String()
}

// Mode returns ModeSecure.
func (p Payload) Mode() Mode {
	return ModeSecure
}
