// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso

import "encoding/base64"

// SecureUserData describes the user asserted by a secure SSO token.  The
// values are not validated; that is the job of the caller.
type SecureUserData struct {
	UserID   string
	Email    string
	Username string
	Avatar   string
}

// ToJSON returns the canonical JSON form of the user data.  The keys are in
// alphabetical order.
func (u SecureUserData) ToJSON() string {
	var o object
	o.str("avatar", u.Avatar).
		str("email", u.Email).
		str("user_id", u.UserID).
		str("username", u.Username)
	return o.String()
}

// AsJSONBase64 returns the canonical JSON encoded with standard, padded
// base64.  This is the value the verification hash is computed over.
func (u SecureUserData) AsJSONBase64() string {
	return base64.StdEncoding.EncodeToString([]byte(u.ToJSON()))
}

// SimpleUserData describes the user asserted by a simple SSO token.
type SimpleUserData struct {
	UserID string
	Email  string
	Avatar string
}

// ToJSON returns the canonical JSON form of the user data, which is also the
// simple mode token.
func (u SimpleUserData) ToJSON() string {
	var o object
	o.str("avatar", u.Avatar).
		str("email", u.Email).
		str("user_id", u.UserID)
	return o.String()
}

// Mode returns ModeSimple.
func (u SimpleUserData) Mode() Mode {
	return ModeSimple
}
