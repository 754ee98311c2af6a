// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package sso_test

import (
	"fmt"
	"time"

	sso "github.com/fastcomments/sso-go"
	"github.com/fastcomments/sso-go/secret"
)

func ExampleNewSecure() {
	user := sso.SecureUserData{
		UserID:   "u1",
		Email:    "e@x.com",
		Username: "un",
		Avatar:   "a.jpg",
	}

	s, err := sso.NewSecure("test-api-key-12345", user,
		sso.Timestamp(1700000000),
	)
	if err != nil {
		panic(err)
	}

	token, err := s.PrepareToSend()
	if err != nil {
		panic(err)
	}

	fmt.Println(token)
	// Output:
	// {
	//     "timestamp": 1700000000,
	//     "user_data_json_base64": "ewogICAgImF2YXRhciI6ICJhLmpwZyIsCiAgICAiZW1haWwiOiAiZUB4LmNvbSIsCiAgICAidXNlcl9pZCI6ICJ1MSIsCiAgICAidXNlcm5hbWUiOiAidW4iCn0=",
	//     "verification_hash": "4cd2db9a31a6b63bda2ca8888e07dcdbd7c6a84ec5180137c7c54fc5d51ccd7c"
	// }
}

func ExampleNewSimple() {
	s, err := sso.NewSimple(sso.SimpleUserData{
		UserID: "u1",
		Email:  "e@x.com",
		Avatar: "a.jpg",
	})
	if err != nil {
		panic(err)
	}

	token, err := s.PrepareToSend()
	if err != nil {
		panic(err)
	}

	fmt.Println(token)
	// Output:
	// {
	//     "avatar": "a.jpg",
	//     "email": "e@x.com",
	//     "user_id": "u1"
	// }
}

func ExampleNewSecureWithURLs() {
	// The payload is usually computed by a backend holding the secret.
	p, err := sso.NewSecurePayload("test-api-key-12345", sso.SecureUserData{UserID: "u1"},
		time.Unix(1700000000, 0))
	if err != nil {
		panic(err)
	}

	s, err := sso.NewSecureWithURLs(p, "https://example.com/login", "https://example.com/logout")
	if err != nil {
		panic(err)
	}

	login, _ := s.LoginURL()
	logout, _ := s.LogoutURL()
	fmt.Println(s.Mode(), login, logout)
	// Output: secure https://example.com/login https://example.com/logout
}

func ExampleNewSecureWithSecretGetter() {
	s, err := sso.NewSecureWithSecretGetter(
		secret.NewConstantSecret("test-api-key-12345"),
		sso.SecureUserData{UserID: "u1", Email: "e@x.com", Username: "un", Avatar: "a.jpg"},
		sso.Timestamp(1700000000),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(s.String())
	// Output: SSO(secure, Timestamp(1700000000))
}
