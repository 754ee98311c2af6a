// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Command ssotoken prints a FastComments SSO token for the user described by
// its flags, environment, or config file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	sso "github.com/fastcomments/sso-go"
	"github.com/fastcomments/sso-go/secret"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	v, err := newConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(v),
		fx.Provide(
			newLogger,
			newMeasure,
			newSecretGetter,
			newSSO,
		),
		fx.Invoke(
			func(s *sso.SSO) error {
				return printToken(os.Stdout, s)
			},
			func(v *viper.Viper, g prometheus.Gatherer) error {
				if !v.GetBool("metrics") {
					return nil
				}
				return writeMetrics(os.Stderr, g)
			},
		),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if !v.GetBool("verbose") {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// newSecretGetter prefers an explicit key and falls back to reading the
// environment variable named by --api-key-env.
func newSecretGetter(v *viper.Viper) sso.SecretGetter {
	if key := v.GetString("api-key"); key != "" {
		return secret.NewConstantSecret(key)
	}
	return secret.NewEnvSecret(v.GetString("api-key-env"))
}

func newSSO(v *viper.Viper, logger *zap.Logger, m *sso.Measure, g sso.SecretGetter) (*sso.SSO, error) {
	opts := []sso.Option{
		sso.Logger(logger),
		sso.Metrics(m),
	}
	if v.IsSet("timestamp") {
		opts = append(opts, sso.Timestamp(v.GetInt64("timestamp")))
	}

	if v.GetString("mode") == "simple" {
		return sso.NewSimple(sso.SimpleUserData{
			UserID: v.GetString("user-id"),
			Email:  v.GetString("email"),
			Avatar: v.GetString("avatar"),
		}, opts...)
	}

	if hash := v.GetString("payload-hash"); hash != "" {
		p := sso.NewPayload(
			v.GetString("payload-user-data"),
			hash,
			v.GetInt64("payload-timestamp"),
		)
		return sso.NewSecureWithURLs(p, v.GetString("login-url"), v.GetString("logout-url"), opts...)
	}

	return sso.NewSecureWithSecretGetter(g, sso.SecureUserData{
		UserID:   v.GetString("user-id"),
		Email:    v.GetString("email"),
		Username: v.GetString("username"),
		Avatar:   v.GetString("avatar"),
	}, opts...)
}

func printToken(w io.Writer, s *sso.SSO) error {
	token, err := s.PrepareToSend()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, token)
	return err
}
