// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	applicationName = "ssotoken"
	envPrefix       = "FASTCOMMENTS"
)

// newConfig parses the arguments and binds them into a viper instance.  Every
// flag can also be set with an environment variable, for example --user-id is
// FASTCOMMENTS_USER_ID, or in the optional config file.
func newConfig(args []string) (*viper.Viper, error) {
	f := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)

	f.String("config", "", "path to a config file")
	f.String("mode", "secure", "token mode: secure or simple")
	f.String("api-key", "", "secret key used to sign secure tokens")
	f.String("api-key-env", "", "environment variable holding the secret key")
	f.String("user-id", "", "id of the user")
	f.String("email", "", "email of the user")
	f.String("username", "", "username of the user, secure mode only")
	f.String("avatar", "", "avatar url of the user")
	f.String("login-url", "", "login url to use with a precomputed payload")
	f.String("logout-url", "", "logout url to use with a precomputed payload")
	f.String("payload-user-data", "", "precomputed base64 user data")
	f.String("payload-hash", "", "precomputed verification hash")
	f.Int64("payload-timestamp", 0, "precomputed payload timestamp")
	f.Int64("timestamp", 0, "unix time to sign with instead of the current time")
	f.BoolP("verbose", "v", false, "log to stderr")
	f.Bool("metrics", false, "write the collected metrics to stderr")

	if err := f.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(f); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", file, err)
		}
	}

	switch mode := v.GetString("mode"); mode {
	case "secure", "simple":
	default:
		return nil, fmt.Errorf("unknown mode '%s'", mode)
	}

	return v, nil
}
