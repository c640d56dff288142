// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cogentcore.org/picking"
)

// Config keys, matching the TOML keys of [picking.Settings].
const (
	keyEnabled  = "enabled"
	keyOptimize = "optimize_on_interactor_events"
)

// loadSettings returns the manager settings from, in increasing order
// of precedence: defaults, the given TOML config file, PICKDEMO_*
// environment variables, and changed flags. The demo is about
// arbitration, so it enables the manager by default.
func loadSettings(configFile string, flags *pflag.FlagSet) (picking.Settings, error) {
	v := viper.New()
	def := picking.DefaultSettings()
	v.SetDefault(keyEnabled, true)
	v.SetDefault(keyOptimize, def.OptimizeOnInteractorEvents)

	v.SetConfigType("toml")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return def, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("PICKDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("enabled"); f != nil {
			if err := v.BindPFlag(keyEnabled, f); err != nil {
				return def, err
			}
		}
		if f := flags.Lookup("optimize"); f != nil {
			if err := v.BindPFlag(keyOptimize, f); err != nil {
				return def, err
			}
		}
	}

	return picking.Settings{
		Enabled:                    v.GetBool(keyEnabled),
		OptimizeOnInteractorEvents: v.GetBool(keyOptimize),
	}, nil
}

// LevelFromFlags returns the [slog.Level] for the given verbosity
// flags, evaluated in order vv (debug), v (info), q (error), with
// warn as the default.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// setDefaultLogger installs a text logger on stderr at the given level.
func setDefaultLogger(level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
