// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pickdemo replays mouse events over a scene of interactive
// handles sharing a picking manager, and prints which handle reacts
// to each event.
package main

import (
	"os"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// options are the persistent flags of the root command.
type options struct {
	configFile string
	vv, v, q   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "pickdemo",
		Short: "Replay mouse events over interactive handles sharing a picking manager",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setDefaultLogger(LevelFromFlags(opts.vv, opts.v, opts.q))
		},
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "TOML file with picking manager settings")
	pf.BoolVar(&opts.vv, "vv", false, "debug logging")
	pf.BoolVarP(&opts.v, "verbose", "v", false, "info logging")
	pf.BoolVarP(&opts.q, "quiet", "q", false, "only log errors")

	root.AddCommand(newRunCmd(opts), newSettingsCmd(opts))
	return root
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("enabled", true, "arbitrate picks between handles")
	cmd.Flags().Bool("optimize", true, "reuse the winning picker until the next render")
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scene.yaml>",
		Short: "Replay the events of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			sc, err := OpenScene(args[0])
			if err != nil {
				return err
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			return NewPlayer(sc, st, out).Play(sc.Events)
		},
	}
	addSettingsFlags(cmd)
	return cmd
}

func newSettingsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective picking manager settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadSettings(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			b, err := toml.Marshal(st)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	addSettingsFlags(cmd)
	return cmd
}
