/*
Command exercises runs the exercises of this module from the command line.

	exercises say Hello World
	exercises first --prefix B AA BB CC
	exercises lines main.go go.mod
	exercises quat mul 0,1,0,0 0,0,1,0
	exercises bst --style outline d b f a c e
	exercises stack --pop 1 a b c
	exercises powers --base 2 --limit 1000
	exercises shape sphere 1.5

Global flags --config (a YAML file, see package internal/config) and
--trace (error, info or debug) control tracing output, which goes to stderr.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"io"
	"os"

	"github.com/npillmayer/exercises/internal/config"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// tracer traces with key 'exercises.cli'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.cli")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configFile string
	traceLevel string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}
	root := &cobra.Command{
		Use:          "exercises",
		Short:        "Run small functional programming exercises",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.traceLevel, "trace", "", "trace level: error, info or debug")
	root.AddCommand(
		newFirstCmd(),
		newSayCmd(),
		newLinesCmd(),
		newQuatCmd(),
		newBSTCmd(a),
		newStackCmd(),
		newPowersCmd(),
		newShapeCmd(),
	)
	return root
}

// configure loads the configuration file, if any, lets the command line
// override it and routes tracing to traceOut.
func (a *app) configure(traceOut io.Writer) error {
	if a.configFile != "" {
		cfg, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.traceLevel != "" {
		a.cfg.Trace.Level = a.traceLevel
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg.Trace.Apply(traceOut)
	tracer().Debugf("configuration: %+v", a.cfg)
	return nil
}
