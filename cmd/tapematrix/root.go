// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/katalvlaran/tapematrix/config"
	"github.com/katalvlaran/tapematrix/errlog"
	"github.com/katalvlaran/tapematrix/session"
	"github.com/katalvlaran/tapematrix/tui"
)

var errNotTerminal = errors.New("interactive menu needs a terminal")

// app carries the state shared by every command of one invocation.
type app struct {
	configPath string
	errorLog   string
	debug      bool

	cfg config.Config
	log *errlog.Log

	// isTerminal reports whether the menu can take over the screen.
	isTerminal func() bool
}

func newApp() *app {
	return &app{
		log: errlog.Nop(),
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

func newRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tapematrix [error-log]",
		Short:        "Compact diagonal storage for symmetric band matrices",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logPath := ""
			if cmd == cmd.Root() && len(args) == 1 {
				logPath = args[0]
			}

			return a.setup(logPath)
		},
		RunE: a.recorded(a.runMenu),
	}

	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", config.DefaultFile, "config file (missing default file is ignored)")
	f.StringVar(&a.errorLog, "error-log", "", "file errors are appended to (overrides config and positional argument)")
	f.BoolVar(&a.debug, "debug", false, "enable verbose logging to stderr")

	cmd.AddCommand(a.encodeCmd(), a.decodeCmd(), a.bandwidthCmd(), a.multiplyCmd())

	return cmd
}

// setup loads the config, opens the error log and installs the debug logger.
// posLog is the positional error-log argument of the root command.
func (a *app) setup(posLog string) error {
	var err error
	if a.configPath == config.DefaultFile {
		a.cfg, err = config.LoadOptional(a.configPath)
	} else {
		a.cfg, err = config.Load(a.configPath)
	}
	if err != nil {
		return err
	}

	path := a.cfg.ErrorLog
	if posLog != "" {
		path = posLog
	}
	if a.errorLog != "" {
		path = a.errorLog
	}
	if a.log, err = errlog.Open(path); err != nil {
		return err
	}

	if a.debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("debug logger: %w", err)
		}
		session.SetLogger(l)
	}

	return nil
}

// recorded appends the error of fn to the error log and closes the log.
func (a *app) recorded(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() {
			_ = session.Logger().Sync()
			_ = a.log.Close()
		}()

		err := fn(cmd, args)
		a.log.Record(err)

		return err
	}
}

func (a *app) newSession() (*session.Session, error) {
	strict := session.WithStrict(a.cfg.Encode.Strict)
	snap := a.cfg.Session.Snapshot
	if snap == "" {
		return session.New(strict), nil
	}
	if _, err := os.Stat(snap); errors.Is(err, os.ErrNotExist) {
		return session.New(strict), nil
	}

	return session.Open(snap, strict)
}

func (a *app) runMenu(_ *cobra.Command, _ []string) error {
	if !a.isTerminal() {
		return errNotTerminal
	}

	s, err := a.newSession()
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Session: s,
		Log:     a.log,
		Display: a.cfg.Display,
	}
	if err := tui.Run(deps); err != nil {
		return err
	}

	if snap := a.cfg.Session.Snapshot; snap != "" {
		return s.Save(snap)
	}

	return nil
}
