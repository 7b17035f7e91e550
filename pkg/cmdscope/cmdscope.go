// Package cmdscope runs cobra commands inside a scratch workspace.
//
// The surrounding tool owns its command tree. Bind registers the workspace
// settings on a command, and RunE wraps the command body so that a
// [tempdir.Workspace] exists for the duration of the run and is released on
// every exit path:
//
//	scope := cmdscope.Bind(decodeCmd)
//	decodeCmd.RunE = scope.RunE(func(cmd *cobra.Command, args []string, env cmdscope.Env) error {
//	    return decode(args[0], env.Workspace.Path(), env.Logger)
//	})
package cmdscope

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bft-labs/resunpack/internal/config"
	"github.com/bft-labs/resunpack/pkg/log"
	"github.com/bft-labs/resunpack/pkg/tempdir"
)

// Env is what a wrapped command body receives.
type Env struct {
	Workspace *tempdir.Workspace
	Logger    log.Logger
	Config    config.Config
}

// RunFunc is a command body that runs inside a workspace.
type RunFunc func(cmd *cobra.Command, args []string, env Env) error

// Scope carries the settings bound to one command.
type Scope struct {
	cmd     *cobra.Command
	cfg     config.Config
	cfgPath *string
	logger  log.Logger
	opts    []tempdir.Option
}

// Option customizes a Scope.
type Option func(*Scope)

// WithLogger replaces the zerolog logger built from the log level.
func WithLogger(logger log.Logger) Option {
	return func(s *Scope) {
		s.logger = logger
	}
}

// WithWorkspaceOptions appends workspace options after the configured ones.
func WithWorkspaceOptions(opts ...tempdir.Option) Option {
	return func(s *Scope) {
		s.opts = append(s.opts, opts...)
	}
}

// Bind registers the workspace flags on cmd and returns the scope.
func Bind(cmd *cobra.Command, opts ...Option) *Scope {
	s := &Scope{cmd: cmd, cfg: config.DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	s.cfgPath = config.BindFlags(cmd.Flags(), &s.cfg)
	return s
}

// RunE returns a cobra RunE that loads the configuration, creates a
// workspace, runs fn and releases the workspace with the command's context.
// A release failure is joined with fn's error.
func (s *Scope) RunE(fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		cfg := s.cfg
		if err := config.Load(cmd.Flags(), &cfg, *s.cfgPath); err != nil {
			return err
		}

		logger := s.logger
		if logger == nil {
			logger = log.NewZerologAdapterWithLogger(config.NewLogger(cfg.LogLevel))
		}

		opts := append([]tempdir.Option{tempdir.WithLogger(logger)}, s.opts...)
		ws, err := tempdir.NewFromConfig(cfg.Workspace(), opts...)
		if err != nil {
			return fmt.Errorf("create workspace: %w", err)
		}
		defer func() {
			if rerr := ws.Release(cmd.Context()); rerr != nil {
				logger.Error("workspace cleanup failed", log.String("path", ws.Path()), log.Err(rerr))
				err = errors.Join(err, rerr)
			}
		}()

		return fn(cmd, args, Env{Workspace: ws, Logger: logger, Config: cfg})
	}
}
