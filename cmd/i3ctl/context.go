package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"i3ctl/internal/config"
	"i3ctl/internal/ipc"
	"i3ctl/internal/logging"
)

type commandContext struct {
	socketFlag *string
	configFlag *string
	jsonFlag   *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(socketFlag, configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		socketFlag: socketFlag,
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

func (c *commandContext) slogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		opts := logging.Options{}
		if cfg := c.configValue(); cfg != nil {
			opts.Level = cfg.Logging.Level
			opts.Format = cfg.Logging.Format
		}
		logger, err := logging.New(opts)
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// socketPath resolves the socket in precedence order: --socket flag,
// then the config override, then protocol discovery.
func (c *commandContext) socketPath(ctx context.Context) (string, error) {
	if c.socketFlag != nil {
		if path := strings.TrimSpace(*c.socketFlag); path != "" {
			return path, nil
		}
	}
	if cfg := c.configValue(); cfg != nil && cfg.Socket.Path != "" {
		return cfg.Socket.Path, nil
	}
	return ipc.SocketPath(ctx)
}

func (c *commandContext) jsonOutput() bool {
	if c.jsonFlag != nil && *c.jsonFlag {
		return true
	}
	if cfg := c.configValue(); cfg != nil {
		return cfg.Output.Format == "json"
	}
	return false
}

func (c *commandContext) withClient(cmd *cobra.Command, fn func(*ipc.Client) error) error {
	client, err := c.dialClient(cmd.Context())
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func (c *commandContext) dialClient(ctx context.Context) (*ipc.Client, error) {
	socket, err := c.socketPath(ctx)
	if err != nil {
		return nil, err
	}
	client, err := ipc.DialPath(ctx, socket, c.slogger())
	if err != nil {
		return nil, wrapDialError(err, socket)
	}
	return client, nil
}

func wrapDialError(err error, socket string) error {
	switch {
	case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("connect to window manager: socket %s not found; is i3 or sway running?", socket)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to window manager: socket %s refused the connection; it may be stale", socket)
	default:
		return fmt.Errorf("connect to window manager: %w", err)
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
