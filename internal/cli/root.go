// Package cli builds the sinklog command tree.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/sinklog/internal/config"
	"github.com/mordilloSan/sinklog/logger"
)

const commandName = "sinklog"

// Command returns the root sinklog command with its subcommands attached.
func Command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          commandName,
		Short:        "Write leveled log lines to the console and an append-only file",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(writeCommand())
	rootCmd.AddCommand(pathCommand())

	return rootCmd
}

// Execute runs the sinklog command tree against os.Args.
func Execute() error {
	return Command().Execute()
}

type writeOptions struct {
	level      string
	transports string
	file       string
	color      string
	perWrite   bool
}

func writeCommand() *cobra.Command {
	opts := &writeOptions{}
	cmd := &cobra.Command{
		Use:   "write MESSAGE...",
		Short: "Write one message at the given level",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, opts, strings.Join(args, " "))
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.level, "level", "l", "info", "level to write at: log, info, warn, error")
	flags.StringVarP(&opts.transports, "transport", "t", "", "comma-separated transports to write to (default from SINKLOG_TRANSPORTS, else file,console)")
	flags.StringVarP(&opts.file, "file", "f", "", "log file path; empty disables the file (default from SINKLOG_FILE, else log.log)")
	flags.StringVar(&opts.color, "color", "", "console highlighting: auto, always, never (default from SINKLOG_COLOR, else auto)")
	flags.BoolVar(&opts.perWrite, "append-per-write", false, "open and close the file for every line")

	return cmd
}

func pathCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved log file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("file") {
				cfg.File = file
			}

			// No transports: resolves the path without touching the filesystem.
			l, err := logger.New(logger.WithTransports(), logger.WithFile(cfg.File))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), l.LogFilePath())
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "log file path (default from SINKLOG_FILE, else log.log)")
	return cmd
}

// resolveConfig applies explicitly set flags over the environment.
func resolveConfig(cmd *cobra.Command, opts *writeOptions) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("transport") {
		cfg.Transports = opts.transports
	}
	if flags.Changed("file") {
		cfg.File = opts.file
	}
	if flags.Changed("color") {
		if err := config.ValidateColor(opts.color); err != nil {
			return nil, fmt.Errorf("invalid --color: %w", err)
		}
		cfg.Color = opts.color
	}
	return cfg, nil
}

func runWrite(cmd *cobra.Command, opts *writeOptions, message string) error {
	level, err := logger.ParseLevel(opts.level)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	loggerOpts := append(cfg.LoggerOptions(), logger.WithConsole(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if opts.perWrite {
		loggerOpts = append(loggerOpts, logger.WithAppendPerWrite())
	}

	l, err := logger.New(loggerOpts...)
	if err != nil {
		return err
	}
	if err := l.Write(level, message); err != nil {
		_ = l.Close()
		return err
	}
	return l.Close()
}
