package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/islml/kilo/internal/editor"
	"github.com/islml/kilo/internal/system"
	"github.com/islml/kilo/internal/version"
)

var errNotTerminal = errors.New("stdin is not a terminal")

var (
	logFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "kilo [file]",
	Short: "kilo – a tiny terminal text editor",
	Long:  "kilo opens a raw-mode editor session on the current terminal. Ctrl+Q quits.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closer, err := system.NewLogger(logFile, logLevel)
		if err != nil {
			return err
		}
		defer closer.Close()

		var path string
		if len(args) == 1 {
			path = args[0]
		}
		if err := run(path, os.Stdin, os.Stdout, logger); err != nil {
			logger.Error("editor stopped", "err", err)
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print kilo version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&logFile, "log-file", os.Getenv("KILO_LOG_FILE"), "append debug logs to this file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.AddCommand(versionCmd)
}

// run loads the file, takes over the terminal and runs the editor until
// Ctrl+Q. The screen is cleared and the terminal mode restored on every
// return path, and while a panic unwinds.
func run(path string, in, out *os.File, logger *log.Logger) error {
	state := &editor.State{}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		state.LoadContent(content)
		logger.Info("loaded file", "path", path, "bytes", len(content))
	}

	inFd, outFd := int(in.Fd()), int(out.Fd())
	if !term.IsTerminal(inFd) {
		return &editor.TerminalControlError{Op: "isatty", Err: errNotTerminal}
	}

	raw, err := editor.EnterRawMode(inFd, logger)
	if err != nil {
		return err
	}
	view := editor.NewView(out, state, raw, logger)
	defer view.Close()

	poller, err := editor.NewEpollPoller(inFd)
	if err != nil {
		return err
	}
	defer poller.Close()

	cols, rows, err := editor.WindowSize(outFd)
	if err != nil {
		return err
	}
	state.Resize(cols, rows)
	logger.Debug("viewport", "cols", cols, "rows", rows)

	return editor.NewLoop(poller, editor.NewFdReader(inFd), state, view, logger).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
