package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/npillmayer/pinyin/dict"
	"github.com/npillmayer/pinyin/tone"
)

// Injected at build time via ldflags.
var version = "dev"

// Exit codes.
const (
	ExitOK      = 0
	ExitGeneral = 1
	ExitUsage   = 2
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := newRootCmd(os.Stdin, os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to exit codes.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if isCobraUsageError(err) {
		return ExitUsage
	}
	if errors.Is(err, tone.ErrUnknownFormat) || errors.Is(err, dict.ErrSyntax) ||
		errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrTraceLevel) {
		return ExitUsage
	}
	return ExitGeneral
}

// Cobra doesn't expose typed errors, so we check for known error message patterns.
var cobraUsageErrorPatterns = []string{
	"unknown flag",           // Flag doesn't exist
	"unknown shorthand",      // Short flag doesn't exist
	"unknown command",        // Subcommand doesn't exist
	"flag needs an argument", // Flag provided without value
	"invalid argument",       // Invalid flag value type
	"accepts ",               // Wrong number of arguments
	"requires at least",      // Too few arguments
}

func isCobraUsageError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	for _, pattern := range cobraUsageErrorPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}
	return false
}
