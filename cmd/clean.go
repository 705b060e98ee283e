package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/pillbar/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log",
	Long: `Removes the debug log pillbar writes (by default /tmp/pillbar-debug.log).

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(cmd.OutOrStdout(), os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(out io.Writer, input io.Reader) error {
	path := activeLogPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	fmt.Fprintf(out, "  - %s\n", path)

	if !skipConfirm {
		if !confirm(out, input, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	// The running process may still hold the file open
	logger.Close()
	removed, err := logger.ClearLogs(path)
	if err != nil {
		return fmt.Errorf("error clearing logs: %w", err)
	}
	fmt.Fprintf(out, "Removed %d log file(s).\n", removed)
	return nil
}

// activeLogPath is the file the logger writes to, or the default before the
// logger has opened one.
func activeLogPath() string {
	if p := logger.Path(); p != "" {
		return p
	}
	return logger.DefaultLogPath
}

// confirm prompts the user for y/n confirmation
func confirm(out io.Writer, input io.Reader, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
