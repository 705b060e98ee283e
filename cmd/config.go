package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/ui"
)

var (
	configInitForce bool
	configShowColor bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the pillbar config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config template",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	configShowCmd.Flags().BoolVar(&configShowColor, "color", false, "Highlight even when stdout is not a terminal")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

// resolveConfigPath returns the --config path or the default location.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Path()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	doc := fmt.Sprintf("# %s\n%s", cfg.FilePath(), data)
	if configShowColor || isTerminal(out) {
		doc = ui.HighlightYAML(doc)
	}
	fmt.Fprint(out, doc)
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if configInitForce {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing %s: %w", path, err)
		}
	}
	if err := config.WriteTemplate(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(cmd.OutOrStdout(), "No config at %s, using defaults.\n", path)
		return nil
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("config has errors: %w", err)
	}
	barCfg, err := cfg.TabBarConfig()
	if err != nil {
		return fmt.Errorf("config has errors: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config is valid: %s\n", path)
	fmt.Fprintf(out, "  Profile: %s\n", barCfg.Profile)
	fmt.Fprintf(out, "  Settle: %s %s\n", barCfg.SettleDuration, barCfg.SettleCurve)
	fmt.Fprintf(out, "  Haptic: %s\n", barCfg.HapticStyle)
	return nil
}
