package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/pillbar/internal/app"
	"github.com/zhubert/pillbar/internal/config"
	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/logger"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	profileFlag           string
	platformFlag          string
	themeFlag             string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "pillbar",
	Short: "A terminal app shell with a draggable, morphing tab bar",
	Long: `pillbar is a terminal app shell whose bottom tab bar can be picked up.
Long-press the bar with the mouse, drag it up and let go: past the threshold it
settles into a floating pill, otherwise it snaps back into the dock.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.pillbar/config.yaml)")
	rootCmd.Flags().StringVar(&profileFlag, "profile", "", "Tab bar profile: solid or blur")
	rootCmd.Flags().StringVar(&platformFlag, "platform", "", "Platform: android or ios")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme: dark or light")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("pillbar %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("pillbar %s\n", version)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if platformFlag != "" {
		cfg.SetPlatform(platformFlag)
	}
	if profileFlag != "" {
		cfg.SetProfile(profileFlag)
	}
	if themeFlag != "" {
		cfg.SetTheme(themeFlag)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, perrors.ConfigInvalid(errs[0].Error())
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	m, err := app.New(app.Options{Config: cfg, Version: version})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return perrors.ProgramFailed(err)
	}
	return nil
}
