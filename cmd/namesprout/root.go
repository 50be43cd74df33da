package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seedbed/namesprout/app"
	"github.com/seedbed/namesprout/audio"
	"github.com/seedbed/namesprout/config"
	"github.com/seedbed/namesprout/logging"
)

var (
	verbosity  int
	configPath string
	monthFlag  string
	soundFlag  bool

	rootCmd = &cobra.Command{
		Use:   "namesprout",
		Short: "Grow a name into a garden of stem letters",
		Long: `namesprout opens a terminal garden: type a name and watch it take root,
one letter per stem, with the first letter blooming as the anchor.
Tab cycles the birth month, which picks the flower. Esc quits.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		RunE:          runGarden,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is $XDG_CONFIG_HOME/namesprout/config.toml)")
	rootCmd.PersistentFlags().StringVar(&monthFlag, "month", "", "Birth month selecting the flower")
	rootCmd.Flags().BoolVar(&soundFlag, "sound", false, "Play a chime as letters are planted")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges the config file with flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if cmd.Flags().Changed("month") || cmd.PersistentFlags().Changed("month") {
		cfg.Month = monthFlag
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound = soundFlag
	}
	return cfg, nil
}

func runGarden(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var chime *audio.Chime
	if cfg.Sound {
		chime, err = audio.NewChime(cfg.Volume)
		if err != nil {
			// The garden grows fine in silence.
			log.Warn().Err(err).Msg("audio initialization failed")
			chime = nil
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)

	defer func() {
		r := recover()
		screen.Fini()
		if chime != nil {
			chime.Close()
		}
		if r != nil {
			panic(r)
		}
	}()

	app.New(screen, app.Options{Month: cfg.Month, Chime: chime}).Run()
	return nil
}
