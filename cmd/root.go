package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brettbedarf/fssim/config"
	"github.com/brettbedarf/fssim/filesystem"
	"github.com/brettbedarf/fssim/internal/util"
	"github.com/brettbedarf/fssim/requests"
	"github.com/brettbedarf/fssim/shell"
)

type rootFlags struct {
	verbose    int
	configPath string
	nodesPath  string
	envFile    string
	noColor    bool
	noBanner   bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "fssim",
		Short: "Interactive shell over an in-memory file system",
		Long: `fssim keeps a tree of directories and files in memory and lets you
navigate and edit it with familiar commands (ls, cd, mkdir, touch, rm, mv,
tree). Nothing is written to disk; the tree is gone when the session ends.

Configuration is layered: defaults, then --config file, then FSSIM_*
environment variables (also read from --env-file), then flags.

Exit Codes:
  0  - Session ended (exit, end of input or interrupt)
  1  - Startup error (invalid flags, config or node definitions)
  3  - Panic or unexpected system error`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, flags.nodesPath)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&flags.verbose, "verbose", "v", config.DefaultVerbose,
		"Log verbosity level between 1 (error) and 5 (trace)")
	f.StringVarP(&flags.configPath, "config", "c", "", "Path to YAML or JSON config file")
	f.StringVarP(&flags.nodesPath, "nodes", "n", "", "Path to JSON or YAML node definitions loaded at startup")
	f.StringVarP(&flags.envFile, "env-file", "e", ".env", "Path to dotenv file with FSSIM_* overrides")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&flags.noBanner, "no-banner", false, "Do not print the welcome banner")

	return cmd
}

// loadConfig layers defaults, config file, environment and explicitly set flags
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg := config.NewDefaultConfig()

	if flags.configPath != "" {
		override, err := config.LoadConfigOverrideFile(flags.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", flags.configPath, err)
		}
		cfg.Merge(override)
	}

	envOverride, err := config.LoadEnvOverride(flags.envFile)
	if err != nil {
		return nil, err
	}
	cfg.Merge(envOverride)

	flagOverride := &config.ConfigOverride{}
	if cmd.Flags().Changed("verbose") {
		flagOverride.LogLvl = util.Pointer(flags.verbose)
	}
	if flags.noColor {
		flagOverride.Color = util.Pointer(false)
	}
	if flags.noBanner {
		flagOverride.Banner = util.Pointer(false)
	}
	cfg.Merge(flagOverride)

	return cfg, nil
}

// run seeds the file system and blocks in the shell until the session ends
func run(ctx context.Context, cfg *config.Config, nodesPath string) error {
	util.InitializeLogger(cfg.LogLvl, os.Stderr)
	logger := util.GetLogger("main")
	logger.Info().Str("root", cfg.RootName).Str("nodes", nodesPath).Msg("File system simulator initializing")

	fs := filesystem.NewFS(cfg)
	if nodesPath != "" {
		defs, err := requests.LoadNodeDefsFile(nodesPath)
		if err != nil {
			logger.Error().Err(err).Str("nodes", nodesPath).Msg("Failed to load node definitions")
			return err
		}
		fs.Load(defs.Dirs, defs.Files)
	}

	// Piped input gets no banner
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.Banner = false
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(fs, cfg, os.Stdout)
	if err := sh.Run(ctx, os.Stdin); err != nil {
		logger.Error().Err(err).Msg("Shell stopped on input error")
	}
	logger.Info().Msg("Session ended")
	return nil
}
