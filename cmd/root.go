// Package cmd wires the Kong CLI onto the analysis session and exporters.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/config"
	"github.com/lepinkainen/steamstats/internal/steam"
)

// CLI represents the complete command structure for the steamstats application
type CLI struct {
	// Global flags
	Debug     bool   `help:"Enable debug logging"`
	Overwrite bool   `help:"Overwrite existing export files"`
	APIKey    string `help:"Steam Web API key (overrides config and STEAM_API_KEY)"`

	Report ReportCmd `cmd:"" help:"Generate a one-shot library report"`
	Chat   ChatCmd   `cmd:"" help:"Ask questions about your library interactively"`
	Export ExportCmd `cmd:"" help:"Export the library to CSV, JSON, markdown notes, or SQLite"`
	Find   FindCmd   `cmd:"" help:"Look up playtime stats for one game"`
	Tools  ToolsCmd  `cmd:"" help:"List the capabilities the chat agent can call"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("steamstats"),
		kong.Description("Analyze your Steam game library: playtime reports, exports, and an interactive Q&A agent."),
		kong.UsageOnError(),
	)

	if cli.Debug {
		initLogging(slog.LevelDebug)
	}
	updateGlobalConfig(&cli)

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("ExportOutputDir", "./exports/")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("OverwriteFiles", false)

	// Datasette defaults (remote export target, off unless configured)
	viper.SetDefault("datasette.url", "")
	viper.SetDefault("datasette.token", "")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("steam.apikey", "STEAM_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("steam.steamid", "STEAM_ID"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetOverwriteFiles(cli.Overwrite || viper.GetBool("OverwriteFiles"))

	if cli.APIKey != "" {
		viper.Set("steam.apikey", cli.APIKey)
		config.SteamAPIKey = cli.APIKey
	}
}

func initLogging(level slog.Level) {
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// newSession builds a session over a Steam client, or fails with key
// guidance when no API key is configured.
func newSession() (*agent.Session, error) {
	if config.SteamAPIKey == "" {
		return nil, fmt.Errorf("steam API key is required (get one from https://steamcommunity.com/dev/apikey, then set STEAM_API_KEY, steam.apikey in config.yaml, or --api-key)")
	}
	return agent.NewSession(steam.NewClient(config.SteamAPIKey)), nil
}

// resolveSteamID picks the Steam ID from the command argument or the config.
func resolveSteamID(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if config.SteamID != "" {
		return config.SteamID, nil
	}
	return "", fmt.Errorf("steam ID is required (pass it as an argument, set STEAM_ID, or steam.steamid in config.yaml)")
}
