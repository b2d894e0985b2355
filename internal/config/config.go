package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// SteamAPIKey is the Steam Web API key (steamcommunity.com/dev/apikey)
	SteamAPIKey string
	// SteamID is the default Steam ID or vanity URL name to analyze
	SteamID string
	// OverwriteFiles controls whether existing export files should be overwritten
	OverwriteFiles bool
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("ExportOutputDir", "./exports/")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("OverwriteFiles", false)

	// Get values from viper
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	SteamAPIKey = viper.GetString("steam.apikey")
	SteamID = viper.GetString("steam.steamid")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}
