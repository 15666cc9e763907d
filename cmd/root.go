// ABOUTME: Root command for the storefront CLI
// ABOUTME: Handles global flags, environment, and shared construction

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mstore/storefront/internal/api"
	"github.com/mstore/storefront/internal/catalog"
	"github.com/mstore/storefront/internal/session"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "https://dummyjson.com"

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Terminal client for the storefront catalog",
	Long: `storefront is a terminal client for the storefront catalog service.

Log in once and the session survives restarts; browse, search, and
inspect products from scripts or the interactive TUI (storefront browse).

Environment Variables:
  STOREFRONT_API_URL  API base URL (default: https://dummyjson.com)`,
}

// Execute runs the root command
func Execute() error {
	// A .env next to the binary is a convenience for development
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides STOREFRONT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("STOREFRONT_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// newSessionManager builds a manager over the default file store
func newSessionManager() *session.Manager {
	store := session.NewFileStore(session.DefaultConfigDir())
	auth := api.NewAuthClient(GetAPIURL())
	return session.NewManager(store, auth)
}

// newBrowser builds a catalog browser against the configured API
func newBrowser() *catalog.Browser {
	return catalog.New(api.NewCatalogClient(GetAPIURL()))
}
