// cmd/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go_5_prayer_journal/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:     config.AppName,
	Short:   "Prayer journal API server",
	Version: config.AppVersion,
	// サブコマンド共通で設定ファイルを読み込む
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return config.LoadConfig(configDir)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.AppVersion)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "directory containing config.yaml")
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)
	// サブコマンド無しは serve と同じ
	rootCmd.RunE = serveCmd.RunE
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
