// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mt2hugo CLI, which migrates a
// Movable Type text export into Hugo content plus nginx redirect rules.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/mt2hugo/internal/convert"
	"github.com/pdiddy/mt2hugo/internal/logging"
	"github.com/pdiddy/mt2hugo/internal/render"
	"github.com/pdiddy/mt2hugo/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const usage = "Usage: mt2hugo <mt_export.txt> <section> <output_folder>"

// logger is built in PersistentPreRunE once flags are parsed.
var logger = zap.NewNop()

// rootCmd migrates an export when given exactly three positional arguments.
var rootCmd = &cobra.Command{
	Use:   "mt2hugo <mt_export.txt> <section> <output_folder>",
	Short: "Migrate a Movable Type export to Hugo content and nginx redirects",
	Long: `mt2hugo reads a Movable Type text export and writes one Hugo Markdown
post per entry under content/<section>/<year>/<month>/posts/, with a
frontmatter header (title, date, draft, tags, categories, aliases).

One nginx rewrite rule per post is written to nginx_redirects.conf so the
legacy /blog/<section>/<year>/<month>/<basename>.html URLs keep working.

The output_folder argument is accepted for compatibility; posts are always
written under the configured content directory.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(viper.GetBool("verbose"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		fmt.Fprintln(cmd.OutOrStdout(), usage)
		return nil
	}
	defer logger.Sync() //nolint:errcheck

	cfg := migrationConfig(args[0], args[1], args[2])
	out := cmd.OutOrStdout()

	result, err := convert.Run(cfg, render.NewMarkdownConverter(), logger, out)
	if err != nil {
		if result.Entries > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d entries written before failure (%d not converted)\n",
				result.Converted, result.Total(), result.Pending())
		}
		return err
	}

	fmt.Fprintf(out, "Done. Markdown files written to '%s', nginx config to '%s'.\n",
		convert.ContentRoot(cfg), cfg.RedirectFile)
	return nil
}

// migrationConfig assembles the run configuration from positional args and
// viper (flags, environment, config file).
func migrationConfig(exportPath, section, outputHint string) types.MigrationConfig {
	cfg := types.MigrationConfig{
		ExportPath:   exportPath,
		Section:      section,
		OutputHint:   outputHint,
		ContentDir:   viper.GetString("content_dir"),
		RedirectFile: viper.GetString("redirect_file"),
		BaseURL:      viper.GetString("base_url"),
		LegacyPrefix: viper.GetString("legacy_prefix"),
	}
	return cfg.WithDefaults()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./mt2hugo.yaml or ~/.config/mt2hugo/mt2hugo.yaml)")
	flags.Bool("verbose", false, "enable debug logging")
	flags.String("content-dir", types.DefaultContentDir, "Hugo content root; posts go under <content-dir>/<section>")
	flags.String("redirect-file", types.DefaultRedirectFile, "path of the generated nginx rewrite rules")
	flags.String("base-url", types.DefaultBaseURL, "scheme and host of the new site used in redirect targets")
	flags.String("legacy-prefix", types.DefaultLegacyPrefix, "path prefix of the legacy blog URLs")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("content_dir", flags.Lookup("content-dir"))
	_ = viper.BindPFlag("redirect_file", flags.Lookup("redirect-file"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("legacy_prefix", flags.Lookup("legacy-prefix"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mt2hugo")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mt2hugo"))
		}
	}

	viper.SetEnvPrefix("MT2HUGO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
