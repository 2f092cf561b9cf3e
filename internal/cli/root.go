package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"toolcheck/internal/config"
	"toolcheck/internal/registry"
	"toolcheck/internal/system"
	"toolcheck/internal/update"
	appver "toolcheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "toolcheck",
	Short:         "toolcheck – update advisories for CLI tools",
	Long:          "toolcheck checks package registries for newer releases of CLI tools and prints a non-intrusive advisory when one exists.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var verbose bool

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("registry", "crates", "registry to probe (crates|npm)")
	rootCmd.PersistentFlags().Bool("evict-stale", true, "drop cache entries that fall behind the running tool")
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
	_ = viper.BindPFlag("evict-stale", rootCmd.PersistentFlags().Lookup("evict-stale"))
}

// initConfig wires viper to the toolcheck config dir and TOOLCHECK_* env.
func initConfig() {
	system.SetVerbose(verbose)
	if dir, err := config.Dir(); err == nil {
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}
	viper.SetEnvPrefix("TOOLCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		system.Logger.Debug("loaded config", "file", viper.ConfigFileUsed())
	}
}

// checkOptions assembles update options from viper settings plus env hooks.
func checkOptions() update.Options {
	o := update.OptionsFromEnv()
	if viper.GetString("registry") == "npm" {
		o.Probe = registry.NewNPM()
	}
	o.EvictStale = viper.GetBool("evict-stale")
	return o
}

// Execute runs the CLI. The self-update check is armed before command
// dispatch and reported with the short wait on the way out, so it never
// delays the command itself.
func Execute() {
	self := update.New("toolcheck", appver.AppVersion, update.OptionsFromEnv())
	self.CheckAsync()

	err := rootCmd.Execute()
	self.PrintWarning()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
