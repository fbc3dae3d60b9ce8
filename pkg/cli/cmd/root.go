package cmd

import (
	"os"

	"github.com/meshforge/meshgen/internal/config"
	"github.com/meshforge/meshgen/pkg/cli/format"
	"github.com/meshforge/meshgen/pkg/log"
	"github.com/meshforge/meshgen/pkg/store"
	"github.com/meshforge/meshgen/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputDir string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "meshgen",
	Short: "Meshgen - Istio routing manifest generator",
	Long: `Meshgen generates Istio routing manifests (VirtualService,
DestinationRule, Gateway, ServiceEntry) for a service as YAML files
in a local output directory, and can list and delete them again.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is specified, display the help
		if len(args) == 0 {
			cmd.Help()
			return
		}
	},
	Version:       version.Version,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		format.PrintError(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.meshgen/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory generated manifests are written to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add global environment variables
	viper.SetEnvPrefix("MESHGEN")
	viper.AutomaticEnv() // read in environment variables that match

	config.SetDefaults(viper.GetViper())
	_ = viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			format.PrintError(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".meshgen" (without extension).
		viper.AddConfigPath(home + "/.meshgen")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			format.PrintHint("Using config file: %s", viper.ConfigFileUsed())
		}
	}

	if verbose {
		log.SetDefaultLogger(log.NewLogger(log.WithLevel(log.DebugLevel)))
	}
}

// activeConfig resolves the configuration for the current invocation.
func activeConfig() *config.Config {
	return config.Load(viper.GetViper())
}

// newStore opens the file store on the configured output directory.
func newStore() *store.FileStore {
	return store.NewFileStore(activeConfig().OutputDir, log.GetDefaultLogger())
}
