// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hyperledger/besu-quickstart-cli/internal/constants"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

var ExecutableName = "quickstart"

func GetBanner() string {
	s := ""
	s += "\u001b[34m  ___               _     ___       _    _       _            _   \u001b[0m\n"
	s += "\u001b[34m | _ ) ___ ____  _ | |   / _ \\ _  _(_)__| |__ __| |_ __ _ _ _| |_ \u001b[0m\n"
	s += "\u001b[36m | _ \\/ -_|_-< || |_|  | (_) | || | / _| / /(_-<  _/ _` | '_|  _|\u001b[0m\n"
	s += "\u001b[36m |___/\\___/__/\\_,_(_)   \\__\\_\\\\_,_|_\\__|_\\_\\/__/\\__\\__,_|_|  \\__|\u001b[0m\n"
	return s
}

// rootCmd runs the network wizard when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   ExecutableName,
	Short: "Quickstart CLI creates local Hyperledger Besu test networks",
	Long: GetBanner() + `
Quickstart CLI asks a short series of questions about the network you want,
then writes a docker compose network of four validators, an RPC node and
three member nodes, with their keys, genesis and node configuration.

Answers can be replayed without prompting with: quickstart --answers answers.yaml
	`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		options := wizardOptionsFromConfig()
		if err := runWizard(cmd.Context(), options, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
			return err
		}
		waitForExit()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		printFatal(os.Stderr, err, viper.GetBool("stackTraceOnError"))
		os.Exit(1)
	}
}

func printFatal(w io.Writer, err error, stackTrace bool) {
	if errors.Is(err, errUnsupportedPlatform) {
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fmt.Fprintf(w, "\u001b[31m%s\u001b[0m\n", err)
		} else {
			fmt.Fprintln(w, err)
		}
		return
	}
	if stackTrace {
		fmt.Fprintf(w, "Fatal error: %+v\n", err)
	} else {
		fmt.Fprintf(w, "Fatal error: %s\n", err)
	}
}

func wizardOptionsFromConfig() *types.WizardOptions {
	return &types.WizardOptions{
		OutputDir:         viper.GetString("output-dir"),
		DefaultsPath:      viper.GetString("defaults"),
		AnswersPath:       viper.GetString("answers"),
		Verbose:           viper.GetBool("verbose"),
		StackTraceOnError: viper.GetBool("stackTraceOnError"),
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s.yaml)", constants.ConfigFileName))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose log output")
	rootCmd.PersistentFlags().Bool("stackTraceOnError", false, "print a full stack trace when a fatal error occurs")
	rootCmd.Flags().StringP("output-dir", "o", constants.DefaultOutputDir, "directory to write the network to")
	rootCmd.Flags().String("defaults", "", "YAML file of default answers, merged over the built-in defaults")
	rootCmd.Flags().String("answers", "", "YAML file of answers to use instead of prompting")

	for _, name := range []string{"verbose", "stackTraceOnError"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)))
	}
	for _, name := range []string{"output-dir", "defaults", "answers"} {
		cobra.CheckErr(viper.BindPFlag(name, rootCmd.Flags().Lookup(name)))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
