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
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hyperledger/besu-quickstart-cli/internal/docker"
	"github.com/hyperledger/besu-quickstart-cli/internal/log"
	"github.com/hyperledger/besu-quickstart-cli/internal/network"
	"github.com/hyperledger/besu-quickstart-cli/internal/prompt"
	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

var exitGracePeriod = 500 * time.Millisecond

func waitForExit() {
	time.Sleep(exitGracePeriod)
}

// runWizard resolves the network questions and builds the network from the
// answers. Errors carry a stack trace for --stackTraceOnError.
func runWizard(ctx context.Context, options *types.WizardOptions, in io.Reader, out, errOut io.Writer) error {
	if err := checkPlatform(runtime.GOOS); err != nil {
		return err
	}

	var logger log.Logger
	if options.Verbose {
		logger = log.NewLogrusLogger(errOut, logrus.Fields{"cmd": ExecutableName})
		logger.SetLogLevel(log.Debug)
	} else {
		logger = &log.StdoutLogger{LogLevel: log.Info, Out: out}
	}
	ctx = log.WithVerbosity(ctx, options.Verbose)
	ctx = log.WithLogger(ctx, logger)

	defaults, err := questions.LoadDefaults(options.DefaultsPath)
	if err != nil {
		return errors.WithStack(err)
	}

	var prompter questions.Prompter
	if options.AnswersPath != "" {
		logger.Debug(fmt.Sprintf("using answers from %s", options.AnswersPath))
		if prompter, err = prompt.NewScriptedFromFile(options.AnswersPath); err != nil {
			return errors.WithStack(err)
		}
	} else {
		fmt.Fprintln(out, GetBanner())
		prompter = prompt.NewTerminal(in, out)
	}

	answers, err := questions.Resolve(ctx, questions.NetworkQuestions(), defaults, prompter)
	if err != nil {
		return errors.WithStack(err)
	}

	builder := network.NewBuilder(ctx, options.OutputDir)
	if options.Verbose {
		err = builder.Build(answers)
	} else {
		fmt.Fprint(out, "creating network... ")
		spin := log.NewSpinnerLogger(out)
		builder.Log = spin
		spin.Start()
		err = builder.Build(answers)
		for _, msg := range spin.Stop() {
			fmt.Fprintln(out, msg)
		}
	}
	if err != nil {
		return errors.WithStack(err)
	}

	if err := docker.CheckDockerConfig(ctx); err != nil {
		logger.Warn(fmt.Sprintf("%s You will need it to start the network.", err))
	}

	fmt.Fprintf(out, "\nNetwork created in %s\nTo start your new network run:\n\n  cd %s && docker compose up -d\n\n", options.OutputDir, options.OutputDir)
	return nil
}
