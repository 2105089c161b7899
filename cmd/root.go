/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/racenet/f1telemetry/cmd/completion"
	cmdconfig "github.com/racenet/f1telemetry/cmd/config"
	"github.com/racenet/f1telemetry/cmd/listen"
	"github.com/racenet/f1telemetry/cmd/record"
	"github.com/racenet/f1telemetry/cmd/replay"
	"github.com/racenet/f1telemetry/cmd/serve"
	"github.com/racenet/f1telemetry/cmd/status"
	pkgconfig "github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	var logLevel string
	cfg := pkgconfig.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "f1telemetry",
		Short: "Tool to receive, record and inspect F1 2020 UDP telemetry",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(cmdconfig.NewCommand())
	cmd.AddCommand(listen.NewCommand())
	cmd.AddCommand(record.NewCommand())
	cmd.AddCommand(replay.NewCommand())
	cmd.AddCommand(serve.NewCommand())
	cmd.AddCommand(status.NewCommand())
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
