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

package status

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/racenet/f1telemetry/pkg/command"
	"github.com/racenet/f1telemetry/pkg/config"
)

const (
	SessionOptionName = "session"
	RecordOptionName  = "record"
)

func NewCommand() *cobra.Command {
	var session uint64
	var record string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query a running telemetry server for stored session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := command.NewApiClient(cfg)

			if session == 0 {
				uids, err := client.Sessions()
				if err != nil {
					return err
				}
				for _, uid := range uids {
					cmd.Println(uid)
				}
				return nil
			}

			if record == "events" {
				events, err := client.Events(session)
				if err != nil {
					return err
				}
				for _, event := range events {
					out, err := yaml.JSONToYAML(event)
					if err != nil {
						return err
					}
					cmd.Printf("---\n%s", out)
				}
				return nil
			}

			data, err := client.Record(session, record)
			if err != nil {
				return err
			}
			out, err := yaml.JSONToYAML(data)
			if err != nil {
				return err
			}
			cmd.Printf("%s", out)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&session, SessionOptionName, 0, "Session UID to query. Without it all known sessions are listed")
	cmd.Flags().StringVar(&record, RecordOptionName, "session", "Record to query. One of: session, lap, participants, classification, events")

	return cmd
}
