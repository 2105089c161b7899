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

package listen

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/log"
	"github.com/racenet/f1telemetry/pkg/telemetry"
)

const (
	AddressOptionName = "address"
	PortOptionName    = "port"
)

func NewCommand() *cobra.Command {
	var address string
	var port int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Receive telemetry packets and print them to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.TelemetryConfig.Address = address
			}
			if port != 0 {
				cfg.TelemetryConfig.Port = port
			}

			client, err := telemetry.New(cfg.TelemetryConfig.Address, cfg.TelemetryConfig.Port)
			if err != nil {
				return err
			}
			defer client.Close()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				client.Close()
			}()

			for {
				p, err := client.Next()
				if err != nil {
					if _, ok := err.(telemetry.ErrClosed); ok {
						return nil
					}
					log.Warning("Dropping datagram: %s", err)
					continue
				}
				out, err := yaml.Marshal(p)
				if err != nil {
					return err
				}
				cmd.Printf("--- # %s frame %d\n%s", p.Body.ID(), p.Header.FrameIdentifier, out)
			}
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultAddress))
	cmd.Flags().IntVar(&port, PortOptionName, 0, fmt.Sprintf("Port number to bind. E.g. %d", config.DefaultPort))

	return cmd
}
