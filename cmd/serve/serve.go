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

package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/srv"
)

const (
	AddressOptionName    = "address"
	PortOptionName       = "port"
	ApiAddressOptionName = "api-address"
	ApiPortOptionName    = "api-port"
)

func NewCommand() *cobra.Command {
	var address, apiAddress string
	var port, apiPort int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Ingest telemetry into the session state and serve it over a REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.TelemetryConfig.Address = address
			}
			if port != 0 {
				cfg.TelemetryConfig.Port = port
			}
			if apiAddress != "" {
				cfg.ApiConfig.Address = apiAddress
			}
			if apiPort != 0 {
				cfg.ApiConfig.Port = apiPort
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server, err := srv.NewServer(ctx, cfg)
			if err != nil {
				return err
			}
			return server.Run()
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultAddress))
	cmd.Flags().IntVar(&port, PortOptionName, 0, fmt.Sprintf("Port number to bind. E.g. %d", config.DefaultPort))
	cmd.Flags().StringVar(&apiAddress, ApiAddressOptionName, "", fmt.Sprintf("Address to bind the API server to. E.g. %s", config.DefaultApiAddress))
	cmd.Flags().IntVar(&apiPort, ApiPortOptionName, 0, fmt.Sprintf("Port number to bind the API server to. E.g. %d", config.DefaultApiPort))

	return cmd
}
