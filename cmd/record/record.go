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

package record

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/racenet/f1telemetry/pkg/capture"
	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/telemetry"
)

const (
	AddressOptionName = "address"
	PortOptionName    = "port"
	OutputOptionName  = "output"

	DefaultOutput = "telemetry.pcap"
)

func NewCommand() *cobra.Command {
	var address, output string
	var port int
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Receive telemetry datagrams and record them to a pcap file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				cfg.TelemetryConfig.Address = address
			}
			if port != 0 {
				cfg.TelemetryConfig.Port = port
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			w, err := capture.NewWriter(f)
			if err != nil {
				return err
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

			count := 0
			for {
				data, ci, err := client.NextDatagram()
				if err != nil {
					if _, ok := err.(telemetry.ErrClosed); ok {
						cmd.Printf("Recorded %d datagrams to %s\n", count, output)
						return nil
					}
					return err
				}
				if err := w.Write(data, ci); err != nil {
					return err
				}
				count++
			}
		},
	}
	cmd.Flags().StringVar(&address, AddressOptionName, "", fmt.Sprintf("Address to bind. E.g. %s", config.DefaultAddress))
	cmd.Flags().IntVar(&port, PortOptionName, 0, fmt.Sprintf("Port number to bind. E.g. %d", config.DefaultPort))
	cmd.Flags().StringVar(&output, OutputOptionName, DefaultOutput, "File to write the capture to")

	return cmd
}
