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

package replay

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/racenet/f1telemetry/pkg/capture"
	"github.com/racenet/f1telemetry/pkg/config"
)

const (
	AddressOptionName  = "address"
	PortOptionName     = "port"
	InputOptionName    = "input"
	NoTimingOptionName = "no-timing"

	DefaultTargetAddress = "127.0.0.1"
)

func NewCommand() *cobra.Command {
	var address, input string
	var port int
	var noTiming bool
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Send recorded telemetry datagrams to a UDP address",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := capture.NewReader(f)
			if err != nil {
				return err
			}

			conn, err := net.Dial("udp", fmt.Sprintf("%s:%d", address, port))
			if err != nil {
				return err
			}
			defer conn.Close()

			count := 0
			var prev time.Time
			for {
				data, ci, err := r.Read()
				if err == io.EOF {
					break
				}
				if err != nil {
					return err
				}
				// keep the recorded pacing between datagrams
				if !noTiming && !prev.IsZero() {
					if gap := ci.Timestamp.Sub(prev); gap > 0 {
						time.Sleep(gap)
					}
				}
				prev = ci.Timestamp
				if _, err := conn.Write(data); err != nil {
					return err
				}
				count++
			}
			cmd.Printf("Replayed %d datagrams to %s:%d\n", count, address, port)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, InputOptionName, "", "Capture file to replay")
	cmd.Flags().StringVar(&address, AddressOptionName, DefaultTargetAddress, "Address to send datagrams to")
	cmd.Flags().IntVar(&port, PortOptionName, config.DefaultPort, "Port number to send datagrams to")
	cmd.Flags().BoolVar(&noTiming, NoTimingOptionName, false, "Send datagrams as fast as possible")
	cmd.MarkFlagRequired(InputOptionName)

	return cmd
}
