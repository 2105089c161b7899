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

// Package capture records raw telemetry datagrams to pcap files and
// reads them back. Each pcap record is one UDP payload without any
// link-layer framing.
package capture

import (
	"fmt"
	"io"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

const (
	// SnapLen covers the largest telemetry datagram
	SnapLen = 2048

	// LinkType is DLT_USER0, pcap's first user-defined link type
	LinkType = layers.LinkType(147)
)

// Writer appends telemetry datagrams to a pcap stream
type Writer struct {
	pcap *pcapgo.Writer
}

func NewWriter(w io.Writer) (*Writer, error) {
	pw := pcapgo.NewWriter(w)
	if err := pw.WriteFileHeader(SnapLen, LinkType); err != nil {
		return nil, err
	}
	return &Writer{pcap: pw}, nil
}

func (w *Writer) Write(data []byte, ci gopacket.CaptureInfo) error {
	return w.pcap.WritePacket(ci, data)
}

// Reader reads telemetry datagrams back from a pcap stream
type Reader struct {
	pcap *pcapgo.Reader
}

func NewReader(r io.Reader) (*Reader, error) {
	pr, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, err
	}
	if pr.LinkType() != LinkType {
		return nil, fmt.Errorf("Unexpected link type in capture file: %s", pr.LinkType())
	}
	return &Reader{pcap: pr}, nil
}

// Read returns the next datagram. It fails with io.EOF at the end of
// the stream.
func (r *Reader) Read() ([]byte, gopacket.CaptureInfo, error) {
	return r.pcap.ReadPacketData()
}
