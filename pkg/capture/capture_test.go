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

package capture

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer

	w, err := NewWriter(&buf)
	require.NoError(t, err)

	// pcap keeps microsecond resolution
	base := time.Unix(1700000000, 123000)
	datagrams := [][]byte{
		[]byte("first datagram"),
		[]byte("second datagram, a bit longer"),
	}
	for i, data := range datagrams {
		ci := gopacket.CaptureInfo{
			Timestamp:     base.Add(time.Duration(i) * 20 * time.Millisecond),
			CaptureLength: len(data),
			Length:        len(data),
		}
		require.NoError(t, w.Write(data, ci))
	}

	r, err := NewReader(&buf)
	require.NoError(t, err)

	for i, want := range datagrams {
		data, ci, err := r.Read()
		require.NoError(t, err)
		assert.Equal(t, want, data)
		assert.Equal(t, len(want), ci.CaptureLength)
		wantTs := base.Add(time.Duration(i) * 20 * time.Millisecond)
		assert.Equal(t, wantTs.UnixNano(), ci.Timestamp.UnixNano())
	}

	_, _, err = r.Read()
	assert.Equal(t, io.EOF, err)
}

func TestReaderRejectsForeignCaptures(t *testing.T) {
	// an ethernet capture is not a telemetry capture
	header := []byte{
		0xd4, 0xc3, 0xb2, 0xa1, // magic, little-endian
		0x02, 0x00, 0x04, 0x00, // version 2.4
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0xff, 0xff, 0x00, 0x00, // snaplen
		0x01, 0x00, 0x00, 0x00, // link type 1, ethernet
	}
	_, err := NewReader(bytes.NewReader(header))
	require.Error(t, err)
}
