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

package packet

const (
	// HeaderSize is the fixed size of the packet header in bytes
	HeaderSize = 24

	// FormatF12020 is the packet format field value of the F1 2020 game
	FormatF12020 uint16 = 2020
)

// PacketHeader is the fixed prefix every telemetry packet starts with
type PacketHeader struct {
	PacketFormat            uint16
	GameMajorVersion        uint8
	GameMinorVersion        uint8
	PacketVersion           uint8
	PacketID                ID
	SessionUID              uint64
	SessionTime             float32 // seconds since session start
	FrameIdentifier         uint32
	PlayerCarIndex          uint8
	SecondaryPlayerCarIndex uint8 // 255 when there is no second player
}

// DecodeHeader decodes the fixed-size header and returns the remaining
// body bytes. It fails with ErrTruncated when the buffer is shorter than
// HeaderSize and with ErrUnsupportedVersion when no decoders are
// registered for the declared packet format.
func DecodeHeader(data []byte) (PacketHeader, []byte, error) {
	if len(data) < HeaderSize {
		return PacketHeader{}, nil, ErrTruncated{Need: HeaderSize, Have: len(data)}
	}

	d := newDecoder(data[:HeaderSize])
	h := PacketHeader{
		PacketFormat:            d.u16(),
		GameMajorVersion:        d.u8(),
		GameMinorVersion:        d.u8(),
		PacketVersion:           d.u8(),
		PacketID:                ID(d.u8()),
		SessionUID:              d.u64(),
		SessionTime:             d.f32(),
		FrameIdentifier:         d.u32(),
		PlayerCarIndex:          d.u8(),
		SecondaryPlayerCarIndex: d.u8(),
	}
	if d.err != nil {
		return PacketHeader{}, nil, d.err
	}

	if !SupportedFormat(h.PacketFormat) {
		return PacketHeader{}, nil, ErrUnsupportedVersion{Format: h.PacketFormat}
	}

	return h, data[HeaderSize:], nil
}

func (h *PacketHeader) appendTo(e *encoder) {
	e.u16(h.PacketFormat)
	e.u8(h.GameMajorVersion)
	e.u8(h.GameMinorVersion)
	e.u8(h.PacketVersion)
	e.u8(uint8(h.PacketID))
	e.u64(h.SessionUID)
	e.f32(h.SessionTime)
	e.u32(h.FrameIdentifier)
	e.u8(h.PlayerCarIndex)
	e.u8(h.SecondaryPlayerCarIndex)
}
