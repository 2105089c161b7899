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

// Package packet decodes the binary UDP telemetry packets sent by the
// F1 2020 game into typed records and serializes them back. All numeric
// fields are little-endian on the wire. Trailing bytes after a packet's
// layout are tolerated; reading never goes past the provided buffer.
package packet

// ID identifies the kind of a telemetry packet
type ID uint8

const (
	IDMotion ID = iota
	IDSession
	IDLapData
	IDEvent
	IDParticipants
	IDCarSetups
	IDCarTelemetry
	IDCarStatus
	IDFinalClassification
	IDLobbyInfo
)

var idNames = map[ID]string{
	IDMotion:              "Motion",
	IDSession:             "Session",
	IDLapData:             "LapData",
	IDEvent:               "Event",
	IDParticipants:        "Participants",
	IDCarSetups:           "CarSetups",
	IDCarTelemetry:        "CarTelemetry",
	IDCarStatus:           "CarStatus",
	IDFinalClassification: "FinalClassification",
	IDLobbyInfo:           "LobbyInfo",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "Unknown"
}

// Body is one decoded packet payload. Exactly one concrete body type
// exists per packet id.
type Body interface {
	ID() ID
	appendBody(e *encoder)
}

// Packet is one decoded telemetry datagram
type Packet struct {
	Header PacketHeader
	Body   Body
}

// BodyDecoder turns the bytes following the header into a typed body
type BodyDecoder func(data []byte) (Body, error)

// formats is the dispatch table: packet format -> packet id -> decoder.
// Supporting a new game revision means registering its decoders here.
var formats = map[uint16]map[ID]BodyDecoder{
	FormatF12020: {
		IDMotion:              decodeMotion,
		IDSession:             decodeSession,
		IDLapData:             decodeLapData,
		IDEvent:               decodeEvent,
		IDParticipants:        decodeParticipants,
		IDCarSetups:           decodeCarSetups,
		IDCarTelemetry:        decodeCarTelemetry,
		IDCarStatus:           decodeCarStatus,
		IDFinalClassification: decodeFinalClassification,
		IDLobbyInfo:           decodeLobbyInfo,
	},
}

// SupportedFormat reports whether any decoders are registered for the
// given packet format
func SupportedFormat(format uint16) bool {
	_, ok := formats[format]
	return ok
}

// Register adds a body decoder for a packet id under a packet format.
// This is the extension point for new packet kinds and game revisions.
func Register(format uint16, id ID, dec BodyDecoder) {
	m, ok := formats[format]
	if !ok {
		m = make(map[ID]BodyDecoder)
		formats[format] = m
	}
	m[id] = dec
}

// Decode decodes one raw datagram into a Packet. Decode is pure: the
// same bytes always produce the same result and the input is never
// modified or retained.
func Decode(data []byte) (*Packet, error) {
	header, body, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	dec, ok := formats[header.PacketFormat][header.PacketID]
	if !ok {
		return nil, ErrUnknownPacketID{Format: header.PacketFormat, ID: uint8(header.PacketID)}
	}

	decoded, err := dec(body)
	if err != nil {
		return nil, err
	}

	return &Packet{Header: header, Body: decoded}, nil
}

// Serialize writes the packet back to its wire layout
func (p *Packet) Serialize() []byte {
	e := newEncoder(HeaderSize + bodySize(p.Body.ID()))
	p.Header.appendTo(e)
	p.Body.appendBody(e)
	return e.buf
}

func bodySize(id ID) int {
	switch id {
	case IDMotion:
		return motionBodySize
	case IDLapData:
		return lapDataBodySize
	case IDEvent:
		return eventBodySize
	case IDParticipants:
		return participantsBodySize
	case IDCarSetups:
		return carSetupsBodySize
	case IDCarTelemetry:
		return carTelemetryBodySize
	case IDCarStatus:
		return carStatusBodySize
	case IDFinalClassification:
		return finalClassificationBodySize
	case IDLobbyInfo:
		return lobbyInfoBodySize
	default:
		return 256
	}
}
