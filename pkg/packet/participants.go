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

import (
	"bytes"
)

const (
	participantsBodySize = 1189

	// nameFieldSize is the fixed width of the NUL-padded UTF-8 name field
	nameFieldSize = 48
)

// decodeName reads the fixed-width name field and cuts it at the first NUL
func decodeName(d *decoder) string {
	raw := d.bytes(nameFieldSize)
	if raw == nil {
		return ""
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

func appendName(e *encoder, name string) {
	raw := make([]byte, nameFieldSize)
	copy(raw, name)
	e.bytes(raw)
}

// ParticipantData describes one driver in the session
type ParticipantData struct {
	AiControlled  bool
	Driver        DriverID
	Team          TeamID
	RaceNumber    uint8
	Nationality   NationalityID
	Name          string // truncated by the game with U+2026 if too long
	YourTelemetry YourTelemetry
}

type PacketParticipantsData struct {
	NumActiveCars uint8
	Participants  [TotalCars]ParticipantData
}

func (*PacketParticipantsData) ID() ID { return IDParticipants }

func decodeParticipants(data []byte) (Body, error) {
	if len(data) < participantsBodySize {
		return nil, ErrTruncated{Need: participantsBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketParticipantsData{NumActiveCars: d.u8()}
	for i := range p.Participants {
		p.Participants[i] = ParticipantData{
			AiControlled:  readBool(d, "aiControlled"),
			Driver:        decodeDriver(d, "driverId"),
			Team:          decodeTeam(d, "teamId"),
			RaceNumber:    d.u8(),
			Nationality:   decodeNationality(d, "nationality"),
			Name:          decodeName(d),
			YourTelemetry: YourTelemetry(enum8(d, "yourTelemetry", uint8(TelemetryPublic))),
		}
		if d.err != nil {
			return nil, d.err
		}
	}

	return p, nil
}

func (p *PacketParticipantsData) appendBody(e *encoder) {
	e.u8(p.NumActiveCars)
	for i := range p.Participants {
		pd := &p.Participants[i]
		e.bool(pd.AiControlled)
		e.u8(uint8(pd.Driver))
		e.u8(uint8(pd.Team))
		e.u8(pd.RaceNumber)
		e.u8(uint8(pd.Nationality))
		appendName(e, pd.Name)
		e.u8(uint8(pd.YourTelemetry))
	}
}
