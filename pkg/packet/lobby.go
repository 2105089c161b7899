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

const lobbyInfoBodySize = 1145

// LobbyInfoData describes one player in a multiplayer lobby
type LobbyInfoData struct {
	AiControlled bool
	Team         TeamID
	Nationality  NationalityID
	Name         string
	ReadyStatus  ReadyStatus
}

type PacketLobbyInfoData struct {
	NumPlayers   uint8
	LobbyPlayers [TotalCars]LobbyInfoData
}

func (*PacketLobbyInfoData) ID() ID { return IDLobbyInfo }

func decodeLobbyInfo(data []byte) (Body, error) {
	if len(data) < lobbyInfoBodySize {
		return nil, ErrTruncated{Need: lobbyInfoBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketLobbyInfoData{NumPlayers: d.u8()}
	for i := range p.LobbyPlayers {
		p.LobbyPlayers[i] = LobbyInfoData{
			AiControlled: readBool(d, "aiControlled"),
			Team:         decodeTeam(d, "teamId"),
			Nationality:  decodeNationality(d, "nationality"),
			Name:         decodeName(d),
			ReadyStatus:  ReadyStatus(enum8(d, "readyStatus", uint8(ReadyStatusSpectating))),
		}
		if d.err != nil {
			return nil, d.err
		}
	}

	return p, nil
}

func (p *PacketLobbyInfoData) appendBody(e *encoder) {
	e.u8(p.NumPlayers)
	for i := range p.LobbyPlayers {
		l := &p.LobbyPlayers[i]
		e.bool(l.AiControlled)
		e.u8(uint8(l.Team))
		e.u8(uint8(l.Nationality))
		appendName(e, l.Name)
		e.u8(uint8(l.ReadyStatus))
	}
}
