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
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHeader(id ID) PacketHeader {
	return PacketHeader{
		PacketFormat:            FormatF12020,
		GameMajorVersion:        1,
		GameMinorVersion:        18,
		PacketVersion:           1,
		PacketID:                id,
		SessionUID:              0x1122334455667788,
		SessionTime:             92.25,
		FrameIdentifier:         5381,
		PlayerCarIndex:          19,
		SecondaryPlayerCarIndex: 255,
	}
}

// roundTrip serializes the packet, decodes it back and checks both the
// decoded packet and the re-serialized bytes match
func roundTrip(t *testing.T, body Body) {
	t.Helper()

	p := &Packet{Header: testHeader(body.ID()), Body: body}
	raw := p.Serialize()

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, raw, got.Serialize())
}

func TestDecodeHeader(t *testing.T) {
	h := testHeader(IDLapData)
	e := newEncoder(HeaderSize + 4)
	h.appendTo(e)
	e.u32(0xcafebabe)

	got, body, err := DecodeHeader(e.buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
	assert.Equal(t, []byte{0xbe, 0xba, 0xfe, 0xca}, body)
}

func TestDecodeHeaderTruncated(t *testing.T) {
	for _, n := range []int{0, 1, HeaderSize - 1} {
		_, _, err := DecodeHeader(make([]byte, n))
		var truncated ErrTruncated
		require.ErrorAs(t, err, &truncated, "length %d", n)
		assert.Equal(t, HeaderSize, truncated.Need)
		assert.Equal(t, n, truncated.Have)
	}
}

func TestDecodeHeaderUnsupportedFormat(t *testing.T) {
	h := testHeader(IDMotion)
	h.PacketFormat = 2019
	e := newEncoder(HeaderSize)
	h.appendTo(e)

	_, _, err := DecodeHeader(e.buf)
	assert.Equal(t, ErrUnsupportedVersion{Format: 2019}, err)
}

func TestDecodeUnknownPacketID(t *testing.T) {
	h := testHeader(ID(13))
	e := newEncoder(HeaderSize)
	h.appendTo(e)

	_, err := Decode(e.buf)
	assert.Equal(t, ErrUnknownPacketID{Format: FormatF12020, ID: 13}, err)
}

func TestRegister(t *testing.T) {
	const format uint16 = 2021
	defer delete(formats, format)

	Register(format, ID(42), func(data []byte) (Body, error) {
		return &PacketEventData{Code: EventSessionStarted}, nil
	})
	require.True(t, SupportedFormat(format))

	h := testHeader(ID(42))
	h.PacketFormat = format
	e := newEncoder(HeaderSize)
	h.appendTo(e)

	p, err := Decode(e.buf)
	require.NoError(t, err)
	assert.Equal(t, EventSessionStarted, p.Body.(*PacketEventData).Code)
}

func TestDecodeTruncatedBody(t *testing.T) {
	h := testHeader(IDMotion)
	e := newEncoder(HeaderSize)
	h.appendTo(e)
	data := append(e.buf, make([]byte, motionBodySize-1)...)

	_, err := Decode(data)
	var truncated ErrTruncated
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, motionBodySize, truncated.Need)
}

func TestDecodeTrailingBytesTolerated(t *testing.T) {
	h := testHeader(IDMotion)
	e := newEncoder(HeaderSize)
	h.appendTo(e)
	data := append(e.buf, make([]byte, motionBodySize+7)...)

	p, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, IDMotion, p.Body.ID())
}

func TestDecodeMotionValues(t *testing.T) {
	body := make([]byte, motionBodySize)
	// first car: world position x, y, z
	binary.LittleEndian.PutUint32(body[0:], math.Float32bits(-314.5))
	binary.LittleEndian.PutUint32(body[4:], math.Float32bits(12.0))
	binary.LittleEndian.PutUint32(body[8:], math.Float32bits(881.75))
	// second car: forward dir x at offset 60+24
	binary.LittleEndian.PutUint16(body[84:], uint16(0x7fff))
	// player-only block starts after the 22 car records
	binary.LittleEndian.PutUint32(body[22*60:], math.Float32bits(0.033))

	h := testHeader(IDMotion)
	e := newEncoder(HeaderSize + motionBodySize)
	h.appendTo(e)
	e.bytes(body)

	p, err := Decode(e.buf)
	require.NoError(t, err)
	m := p.Body.(*PacketMotionData)
	assert.Equal(t, float32(-314.5), m.CarMotionData[0].WorldPositionX)
	assert.Equal(t, float32(12.0), m.CarMotionData[0].WorldPositionY)
	assert.Equal(t, float32(881.75), m.CarMotionData[0].WorldPositionZ)
	assert.Equal(t, int16(32767), m.CarMotionData[1].WorldForwardDirX)
	assert.Equal(t, float32(0.033), m.SuspensionPosition.RearLeft)
}

func TestDecodeMalformedEnum(t *testing.T) {
	body := make([]byte, lapDataBodySize)
	body[46] = 9 // pitStatus of the first car

	h := testHeader(IDLapData)
	e := newEncoder(HeaderSize + lapDataBodySize)
	h.appendTo(e)
	e.bytes(body)

	_, err := Decode(e.buf)
	assert.Equal(t, ErrMalformedField{Field: "pitStatus", Value: 9}, err)
}

func TestSessionMarshalZoneCount(t *testing.T) {
	e := newEncoder(256)
	e.bytes(make([]byte, 18))
	e.u8(MaxMarshalZones + 1)

	_, err := decodeSession(e.buf)
	assert.Equal(t, ErrMalformedField{Field: "numMarshalZones", Value: MaxMarshalZones + 1}, err)
}

func TestSessionRoundTrip(t *testing.T) {
	s := &PacketSessionData{
		Weather:           WeatherLightRain,
		TrackTemperature:  31,
		AirTemperature:    24,
		TotalLaps:         52,
		TrackLength:       5891,
		SessionType:       SessionR,
		TrackID:           TrackSilverstone,
		Formula:           FormulaF1Modern,
		SessionTimeLeft:   3600,
		SessionDuration:   7200,
		PitSpeedLimit:     80,
		SpectatorCarIndex: 255,
		NumMarshalZones:   3,
		MarshalZones: []MarshalZone{
			{ZoneStart: 0.0, ZoneFlag: FlagNone},
			{ZoneStart: 0.33, ZoneFlag: FlagYellow},
			{ZoneStart: 0.75, ZoneFlag: FlagGreen},
		},
		SafetyCarStatus:           SafetyCarVirtual,
		NetworkGame:               NetworkGameOnline,
		NumWeatherForecastSamples: 2,
	}
	s.WeatherForecast[0] = WeatherForecastSample{
		SessionType: SessionR, TimeOffset: 5, Weather: WeatherOvercast,
		TrackTemperature: 30, AirTemperature: 23,
	}
	s.WeatherForecast[1] = WeatherForecastSample{
		SessionType: SessionR, TimeOffset: 10, Weather: WeatherLightRain,
		TrackTemperature: 28, AirTemperature: 22,
	}
	roundTrip(t, s)
}

func TestEventRoundTrip(t *testing.T) {
	for name, body := range map[string]*PacketEventData{
		"marker":    {Code: EventSessionStarted},
		"chequered": {Code: EventChequeredFlag},
		"fastestLap": {Code: EventFastestLap, Detail: FastestLap{
			VehicleIndex: 7, LapTime: 83.456,
		}},
		"retirement": {Code: EventRetirement, Detail: Retirement{VehicleIndex: 3}},
		"teamMate":   {Code: EventTeamMateInPits, Detail: TeamMateInPits{VehicleIndex: 11}},
		"raceWinner": {Code: EventRaceWinner, Detail: RaceWinner{VehicleIndex: 0}},
		"penalty": {Code: EventPenalty, Detail: Penalty{
			PenaltyType:      PenaltyTime,
			InfringementType: InfringementType(7),
			VehicleIndex:     4, OtherVehicleIndex: 9,
			Time: 5, LapNum: 12, PlacesGained: 1,
		}},
		"speedTrap": {Code: EventSpeedTrap, Detail: SpeedTrap{
			VehicleIndex: 14, Speed: 312.8,
		}},
	} {
		t.Run(name, func(t *testing.T) {
			roundTrip(t, body)
		})
	}
}

func TestEventBodyPadded(t *testing.T) {
	p := &Packet{Header: testHeader(IDEvent), Body: &PacketEventData{Code: EventSessionEnded}}
	raw := p.Serialize()
	assert.Len(t, raw, HeaderSize+eventBodySize)
}

func TestEventUnknownCode(t *testing.T) {
	body := append([]byte("XXXX"), make([]byte, 7)...)
	_, err := decodeEvent(body)
	var malformed ErrMalformedField
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "eventStringCode", malformed.Field)
}

func TestParticipantNames(t *testing.T) {
	p := &PacketParticipantsData{NumActiveCars: 2}
	p.Participants[0] = ParticipantData{
		Driver: 7, RaceNumber: 44, Nationality: 10,
		Name: "HAMILTON", YourTelemetry: TelemetryPublic,
	}
	p.Participants[1] = ParticipantData{
		AiControlled: true, Driver: 9, Team: 2, RaceNumber: 33, Nationality: 22,
		Name: "VERSTAPPEN",
	}
	roundTrip(t, p)

	// a name using the full 48 bytes survives unharmed
	long := make([]byte, nameFieldSize)
	for i := range long {
		long[i] = 'a'
	}
	p.Participants[0].Name = string(long)
	roundTrip(t, p)
}
