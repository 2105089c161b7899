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

// The event body is a fixed-size union: a 4-byte ASCII code followed by
// 7 bytes of detail, zero-padded for events without one.
const eventBodySize = 11

// EventCode is the 4-character code identifying an event
type EventCode string

const (
	EventSessionStarted EventCode = "SSTA"
	EventSessionEnded   EventCode = "SEND"
	EventFastestLap     EventCode = "FTLP"
	EventRetirement     EventCode = "RTMT"
	EventDRSEnabled     EventCode = "DRSE"
	EventDRSDisabled    EventCode = "DRSD"
	EventTeamMateInPits EventCode = "TMPT"
	EventChequeredFlag  EventCode = "CHQF"
	EventRaceWinner     EventCode = "RCWN"
	EventPenalty        EventCode = "PENA"
	EventSpeedTrap      EventCode = "SPTP"
)

// EventDetail is the payload of events that carry one
type EventDetail interface {
	appendDetail(e *encoder)
}

type FastestLap struct {
	VehicleIndex uint8
	LapTime      float32 // seconds
}

func (v FastestLap) appendDetail(e *encoder) {
	e.u8(v.VehicleIndex)
	e.f32(v.LapTime)
}

type Retirement struct {
	VehicleIndex uint8
}

func (v Retirement) appendDetail(e *encoder) {
	e.u8(v.VehicleIndex)
}

type TeamMateInPits struct {
	VehicleIndex uint8
}

func (v TeamMateInPits) appendDetail(e *encoder) {
	e.u8(v.VehicleIndex)
}

type RaceWinner struct {
	VehicleIndex uint8
}

func (v RaceWinner) appendDetail(e *encoder) {
	e.u8(v.VehicleIndex)
}

type PenaltyType uint8

const (
	PenaltyDriveThrough PenaltyType = iota
	PenaltyStopGo
	PenaltyGrid
	PenaltyReminder
	PenaltyTime
	PenaltyWarning
	PenaltyDisqualified
	PenaltyRemovedFromFormationLap
	PenaltyParkedTooLongTimer
	PenaltyTyreRegulations
	PenaltyThisLapInvalidated
	PenaltyThisAndNextLapInvalidated
	PenaltyThisLapInvalidatedWithoutReason
	PenaltyThisAndNextLapInvalidatedWithoutReason
	PenaltyThisAndPreviousLapInvalidated
	PenaltyThisAndPreviousLapInvalidatedWithoutReason
	PenaltyRetired
	PenaltyBlackFlagTimer
)

type InfringementType uint8

const maxInfringementType = 51

type Penalty struct {
	PenaltyType       PenaltyType
	InfringementType  InfringementType
	VehicleIndex      uint8
	OtherVehicleIndex uint8
	Time              uint8 // seconds gained or spent
	LapNum            uint8
	PlacesGained      uint8
}

func (v Penalty) appendDetail(e *encoder) {
	e.u8(uint8(v.PenaltyType))
	e.u8(uint8(v.InfringementType))
	e.u8(v.VehicleIndex)
	e.u8(v.OtherVehicleIndex)
	e.u8(v.Time)
	e.u8(v.LapNum)
	e.u8(v.PlacesGained)
}

type SpeedTrap struct {
	VehicleIndex uint8
	Speed        float32 // km/h
}

func (v SpeedTrap) appendDetail(e *encoder) {
	e.u8(v.VehicleIndex)
	e.f32(v.Speed)
}

// PacketEventData is one session event. Detail is nil for events that
// carry no payload.
type PacketEventData struct {
	Code   EventCode
	Detail EventDetail
}

func (*PacketEventData) ID() ID { return IDEvent }

func decodeEvent(data []byte) (Body, error) {
	if len(data) < eventBodySize {
		return nil, ErrTruncated{Need: eventBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketEventData{Code: EventCode(d.bytes(4))}

	switch p.Code {
	case EventSessionStarted, EventSessionEnded, EventDRSEnabled, EventDRSDisabled, EventChequeredFlag:
	case EventFastestLap:
		p.Detail = FastestLap{VehicleIndex: d.u8(), LapTime: d.f32()}
	case EventRetirement:
		p.Detail = Retirement{VehicleIndex: d.u8()}
	case EventTeamMateInPits:
		p.Detail = TeamMateInPits{VehicleIndex: d.u8()}
	case EventRaceWinner:
		p.Detail = RaceWinner{VehicleIndex: d.u8()}
	case EventPenalty:
		p.Detail = Penalty{
			PenaltyType:       PenaltyType(enum8(d, "penaltyType", uint8(PenaltyBlackFlagTimer))),
			InfringementType:  InfringementType(enum8(d, "infringementType", maxInfringementType)),
			VehicleIndex:      d.u8(),
			OtherVehicleIndex: d.u8(),
			Time:              d.u8(),
			LapNum:            d.u8(),
			PlacesGained:      d.u8(),
		}
	case EventSpeedTrap:
		p.Detail = SpeedTrap{VehicleIndex: d.u8(), Speed: d.f32()}
	default:
		return nil, ErrMalformedField{Field: "eventStringCode", Value: int64(data[0])}
	}

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

func (p *PacketEventData) appendBody(e *encoder) {
	start := len(e.buf)
	e.bytes([]byte(p.Code))
	if p.Detail != nil {
		p.Detail.appendDetail(e)
	}
	for len(e.buf)-start < eventBodySize {
		e.u8(0)
	}
}
