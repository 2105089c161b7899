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

const lapDataBodySize = 1166

// LapData is the lap state of one car. Lap times are seconds, sector
// times milliseconds, distances metres.
type LapData struct {
	LastLapTime              float32
	CurrentLapTime           float32
	Sector1Time              uint16
	Sector2Time              uint16
	BestLapTime              float32
	BestLapNum               uint8
	BestLapSector1Time       uint16
	BestLapSector2Time       uint16
	BestLapSector3Time       uint16
	BestOverallSector1Time   uint16
	BestOverallSector1LapNum uint8
	BestOverallSector2Time   uint16
	BestOverallSector2LapNum uint8
	BestOverallSector3Time   uint16
	BestOverallSector3LapNum uint8
	LapDistance              float32 // can be negative before the start line
	TotalDistance            float32
	SafetyCarDelta           float32 // seconds
	CarPosition              uint8
	CurrentLapNum            uint8
	PitStatus                PitStatus
	Sector                   uint8
	CurrentLapInvalid        bool
	Penalties                uint8 // accumulated time penalties in seconds
	GridPosition             uint8
	DriverStatus             DriverStatus
	ResultStatus             ResultStatus
}

type PacketLapData struct {
	LapData [TotalCars]LapData
}

func (*PacketLapData) ID() ID { return IDLapData }

func decodeLapData(data []byte) (Body, error) {
	if len(data) < lapDataBodySize {
		return nil, ErrTruncated{Need: lapDataBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketLapData{}
	for i := range p.LapData {
		p.LapData[i] = LapData{
			LastLapTime:              d.f32(),
			CurrentLapTime:           d.f32(),
			Sector1Time:              d.u16(),
			Sector2Time:              d.u16(),
			BestLapTime:              d.f32(),
			BestLapNum:               d.u8(),
			BestLapSector1Time:       d.u16(),
			BestLapSector2Time:       d.u16(),
			BestLapSector3Time:       d.u16(),
			BestOverallSector1Time:   d.u16(),
			BestOverallSector1LapNum: d.u8(),
			BestOverallSector2Time:   d.u16(),
			BestOverallSector2LapNum: d.u8(),
			BestOverallSector3Time:   d.u16(),
			BestOverallSector3LapNum: d.u8(),
			LapDistance:              d.f32(),
			TotalDistance:            d.f32(),
			SafetyCarDelta:           d.f32(),
			CarPosition:              d.u8(),
			CurrentLapNum:            d.u8(),
			PitStatus:                PitStatus(enum8(d, "pitStatus", uint8(PitStatusPitArea))),
			Sector:                   d.u8(),
			CurrentLapInvalid:        readBool(d, "currentLapInvalid"),
			Penalties:                d.u8(),
			GridPosition:             d.u8(),
			DriverStatus:             DriverStatus(enum8(d, "driverStatus", uint8(DriverStatusOnTrack))),
			ResultStatus:             ResultStatus(enum8(d, "resultStatus", uint8(ResultStatusRetired))),
		}
		if d.err != nil {
			return nil, d.err
		}
	}

	return p, nil
}

func (p *PacketLapData) appendBody(e *encoder) {
	for i := range p.LapData {
		l := &p.LapData[i]
		e.f32(l.LastLapTime)
		e.f32(l.CurrentLapTime)
		e.u16(l.Sector1Time)
		e.u16(l.Sector2Time)
		e.f32(l.BestLapTime)
		e.u8(l.BestLapNum)
		e.u16(l.BestLapSector1Time)
		e.u16(l.BestLapSector2Time)
		e.u16(l.BestLapSector3Time)
		e.u16(l.BestOverallSector1Time)
		e.u8(l.BestOverallSector1LapNum)
		e.u16(l.BestOverallSector2Time)
		e.u8(l.BestOverallSector2LapNum)
		e.u16(l.BestOverallSector3Time)
		e.u8(l.BestOverallSector3LapNum)
		e.f32(l.LapDistance)
		e.f32(l.TotalDistance)
		e.f32(l.SafetyCarDelta)
		e.u8(l.CarPosition)
		e.u8(l.CurrentLapNum)
		e.u8(uint8(l.PitStatus))
		e.u8(l.Sector)
		e.bool(l.CurrentLapInvalid)
		e.u8(l.Penalties)
		e.u8(l.GridPosition)
		e.u8(uint8(l.DriverStatus))
		e.u8(uint8(l.ResultStatus))
	}
}
