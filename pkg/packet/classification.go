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
	finalClassificationBodySize = 815

	// MaxTyreStints is the fixed size of the per-car tyre stint arrays
	MaxTyreStints = 8
)

// FinalClassificationData is one car's final result of the session
type FinalClassificationData struct {
	Position     uint8
	NumLaps      uint8
	GridPosition uint8
	Points       uint8
	NumPitStops  uint8
	ResultStatus ResultStatus
	BestLapTime  float32 // seconds
	// TotalRaceTime excludes penalties
	TotalRaceTime    float64 // seconds
	PenaltiesTime    uint8   // seconds
	NumPenalties     uint8
	NumTyreStints    uint8
	TyreStintsActual [MaxTyreStints]TyreCompound
	TyreStintsVisual [MaxTyreStints]VisualTyreCompound
}

type PacketFinalClassificationData struct {
	NumCars            uint8
	ClassificationData [TotalCars]FinalClassificationData
}

func (*PacketFinalClassificationData) ID() ID { return IDFinalClassification }

func decodeFinalClassification(data []byte) (Body, error) {
	if len(data) < finalClassificationBodySize {
		return nil, ErrTruncated{Need: finalClassificationBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketFinalClassificationData{NumCars: d.u8()}
	for i := range p.ClassificationData {
		c := FinalClassificationData{
			Position:      d.u8(),
			NumLaps:       d.u8(),
			GridPosition:  d.u8(),
			Points:        d.u8(),
			NumPitStops:   d.u8(),
			ResultStatus:  ResultStatus(enum8(d, "resultStatus", uint8(ResultStatusRetired))),
			BestLapTime:   d.f32(),
			TotalRaceTime: d.f64(),
			PenaltiesTime: d.u8(),
			NumPenalties:  d.u8(),
			NumTyreStints: d.u8(),
		}
		for s := range c.TyreStintsActual {
			c.TyreStintsActual[s] = decodeTyreCompound(d, "tyreStintsActual")
		}
		for s := range c.TyreStintsVisual {
			c.TyreStintsVisual[s] = decodeVisualTyreCompound(d, "tyreStintsVisual")
		}
		if d.err != nil {
			return nil, d.err
		}
		p.ClassificationData[i] = c
	}

	return p, nil
}

func (p *PacketFinalClassificationData) appendBody(e *encoder) {
	e.u8(p.NumCars)
	for i := range p.ClassificationData {
		c := &p.ClassificationData[i]
		e.u8(c.Position)
		e.u8(c.NumLaps)
		e.u8(c.GridPosition)
		e.u8(c.Points)
		e.u8(c.NumPitStops)
		e.u8(uint8(c.ResultStatus))
		e.f32(c.BestLapTime)
		e.f64(c.TotalRaceTime)
		e.u8(c.PenaltiesTime)
		e.u8(c.NumPenalties)
		e.u8(c.NumTyreStints)
		for _, t := range c.TyreStintsActual {
			e.u8(uint8(t))
		}
		for _, t := range c.TyreStintsVisual {
			e.u8(uint8(t))
		}
	}
}
