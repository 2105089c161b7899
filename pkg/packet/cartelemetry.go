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

const carTelemetryBodySize = 1283

func wheelSurface(d *decoder, field string) Wheel[SurfaceType] {
	return Wheel[SurfaceType]{
		RearLeft:   SurfaceType(enum8(d, field, uint8(SurfaceUnknown))),
		RearRight:  SurfaceType(enum8(d, field, uint8(SurfaceUnknown))),
		FrontLeft:  SurfaceType(enum8(d, field, uint8(SurfaceUnknown))),
		FrontRight: SurfaceType(enum8(d, field, uint8(SurfaceUnknown))),
	}
}

// CarTelemetryData is the live telemetry of one car
type CarTelemetryData struct {
	Speed                   uint16  // km/h
	Throttle                float32 // 0..1
	Steer                   float32 // -1..1, full left to full right
	Brake                   float32 // 0..1
	Clutch                  uint8   // percent
	Gear                    int8    // -1 = reverse, 0 = neutral
	EngineRPM               uint16
	DRS                     bool
	RevLightsPercent        uint8
	BrakesTemperature       Wheel[uint16] // celsius
	TyresSurfaceTemperature Wheel[uint8]  // celsius
	TyresInnerTemperature   Wheel[uint8]  // celsius
	EngineTemperature       uint16        // celsius
	TyresPressure           Wheel[float32]
	SurfaceType             Wheel[SurfaceType]
}

type PacketCarTelemetryData struct {
	CarTelemetryData [TotalCars]CarTelemetryData

	// ButtonStatus is a bit mask of the controller buttons currently
	// pressed by the player
	ButtonStatus            uint32
	MFDPanel                MFDPanel
	MFDPanelSecondaryPlayer MFDPanel
	SuggestedGear           int8 // 0 = no suggestion
}

func (*PacketCarTelemetryData) ID() ID { return IDCarTelemetry }

func decodeCarTelemetry(data []byte) (Body, error) {
	if len(data) < carTelemetryBodySize {
		return nil, ErrTruncated{Need: carTelemetryBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketCarTelemetryData{}
	for i := range p.CarTelemetryData {
		p.CarTelemetryData[i] = CarTelemetryData{
			Speed:                   d.u16(),
			Throttle:                d.f32(),
			Steer:                   d.f32(),
			Brake:                   d.f32(),
			Clutch:                  d.u8(),
			Gear:                    enumI8(d, "gear", -1, 8),
			EngineRPM:               d.u16(),
			DRS:                     readBool(d, "drs"),
			RevLightsPercent:        d.u8(),
			BrakesTemperature:       wheelU16(d),
			TyresSurfaceTemperature: wheelU8(d),
			TyresInnerTemperature:   wheelU8(d),
			EngineTemperature:       d.u16(),
			TyresPressure:           wheelF32(d),
			SurfaceType:             wheelSurface(d, "surfaceType"),
		}
		if d.err != nil {
			return nil, d.err
		}
	}

	p.ButtonStatus = d.u32()
	p.MFDPanel = decodeMFDPanel(d, "mfdPanelIndex")
	p.MFDPanelSecondaryPlayer = decodeMFDPanel(d, "mfdPanelIndexSecondaryPlayer")
	p.SuggestedGear = enumI8(d, "suggestedGear", 0, 8)

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

func (p *PacketCarTelemetryData) appendBody(e *encoder) {
	for i := range p.CarTelemetryData {
		c := &p.CarTelemetryData[i]
		e.u16(c.Speed)
		e.f32(c.Throttle)
		e.f32(c.Steer)
		e.f32(c.Brake)
		e.u8(c.Clutch)
		e.i8(c.Gear)
		e.u16(c.EngineRPM)
		e.bool(c.DRS)
		e.u8(c.RevLightsPercent)
		appendWheelU16(e, c.BrakesTemperature)
		appendWheelU8(e, c.TyresSurfaceTemperature)
		appendWheelU8(e, c.TyresInnerTemperature)
		e.u16(c.EngineTemperature)
		appendWheelF32(e, c.TyresPressure)
		e.u8(uint8(c.SurfaceType.RearLeft))
		e.u8(uint8(c.SurfaceType.RearRight))
		e.u8(uint8(c.SurfaceType.FrontLeft))
		e.u8(uint8(c.SurfaceType.FrontRight))
	}
	e.u32(p.ButtonStatus)
	e.u8(uint8(p.MFDPanel))
	e.u8(uint8(p.MFDPanelSecondaryPlayer))
	e.i8(p.SuggestedGear)
}
