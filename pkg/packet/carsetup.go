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

const carSetupsBodySize = 1078

// TyrePressure is one axle's tyre pressures in PSI
type TyrePressure struct {
	Left  float32
	Right float32
}

// CarSetupData is the setup of one car. In multiplayer other players'
// setups arrive zeroed.
type CarSetupData struct {
	FrontWing             uint8
	RearWing              uint8
	OnThrottle            uint8 // differential on throttle, percent
	OffThrottle           uint8
	FrontCamber           float32
	RearCamber            float32
	FrontToe              float32
	RearToe               float32
	FrontSuspension       uint8
	RearSuspension        uint8
	FrontAntiRollBar      uint8
	RearAntiRollBar       uint8
	FrontSuspensionHeight uint8
	RearSuspensionHeight  uint8
	BrakePressure         uint8 // percent
	BrakeBias             uint8 // percent
	RearTyrePressure      TyrePressure
	FrontTyrePressure     TyrePressure
	Ballast               uint8
	FuelLoad              float32 // kg
}

type PacketCarSetupData struct {
	CarSetups [TotalCars]CarSetupData
}

func (*PacketCarSetupData) ID() ID { return IDCarSetups }

func decodeCarSetups(data []byte) (Body, error) {
	if len(data) < carSetupsBodySize {
		return nil, ErrTruncated{Need: carSetupsBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketCarSetupData{}
	for i := range p.CarSetups {
		p.CarSetups[i] = CarSetupData{
			FrontWing:             d.u8(),
			RearWing:              d.u8(),
			OnThrottle:            d.u8(),
			OffThrottle:           d.u8(),
			FrontCamber:           d.f32(),
			RearCamber:            d.f32(),
			FrontToe:              d.f32(),
			RearToe:               d.f32(),
			FrontSuspension:       d.u8(),
			RearSuspension:        d.u8(),
			FrontAntiRollBar:      d.u8(),
			RearAntiRollBar:       d.u8(),
			FrontSuspensionHeight: d.u8(),
			RearSuspensionHeight:  d.u8(),
			BrakePressure:         d.u8(),
			BrakeBias:             d.u8(),
			RearTyrePressure:      TyrePressure{Left: d.f32(), Right: d.f32()},
			FrontTyrePressure:     TyrePressure{Left: d.f32(), Right: d.f32()},
			Ballast:               d.u8(),
			FuelLoad:              d.f32(),
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

func (p *PacketCarSetupData) appendBody(e *encoder) {
	for i := range p.CarSetups {
		s := &p.CarSetups[i]
		e.u8(s.FrontWing)
		e.u8(s.RearWing)
		e.u8(s.OnThrottle)
		e.u8(s.OffThrottle)
		e.f32(s.FrontCamber)
		e.f32(s.RearCamber)
		e.f32(s.FrontToe)
		e.f32(s.RearToe)
		e.u8(s.FrontSuspension)
		e.u8(s.RearSuspension)
		e.u8(s.FrontAntiRollBar)
		e.u8(s.RearAntiRollBar)
		e.u8(s.FrontSuspensionHeight)
		e.u8(s.RearSuspensionHeight)
		e.u8(s.BrakePressure)
		e.u8(s.BrakeBias)
		e.f32(s.RearTyrePressure.Left)
		e.f32(s.RearTyrePressure.Right)
		e.f32(s.FrontTyrePressure.Left)
		e.f32(s.FrontTyrePressure.Right)
		e.u8(s.Ballast)
		e.f32(s.FuelLoad)
	}
}
