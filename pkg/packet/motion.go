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

// TotalCars is the number of car slots in every per-car packet array
const TotalCars = 22

const motionBodySize = 1440

// Wheel holds one value per wheel in wire order: rear left, rear right,
// front left, front right.
type Wheel[T any] struct {
	RearLeft   T
	RearRight  T
	FrontLeft  T
	FrontRight T
}

func wheelF32(d *decoder) Wheel[float32] {
	return Wheel[float32]{
		RearLeft:   d.f32(),
		RearRight:  d.f32(),
		FrontLeft:  d.f32(),
		FrontRight: d.f32(),
	}
}

func wheelU16(d *decoder) Wheel[uint16] {
	return Wheel[uint16]{
		RearLeft:   d.u16(),
		RearRight:  d.u16(),
		FrontLeft:  d.u16(),
		FrontRight: d.u16(),
	}
}

func wheelU8(d *decoder) Wheel[uint8] {
	return Wheel[uint8]{
		RearLeft:   d.u8(),
		RearRight:  d.u8(),
		FrontLeft:  d.u8(),
		FrontRight: d.u8(),
	}
}

func appendWheelF32(e *encoder, w Wheel[float32]) {
	e.f32(w.RearLeft)
	e.f32(w.RearRight)
	e.f32(w.FrontLeft)
	e.f32(w.FrontRight)
}

func appendWheelU16(e *encoder, w Wheel[uint16]) {
	e.u16(w.RearLeft)
	e.u16(w.RearRight)
	e.u16(w.FrontLeft)
	e.u16(w.FrontRight)
}

func appendWheelU8(e *encoder, w Wheel[uint8]) {
	e.u8(w.RearLeft)
	e.u8(w.RearRight)
	e.u8(w.FrontLeft)
	e.u8(w.FrontRight)
}

// CarMotionData is the world-space motion of one car
type CarMotionData struct {
	WorldPositionX     float32
	WorldPositionY     float32
	WorldPositionZ     float32
	WorldVelocityX     float32
	WorldVelocityY     float32
	WorldVelocityZ     float32
	WorldForwardDirX   int16 // normalised direction, scaled by 32767
	WorldForwardDirY   int16
	WorldForwardDirZ   int16
	WorldRightDirX     int16
	WorldRightDirY     int16
	WorldRightDirZ     int16
	GForceLateral      float32
	GForceLongitudinal float32
	GForceVertical     float32
	Yaw                float32
	Pitch              float32
	Roll               float32
}

// PacketMotionData carries motion for every car plus extra player-car
// physics the game only reports for the player
type PacketMotionData struct {
	CarMotionData          [TotalCars]CarMotionData
	SuspensionPosition     Wheel[float32]
	SuspensionVelocity     Wheel[float32]
	SuspensionAcceleration Wheel[float32]
	WheelSpeed             Wheel[float32]
	WheelSlip              Wheel[float32]
	LocalVelocityX         float32
	LocalVelocityY         float32
	LocalVelocityZ         float32
	AngularVelocityX       float32
	AngularVelocityY       float32
	AngularVelocityZ       float32
	AngularAccelerationX   float32
	AngularAccelerationY   float32
	AngularAccelerationZ   float32
	FrontWheelsAngle       float32 // radians
}

func (*PacketMotionData) ID() ID { return IDMotion }

func decodeMotion(data []byte) (Body, error) {
	if len(data) < motionBodySize {
		return nil, ErrTruncated{Need: motionBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketMotionData{}
	for i := range p.CarMotionData {
		p.CarMotionData[i] = CarMotionData{
			WorldPositionX:     d.f32(),
			WorldPositionY:     d.f32(),
			WorldPositionZ:     d.f32(),
			WorldVelocityX:     d.f32(),
			WorldVelocityY:     d.f32(),
			WorldVelocityZ:     d.f32(),
			WorldForwardDirX:   d.i16(),
			WorldForwardDirY:   d.i16(),
			WorldForwardDirZ:   d.i16(),
			WorldRightDirX:     d.i16(),
			WorldRightDirY:     d.i16(),
			WorldRightDirZ:     d.i16(),
			GForceLateral:      d.f32(),
			GForceLongitudinal: d.f32(),
			GForceVertical:     d.f32(),
			Yaw:                d.f32(),
			Pitch:              d.f32(),
			Roll:               d.f32(),
		}
	}

	p.SuspensionPosition = wheelF32(d)
	p.SuspensionVelocity = wheelF32(d)
	p.SuspensionAcceleration = wheelF32(d)
	p.WheelSpeed = wheelF32(d)
	p.WheelSlip = wheelF32(d)
	p.LocalVelocityX = d.f32()
	p.LocalVelocityY = d.f32()
	p.LocalVelocityZ = d.f32()
	p.AngularVelocityX = d.f32()
	p.AngularVelocityY = d.f32()
	p.AngularVelocityZ = d.f32()
	p.AngularAccelerationX = d.f32()
	p.AngularAccelerationY = d.f32()
	p.AngularAccelerationZ = d.f32()
	p.FrontWheelsAngle = d.f32()

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

func (p *PacketMotionData) appendBody(e *encoder) {
	for i := range p.CarMotionData {
		c := &p.CarMotionData[i]
		e.f32(c.WorldPositionX)
		e.f32(c.WorldPositionY)
		e.f32(c.WorldPositionZ)
		e.f32(c.WorldVelocityX)
		e.f32(c.WorldVelocityY)
		e.f32(c.WorldVelocityZ)
		e.i16(c.WorldForwardDirX)
		e.i16(c.WorldForwardDirY)
		e.i16(c.WorldForwardDirZ)
		e.i16(c.WorldRightDirX)
		e.i16(c.WorldRightDirY)
		e.i16(c.WorldRightDirZ)
		e.f32(c.GForceLateral)
		e.f32(c.GForceLongitudinal)
		e.f32(c.GForceVertical)
		e.f32(c.Yaw)
		e.f32(c.Pitch)
		e.f32(c.Roll)
	}
	appendWheelF32(e, p.SuspensionPosition)
	appendWheelF32(e, p.SuspensionVelocity)
	appendWheelF32(e, p.SuspensionAcceleration)
	appendWheelF32(e, p.WheelSpeed)
	appendWheelF32(e, p.WheelSlip)
	e.f32(p.LocalVelocityX)
	e.f32(p.LocalVelocityY)
	e.f32(p.LocalVelocityZ)
	e.f32(p.AngularVelocityX)
	e.f32(p.AngularVelocityY)
	e.f32(p.AngularVelocityZ)
	e.f32(p.AngularAccelerationX)
	e.f32(p.AngularAccelerationY)
	e.f32(p.AngularAccelerationZ)
	e.f32(p.FrontWheelsAngle)
}
