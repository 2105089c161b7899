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

const carStatusBodySize = 1320

// CarStatusData is the status of one car's systems. Restricted cars
// arrive zeroed when the owner keeps their telemetry private.
type CarStatusData struct {
	TractionControl       TractionControl
	AntiLockBrakes        bool
	FuelMix               FuelMix
	FrontBrakeBias        uint8 // percent
	PitLimiter            bool
	FuelInTank            float32 // kg
	FuelCapacity          float32 // kg
	FuelRemainingLaps     float32
	MaxRPM                uint16
	IdleRPM               uint16
	MaxGears              uint8
	DRSAllowed            DRSStatus
	DRSActivationDistance uint16       // metres, 0 when DRS not available
	TyresWear             Wheel[uint8] // percent
	ActualTyreCompound    TyreCompound
	VisualTyreCompound    VisualTyreCompound
	TyresAgeLaps          uint8
	TyresDamage           Wheel[uint8] // percent
	FrontLeftWingDamage   uint8        // percent
	FrontRightWingDamage  uint8
	RearWingDamage        uint8
	DRSFault              bool
	EngineDamage          uint8 // percent
	GearBoxDamage         uint8 // percent
	VehicleFIAFlag        ZoneFlag
	ERSStoreEnergy        float32 // joules
	ERSDeployMode         ERSDeployMode
	ERSHarvestedMGUK      float32 // joules harvested this lap
	ERSHarvestedMGUH      float32
	ERSDeployed           float32 // joules deployed this lap
}

type PacketCarStatusData struct {
	CarStatusData [TotalCars]CarStatusData
}

func (*PacketCarStatusData) ID() ID { return IDCarStatus }

func decodeCarStatus(data []byte) (Body, error) {
	if len(data) < carStatusBodySize {
		return nil, ErrTruncated{Need: carStatusBodySize, Have: len(data)}
	}

	d := newDecoder(data)
	p := &PacketCarStatusData{}
	for i := range p.CarStatusData {
		p.CarStatusData[i] = CarStatusData{
			TractionControl:       TractionControl(enum8(d, "tractionControl", uint8(TractionControlHigh))),
			AntiLockBrakes:        readBool(d, "antiLockBrakes"),
			FuelMix:               FuelMix(enum8(d, "fuelMix", uint8(FuelMixMax))),
			FrontBrakeBias:        d.u8(),
			PitLimiter:            readBool(d, "pitLimiterStatus"),
			FuelInTank:            d.f32(),
			FuelCapacity:          d.f32(),
			FuelRemainingLaps:     d.f32(),
			MaxRPM:                d.u16(),
			IdleRPM:               d.u16(),
			MaxGears:              d.u8(),
			DRSAllowed:            DRSStatus(enumI8(d, "drsAllowed", int8(DRSUnknown), int8(DRSAllowed))),
			DRSActivationDistance: d.u16(),
			TyresWear:             wheelU8(d),
			ActualTyreCompound:    decodeTyreCompound(d, "actualTyreCompound"),
			VisualTyreCompound:    decodeVisualTyreCompound(d, "visualTyreCompound"),
			TyresAgeLaps:          d.u8(),
			TyresDamage:           wheelU8(d),
			FrontLeftWingDamage:   d.u8(),
			FrontRightWingDamage:  d.u8(),
			RearWingDamage:        d.u8(),
			DRSFault:              readBool(d, "drsFault"),
			EngineDamage:          d.u8(),
			GearBoxDamage:         d.u8(),
			VehicleFIAFlag:        ZoneFlag(enumI8(d, "vehicleFiaFlags", int8(FlagUnknown), int8(FlagRed))),
			ERSStoreEnergy:        d.f32(),
			ERSDeployMode:         ERSDeployMode(enum8(d, "ersDeployMode", uint8(ERSDeployHotlap))),
			ERSHarvestedMGUK:      d.f32(),
			ERSHarvestedMGUH:      d.f32(),
			ERSDeployed:           d.f32(),
		}
		if d.err != nil {
			return nil, d.err
		}
	}

	return p, nil
}

func (p *PacketCarStatusData) appendBody(e *encoder) {
	for i := range p.CarStatusData {
		s := &p.CarStatusData[i]
		e.u8(uint8(s.TractionControl))
		e.bool(s.AntiLockBrakes)
		e.u8(uint8(s.FuelMix))
		e.u8(s.FrontBrakeBias)
		e.bool(s.PitLimiter)
		e.f32(s.FuelInTank)
		e.f32(s.FuelCapacity)
		e.f32(s.FuelRemainingLaps)
		e.u16(s.MaxRPM)
		e.u16(s.IdleRPM)
		e.u8(s.MaxGears)
		e.i8(int8(s.DRSAllowed))
		e.u16(s.DRSActivationDistance)
		appendWheelU8(e, s.TyresWear)
		e.u8(uint8(s.ActualTyreCompound))
		e.u8(uint8(s.VisualTyreCompound))
		e.u8(s.TyresAgeLaps)
		appendWheelU8(e, s.TyresDamage)
		e.u8(s.FrontLeftWingDamage)
		e.u8(s.FrontRightWingDamage)
		e.u8(s.RearWingDamage)
		e.bool(s.DRSFault)
		e.u8(s.EngineDamage)
		e.u8(s.GearBoxDamage)
		e.i8(int8(s.VehicleFIAFlag))
		e.f32(s.ERSStoreEnergy)
		e.u8(uint8(s.ERSDeployMode))
		e.f32(s.ERSHarvestedMGUK)
		e.f32(s.ERSHarvestedMGUH)
		e.f32(s.ERSDeployed)
	}
}
