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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMotionRoundTrip(t *testing.T) {
	m := &PacketMotionData{
		WheelSpeed:       Wheel[float32]{RearLeft: 81.2, RearRight: 81.4, FrontLeft: 80.9, FrontRight: 81.0},
		FrontWheelsAngle: -0.12,
		LocalVelocityZ:   72.5,
	}
	m.CarMotionData[0] = CarMotionData{
		WorldPositionX: 120.5, WorldPositionZ: -93.25,
		WorldForwardDirX: -17500, WorldRightDirZ: 30120,
		GForceLateral: 2.4, Yaw: 1.04,
	}
	m.CarMotionData[21] = CarMotionData{WorldVelocityX: -44.1, Pitch: -0.02}
	roundTrip(t, m)
}

func TestLapDataRoundTrip(t *testing.T) {
	l := &PacketLapData{}
	l.LapData[0] = LapData{
		LastLapTime:       92.337,
		CurrentLapTime:    45.002,
		Sector1Time:       28771,
		BestLapTime:       91.855,
		BestLapNum:        3,
		LapDistance:       2301.5,
		TotalDistance:     18231.75,
		CarPosition:       4,
		CurrentLapNum:     7,
		PitStatus:         PitStatusPitting,
		Sector:            1,
		CurrentLapInvalid: true,
		Penalties:         5,
		GridPosition:      10,
		DriverStatus:      DriverStatusOnTrack,
		ResultStatus:      ResultStatusActive,
	}
	roundTrip(t, l)
}

func TestCarSetupsRoundTrip(t *testing.T) {
	s := &PacketCarSetupData{}
	s.CarSetups[3] = CarSetupData{
		FrontWing: 6, RearWing: 7,
		OnThrottle: 75, OffThrottle: 60,
		FrontCamber: -2.5, RearCamber: -1.0,
		FrontToe: 0.05, RearToe: 0.2,
		BrakePressure: 95, BrakeBias: 56,
		RearTyrePressure:  TyrePressure{Left: 21.5, Right: 21.6},
		FrontTyrePressure: TyrePressure{Left: 23.0, Right: 23.1},
		FuelLoad:          42.75,
	}
	roundTrip(t, s)
}

func TestCarTelemetryRoundTrip(t *testing.T) {
	c := &PacketCarTelemetryData{
		ButtonStatus:            0x0009,
		MFDPanel:                MFDPanelClosed,
		MFDPanelSecondaryPlayer: MFDPanelDamage,
		SuggestedGear:           4,
	}
	c.CarTelemetryData[19] = CarTelemetryData{
		Speed:            287,
		Throttle:         1.0,
		Steer:            -0.2,
		Gear:             7,
		EngineRPM:        11250,
		DRS:              true,
		RevLightsPercent: 85,
		BrakesTemperature: Wheel[uint16]{
			RearLeft: 410, RearRight: 415, FrontLeft: 550, FrontRight: 545,
		},
		TyresSurfaceTemperature: Wheel[uint8]{
			RearLeft: 98, RearRight: 99, FrontLeft: 92, FrontRight: 93,
		},
		EngineTemperature: 108,
		TyresPressure: Wheel[float32]{
			RearLeft: 21.4, RearRight: 21.5, FrontLeft: 23.2, FrontRight: 23.3,
		},
		SurfaceType: Wheel[SurfaceType]{
			RearLeft: SurfaceTarmac, RearRight: SurfaceTarmac,
			FrontLeft: SurfaceRumbleStrip, FrontRight: SurfaceTarmac,
		},
	}
	roundTrip(t, c)
}

func TestCarTelemetryMalformedGear(t *testing.T) {
	body := make([]byte, carTelemetryBodySize)
	body[15] = 0xf0 // gear of the first car, -16 as a signed byte

	_, err := decodeCarTelemetry(body)
	assert.Equal(t, ErrMalformedField{Field: "gear", Value: -16}, err)
}

func TestCarStatusRoundTrip(t *testing.T) {
	s := &PacketCarStatusData{}
	s.CarStatusData[19] = CarStatusData{
		TractionControl:       TractionControlLow,
		AntiLockBrakes:        true,
		FuelMix:               FuelMixRich,
		FrontBrakeBias:        58,
		FuelInTank:            31.2,
		FuelCapacity:          110,
		FuelRemainingLaps:     2.3,
		MaxRPM:                12500,
		IdleRPM:               3500,
		MaxGears:              8,
		DRSAllowed:            DRSAllowed,
		DRSActivationDistance: 480,
		TyresWear:             Wheel[uint8]{RearLeft: 22, RearRight: 23, FrontLeft: 15, FrontRight: 16},
		ActualTyreCompound:    TyreCompoundC3,
		VisualTyreCompound:    VisualTyreMedium,
		TyresAgeLaps:          11,
		RearWingDamage:        5,
		VehicleFIAFlag:        FlagBlue,
		ERSStoreEnergy:        3.8e6,
		ERSDeployMode:         ERSDeployOvertake,
		ERSHarvestedMGUK:      1.2e6,
		ERSHarvestedMGUH:      0.9e6,
		ERSDeployed:           2.1e6,
	}
	roundTrip(t, s)
}

func TestCarStatusMalformedCompound(t *testing.T) {
	body := make([]byte, carStatusBodySize)
	body[29] = 3 // actualTyreCompound of the first car

	_, err := decodeCarStatus(body)
	assert.Equal(t, ErrMalformedField{Field: "actualTyreCompound", Value: 3}, err)
}

func TestFinalClassificationRoundTrip(t *testing.T) {
	f := &PacketFinalClassificationData{NumCars: 20}
	f.ClassificationData[0] = FinalClassificationData{
		Position:      1,
		NumLaps:       52,
		GridPosition:  2,
		Points:        26,
		NumPitStops:   2,
		ResultStatus:  ResultStatusFinished,
		BestLapTime:   89.412,
		TotalRaceTime: 5122.881,
		NumTyreStints: 3,
		TyreStintsActual: [MaxTyreStints]TyreCompound{
			TyreCompoundC4, TyreCompoundC3, TyreCompoundC3,
		},
		TyreStintsVisual: [MaxTyreStints]VisualTyreCompound{
			VisualTyreSoft, VisualTyreMedium, VisualTyreMedium,
		},
	}
	f.ClassificationData[1] = FinalClassificationData{
		Position:     19,
		NumLaps:      48,
		ResultStatus: ResultStatusRetired,
	}
	roundTrip(t, f)
}

func TestLobbyInfoRoundTrip(t *testing.T) {
	l := &PacketLobbyInfoData{NumPlayers: 3}
	l.LobbyPlayers[0] = LobbyInfoData{
		Team: 8, Nationality: 22, Name: "MaxV", ReadyStatus: ReadyStatusReady,
	}
	l.LobbyPlayers[1] = LobbyInfoData{
		AiControlled: true, Team: 1, Nationality: 41, Name: "AI 1",
	}
	l.LobbyPlayers[2] = LobbyInfoData{
		Team: TeamMyTeam, Nationality: 0, Name: "spec", ReadyStatus: ReadyStatusSpectating,
	}
	roundTrip(t, l)
}

func TestLobbyInfoMalformedReadyStatus(t *testing.T) {
	body := make([]byte, lobbyInfoBodySize)
	body[52] = 7 // readyStatus of the first player

	_, err := decodeLobbyInfo(body)
	require.Error(t, err)
	assert.Equal(t, ErrMalformedField{Field: "readyStatus", Value: 7}, err)
}
