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
	// MaxMarshalZones is the most marshal zones a track can have
	MaxMarshalZones = 21
	// WeatherForecastSamples is the fixed size of the forecast block
	WeatherForecastSamples = 20

	marshalZoneSize = 5
)

// MarshalZone is one marshalling segment of the track
type MarshalZone struct {
	ZoneStart float32 // fraction (0..1) of the lap where the zone starts
	ZoneFlag  ZoneFlag
}

// WeatherForecastSample is one entry of the session weather forecast
type WeatherForecastSample struct {
	SessionType      SessionType
	TimeOffset       uint8 // minutes into the future
	Weather          Weather
	TrackTemperature int8 // celsius
	AirTemperature   int8 // celsius
}

type PacketSessionData struct {
	Weather                   Weather
	TrackTemperature          int8 // celsius
	AirTemperature            int8 // celsius
	TotalLaps                 uint8
	TrackLength               uint16 // metres
	SessionType               SessionType
	TrackID                   TrackID
	Formula                   Formula
	SessionTimeLeft           uint16 // seconds
	SessionDuration           uint16 // seconds
	PitSpeedLimit             uint8  // km/h
	GamePaused                uint8
	IsSpectating              uint8
	SpectatorCarIndex         uint8
	SliProNativeSupport       uint8
	NumMarshalZones           uint8
	MarshalZones              []MarshalZone
	SafetyCarStatus           SafetyCar
	NetworkGame               NetworkGame
	NumWeatherForecastSamples uint8
	WeatherForecast           [WeatherForecastSamples]WeatherForecastSample
}

func (*PacketSessionData) ID() ID { return IDSession }

func decodeSession(data []byte) (Body, error) {
	d := newDecoder(data)
	p := &PacketSessionData{
		Weather:             Weather(enum8(d, "weather", uint8(WeatherStorm))),
		TrackTemperature:    d.i8(),
		AirTemperature:      d.i8(),
		TotalLaps:           d.u8(),
		TrackLength:         d.u16(),
		SessionType:         SessionType(enum8(d, "sessionType", uint8(SessionTimeTrial))),
		TrackID:             TrackID(enumI8(d, "trackId", int8(TrackUnknown), int8(TrackZandvoort))),
		Formula:             Formula(enum8(d, "formula", uint8(FormulaF1Generic))),
		SessionTimeLeft:     d.u16(),
		SessionDuration:     d.u16(),
		PitSpeedLimit:       d.u8(),
		GamePaused:          d.u8(),
		IsSpectating:        d.u8(),
		SpectatorCarIndex:   d.u8(),
		SliProNativeSupport: d.u8(),
	}

	p.NumMarshalZones = d.u8()
	if d.err == nil && p.NumMarshalZones > MaxMarshalZones {
		return nil, ErrMalformedField{Field: "numMarshalZones", Value: int64(p.NumMarshalZones)}
	}
	// The whole zone list must fit before any element is read
	if !d.need(int(p.NumMarshalZones) * marshalZoneSize) {
		return nil, d.err
	}
	p.MarshalZones = make([]MarshalZone, 0, p.NumMarshalZones)
	for i := uint8(0); i < p.NumMarshalZones; i++ {
		p.MarshalZones = append(p.MarshalZones, MarshalZone{
			ZoneStart: d.f32(),
			ZoneFlag:  ZoneFlag(enumI8(d, "zoneFlag", int8(FlagUnknown), int8(FlagRed))),
		})
	}

	p.SafetyCarStatus = SafetyCar(enum8(d, "safetyCarStatus", uint8(SafetyCarVirtual)))
	p.NetworkGame = NetworkGame(enum8(d, "networkGame", uint8(NetworkGameOnline)))

	p.NumWeatherForecastSamples = d.u8()
	for i := range p.WeatherForecast {
		p.WeatherForecast[i] = WeatherForecastSample{
			SessionType:      SessionType(enum8(d, "forecastSessionType", uint8(SessionTimeTrial))),
			TimeOffset:       d.u8(),
			Weather:          Weather(enum8(d, "forecastWeather", uint8(WeatherStorm))),
			TrackTemperature: d.i8(),
			AirTemperature:   d.i8(),
		}
	}

	if d.err != nil {
		return nil, d.err
	}
	return p, nil
}

func (p *PacketSessionData) appendBody(e *encoder) {
	e.u8(uint8(p.Weather))
	e.i8(p.TrackTemperature)
	e.i8(p.AirTemperature)
	e.u8(p.TotalLaps)
	e.u16(p.TrackLength)
	e.u8(uint8(p.SessionType))
	e.i8(int8(p.TrackID))
	e.u8(uint8(p.Formula))
	e.u16(p.SessionTimeLeft)
	e.u16(p.SessionDuration)
	e.u8(p.PitSpeedLimit)
	e.u8(p.GamePaused)
	e.u8(p.IsSpectating)
	e.u8(p.SpectatorCarIndex)
	e.u8(p.SliProNativeSupport)
	e.u8(p.NumMarshalZones)
	for _, z := range p.MarshalZones {
		e.f32(z.ZoneStart)
		e.i8(int8(z.ZoneFlag))
	}
	e.u8(uint8(p.SafetyCarStatus))
	e.u8(uint8(p.NetworkGame))
	e.u8(p.NumWeatherForecastSamples)
	for i := range p.WeatherForecast {
		s := &p.WeatherForecast[i]
		e.u8(uint8(s.SessionType))
		e.u8(s.TimeOffset)
		e.u8(uint8(s.Weather))
		e.i8(s.TrackTemperature)
		e.i8(s.AirTemperature)
	}
}
