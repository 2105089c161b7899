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

// Package srv ingests telemetry packets into per-session state and
// serves that state over a REST API.
package srv

import (
	"context"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/log"
	"github.com/racenet/f1telemetry/pkg/packet"
	"github.com/racenet/f1telemetry/pkg/telemetry"
)

type Server struct {
	context.Context
	*config.Config
	state  *State
	client *telemetry.Client
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	log.Info("Initializing telemetry server with address: %s port: %d",
		cfg.TelemetryConfig.Address, cfg.TelemetryConfig.Port)

	client, err := telemetry.New(cfg.TelemetryConfig.Address, cfg.TelemetryConfig.Port)
	if err != nil {
		return nil, err
	}

	state, err := NewState(ctx, cfg)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Server{
		Context: ctx,
		Config:  cfg,
		state:   state,
		client:  client,
	}, nil
}

func (s *Server) Run() error {
	defer s.client.Close()
	defer s.state.Close()

	api, err := NewApiServer(s.Context, s.Config, s.state)
	if err != nil {
		return err
	}

	errChan := make(chan error, 2)
	go func() {
		errChan <- api.Run()
	}()

	// Read packets from the wire and fold them into the session state.
	// Decode errors concern single datagrams and do not stop the loop.
	go func() {
		for {
			p, err := s.client.Next()
			if err != nil {
				if _, ok := err.(telemetry.ErrClosed); ok {
					errChan <- err
					return
				}
				log.Warning("Dropping datagram: %s", err)
				continue
			}
			if err := s.handle(p); err != nil {
				log.Error("Can not store %s packet: %s", p.Body.ID(), err)
			}
		}
	}()

	select {
	case <-s.Done():
		return nil
	case err := <-errChan:
		return err
	}
}

func (s *Server) handle(p *packet.Packet) error {
	uid := p.Header.SessionUID
	switch body := p.Body.(type) {
	case *packet.PacketSessionData:
		return s.state.SetRecord(uid, SessionKey, body)
	case *packet.PacketLapData:
		return s.state.SetRecord(uid, LapKey, body)
	case *packet.PacketParticipantsData:
		return s.state.SetRecord(uid, ParticipantsKey, body)
	case *packet.PacketFinalClassificationData:
		return s.state.SetRecord(uid, ClassificationKey, body)
	case *packet.PacketEventData:
		return s.state.AppendEvent(uid, body)
	default:
		// high-rate car packets are not persisted
		log.Debug("Ignoring %s packet", p.Body.ID())
		return nil
	}
}
