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

package srv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/log"
)

// recordKeys maps API record names to state keys
var recordKeys = map[string]string{
	"session":        SessionKey,
	"lap":            LapKey,
	"participants":   ParticipantsKey,
	"classification": ClassificationKey,
}

// ApiServer serves the stored session state over HTTP
type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	state *State
}

func NewApiServer(ctx context.Context, cfg *config.Config, state *State) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.ApiConfig.Address, cfg.ApiConfig.Port)
	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		state:   state,
	}
	s.configureRouter()
	return s, nil
}

func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.ApiConfig.Address, s.ApiConfig.Port)
	httpServer := &http.Server{
		Handler: handlers.RecoveryHandler()(s.Router),
		Addr:    fmt.Sprintf("%s:%d", s.ApiConfig.Address, s.ApiConfig.Port),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	subRouter.HandleFunc("/sessions", s.handleSessions).Methods("GET")
	subRouter.HandleFunc("/sessions/{uid:[0-9]+}/events", s.handleEvents).Methods("GET")
	subRouter.HandleFunc("/sessions/{uid:[0-9]+}/{record}", s.handleRecord).Methods("GET")
}

func (s *ApiServer) handleSessions(w http.ResponseWriter, r *http.Request) {
	uids, err := s.state.Sessions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if uids == nil {
		uids = []uint64{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(uids)
}

func (s *ApiServer) handleRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uid, err := strconv.ParseUint(vars["uid"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	key, ok := recordKeys[vars["record"]]
	if !ok {
		http.Error(w, fmt.Sprintf("Unknown record: %s", vars["record"]), http.StatusNotFound)
		return
	}

	data, err := s.state.GetRecord(uid, key)
	if err != nil {
		switch err.(type) {
		case ErrSessionNotFound, ErrRecordNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *ApiServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uid, err := strconv.ParseUint(vars["uid"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	events, err := s.state.GetEvents(uid)
	if err != nil {
		switch err.(type) {
		case ErrSessionNotFound:
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if events == nil {
		events = []json.RawMessage{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(events)
}
