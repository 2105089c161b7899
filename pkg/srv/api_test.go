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
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/packet"
)

func newTestApi(t *testing.T) (*ApiServer, *State) {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "config"))

	state, err := NewState(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(state.Close)

	api, err := NewApiServer(context.Background(), cfg, state)
	require.NoError(t, err)

	return api, state
}

func get(api *ApiServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	api.Router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestApiSessions(t *testing.T) {
	api, state := newTestApi(t)

	w := get(api, "/api/sessions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	require.NoError(t, state.SetRecord(99, SessionKey, &packet.PacketSessionData{}))

	w = get(api, "/api/sessions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[99]", w.Body.String())
}

func TestApiRecord(t *testing.T) {
	api, state := newTestApi(t)

	session := &packet.PacketSessionData{TotalLaps: 44, TrackID: packet.TrackSpa}
	require.NoError(t, state.SetRecord(5, SessionKey, session))

	w := get(api, "/api/sessions/5/session")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got packet.PacketSessionData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, uint8(44), got.TotalLaps)
	assert.Equal(t, packet.TrackSpa, got.TrackID)
}

func TestApiRecordNotFound(t *testing.T) {
	api, state := newTestApi(t)

	w := get(api, "/api/sessions/5/session")
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, state.SetRecord(5, SessionKey, &packet.PacketSessionData{}))

	w = get(api, "/api/sessions/5/lap")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(api, "/api/sessions/5/nosuchrecord")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApiEvents(t *testing.T) {
	api, state := newTestApi(t)

	require.NoError(t, state.AppendEvent(8, &packet.PacketEventData{Code: packet.EventSessionStarted}))
	require.NoError(t, state.AppendEvent(8, &packet.PacketEventData{Code: packet.EventChequeredFlag}))

	w := get(api, "/api/sessions/8/events")
	require.Equal(t, http.StatusOK, w.Code)

	var events []packet.PacketEventData
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, packet.EventSessionStarted, events[0].Code)
	assert.Equal(t, packet.EventChequeredFlag, events[1].Code)
}
