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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/packet"
)

func newTestState(t *testing.T) *State {
	t.Helper()

	cfg := config.NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "config"))

	state, err := NewState(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(state.Close)

	return state
}

func TestStateRecords(t *testing.T) {
	state := newTestState(t)
	const uid = 42

	session := &packet.PacketSessionData{TotalLaps: 52, TrackID: packet.TrackMonza}
	require.NoError(t, state.SetRecord(uid, SessionKey, session))

	data, err := state.GetRecord(uid, SessionKey)
	require.NoError(t, err)

	var got packet.PacketSessionData
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, uint8(52), got.TotalLaps)
	assert.Equal(t, packet.TrackMonza, got.TrackID)

	// the latest record wins
	session.TotalLaps = 53
	require.NoError(t, state.SetRecord(uid, SessionKey, session))
	data, err = state.GetRecord(uid, SessionKey)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, uint8(53), got.TotalLaps)
}

func TestStateNotFound(t *testing.T) {
	state := newTestState(t)

	_, err := state.GetRecord(1, SessionKey)
	assert.Equal(t, ErrSessionNotFound{UID: 1}, err)

	require.NoError(t, state.SetRecord(1, SessionKey, &packet.PacketSessionData{}))
	_, err = state.GetRecord(1, LapKey)
	assert.Equal(t, ErrRecordNotFound{UID: 1, Key: LapKey}, err)
}

func TestStateEventsKeepOrder(t *testing.T) {
	state := newTestState(t)
	const uid = 7

	codes := []packet.EventCode{
		packet.EventSessionStarted,
		packet.EventFastestLap,
		packet.EventSessionEnded,
	}
	for _, code := range codes {
		require.NoError(t, state.AppendEvent(uid, &packet.PacketEventData{Code: code}))
	}

	events, err := state.GetEvents(uid)
	require.NoError(t, err)
	require.Len(t, events, len(codes))
	for i, raw := range events {
		var got packet.PacketEventData
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, codes[i], got.Code)
	}
}

func TestStateSessions(t *testing.T) {
	state := newTestState(t)

	uids, err := state.Sessions()
	require.NoError(t, err)
	assert.Empty(t, uids)

	require.NoError(t, state.SetRecord(10, SessionKey, &packet.PacketSessionData{}))
	require.NoError(t, state.SetRecord(20, LapKey, &packet.PacketLapData{}))

	uids, err = state.Sessions()
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{10, 20}, uids)
}
