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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.etcd.io/bbolt"

	"github.com/racenet/f1telemetry/pkg/config"
	"github.com/racenet/f1telemetry/pkg/log"
)

const (
	BucketPrefix = "session_"

	SessionKey        = "session"
	LapKey            = "lap"
	ParticipantsKey   = "participants"
	ClassificationKey = "classification"

	eventKeyPrefix = "event_"
)

// State keeps the latest decoded records per session in a bbolt
// database, one bucket per session UID. Records are stored as JSON so
// the API can serve them as-is.
type State struct {
	context.Context
	DB *bbolt.DB
}

func NewState(ctx context.Context, cfg *config.Config) (*State, error) {
	db, err := bbolt.Open(cfg.StatePath(), 0600, nil)
	if err != nil {
		return nil, err
	}
	return &State{
		Context: ctx,
		DB:      db,
	}, nil
}

// Close ...
func (s *State) Close() {
	s.DB.Close()
}

func BucketName(uid uint64) string {
	return fmt.Sprintf("%s%d", BucketPrefix, uid)
}

// SetRecord stores the latest value under the given key for a session,
// replacing the previous one
func (s *State) SetRecord(uid uint64, key string, value interface{}) error {
	log.Debug("Setting record: session: %d key: %s", uid, key)
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(uid)))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// GetRecord returns the stored JSON for a session record
func (s *State) GetRecord(uid uint64, key string) ([]byte, error) {
	log.Debug("Getting record: session: %d key: %s", uid, key)
	var data []byte
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(uid)))
		if b == nil {
			return ErrSessionNotFound{UID: uid}
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrRecordNotFound{UID: uid, Key: key}
		}
		data = make([]byte, len(v))
		copy(data, v)
		return nil
	}); err != nil {
		return nil, err
	}
	return data, nil
}

// AppendEvent stores one session event in arrival order
func (s *State) AppendEvent(uid uint64, value interface{}) error {
	log.Debug("Appending event: session: %d", uid)
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(uid)))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		key := fmt.Sprintf("%s%020d", eventKeyPrefix, seq)
		return b.Put([]byte(key), data)
	})
}

// GetEvents returns all stored events of a session in arrival order
func (s *State) GetEvents(uid uint64) ([]json.RawMessage, error) {
	var events []json.RawMessage
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(uid)))
		if b == nil {
			return ErrSessionNotFound{UID: uid}
		}
		c := b.Cursor()
		prefix := []byte(eventKeyPrefix)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			event := make(json.RawMessage, len(v))
			copy(event, v)
			events = append(events, event)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return events, nil
}

// Sessions returns the UIDs of all sessions seen so far
func (s *State) Sessions() ([]uint64, error) {
	var uids []uint64
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			if !strings.HasPrefix(string(name), BucketPrefix) {
				return nil
			}
			uid, err := strconv.ParseUint(strings.TrimPrefix(string(name), BucketPrefix), 10, 64)
			if err != nil {
				return nil
			}
			uids = append(uids, uid)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return uids, nil
}
