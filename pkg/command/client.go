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

// Package command talks to a running telemetry server over its REST API
package command

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/imroc/req"

	"github.com/racenet/f1telemetry/pkg/config"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.ApiConfig.Address, cfg.ApiConfig.Port),
	}
}

func (c *ApiClient) sessionsUrl() string {
	return fmt.Sprintf("%s/sessions", c.ApiPrefix)
}

func (c *ApiClient) recordUrl(uid uint64, record string) string {
	return fmt.Sprintf("%s/sessions/%d/%s", c.ApiPrefix, uid, record)
}

// Sessions returns the UIDs of all sessions the server has seen
func (c *ApiClient) Sessions() ([]uint64, error) {
	r, err := req.Get(c.sessionsUrl())
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var uids []uint64
	err = r.ToJSON(&uids)
	if err != nil {
		return nil, err
	}
	return uids, nil
}

// Record returns one stored session record as JSON
func (c *ApiClient) Record(uid uint64, record string) (json.RawMessage, error) {
	r, err := req.Get(c.recordUrl(uid, record))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	data, err := r.ToBytes()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

// Events returns all stored events of a session as JSON
func (c *ApiClient) Events(uid uint64) ([]json.RawMessage, error) {
	r, err := req.Get(c.recordUrl(uid, "events"))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var events []json.RawMessage
	err = r.ToJSON(&events)
	if err != nil {
		return nil, err
	}
	return events, nil
}
