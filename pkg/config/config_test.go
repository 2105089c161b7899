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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigDir, ConfigFile)

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	cfg.TelemetryConfig.Port = 30500
	cfg.LogLevel = "debug"
	require.NoError(t, cfg.Persist(false))

	loaded := NewDefaultConfig()
	loaded.SetPath(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, 30500, loaded.TelemetryConfig.Port)
	assert.Equal(t, DefaultAddress, loaded.TelemetryConfig.Address)
	assert.Equal(t, DefaultApiPort, loaded.ApiConfig.Port)
	assert.Equal(t, "debug", loaded.LogLevel)
}

func TestPersistRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	assert.Equal(t, ErrConfigFileExists{Path: path}, cfg.Persist(false))
	assert.NoError(t, cfg.Persist(true))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, cfg.Load())
	assert.Equal(t, DefaultPort, cfg.TelemetryConfig.Port)
}

func TestStatePath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetPath("/tmp/f1telemetry-test/config")
	assert.Equal(t, "/tmp/f1telemetry-test/"+StateFile, cfg.StatePath())
}
