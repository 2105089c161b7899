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

const (
	ConfigDir  = ".f1telemetry"
	ConfigFile = "config"
	StateFile  = "state.db"

	// DefaultAddress is where the game is told to send telemetry.
	DefaultAddress = "0.0.0.0"
	// DefaultPort is the port the F1 games send telemetry to out of the box.
	DefaultPort = 20777

	DefaultApiAddress = "127.0.0.1"
	DefaultApiPort    = 8070

	DefaultLogLevel = "info"
)
