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

package telemetry

import (
	"fmt"
)

// ErrBind returned when the UDP socket can not be bound
type ErrBind struct {
	Address string
	Err     error
}

func (e ErrBind) Error() string {
	return fmt.Sprintf("Can not bind to %s: %s", e.Address, e.Err)
}

func (e ErrBind) Unwrap() error {
	return e.Err
}

// ErrClosed returned by Next and NextDatagram after Close has been called
type ErrClosed struct{}

func (e ErrClosed) Error() string {
	return "Client closed"
}
