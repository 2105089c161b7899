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

import (
	"fmt"
)

// ErrTruncated returned when a buffer is shorter than the layout being decoded.
// Off is the offset at which the decoder ran out of bytes.
type ErrTruncated struct {
	Off  int
	Need int
	Have int
}

func (e ErrTruncated) Error() string {
	return fmt.Sprintf("Packet truncated: need %d bytes at offset %d, have %d", e.Need, e.Off, e.Have)
}

// ErrUnsupportedVersion returned when the header declares a packet format
// no decoders are registered for
type ErrUnsupportedVersion struct {
	Format uint16
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("Unsupported packet format: %d", e.Format)
}

// ErrUnknownPacketID returned when no body decoder is registered for the
// packet id the header carries
type ErrUnknownPacketID struct {
	Format uint16
	ID     uint8
}

func (e ErrUnknownPacketID) Error() string {
	return fmt.Sprintf("Unknown packet id %d for format %d", e.ID, e.Format)
}

// ErrMalformedField returned when a field's bytes can not be interpreted,
// e.g. an out of range enumeration value
type ErrMalformedField struct {
	Field string
	Value int64
}

func (e ErrMalformedField) Error() string {
	return fmt.Sprintf("Malformed field %s: value %d", e.Field, e.Value)
}
