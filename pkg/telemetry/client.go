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

// Package telemetry receives game telemetry datagrams over UDP and
// decodes them into packets.
package telemetry

import (
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/gopacket"

	"github.com/racenet/f1telemetry/pkg/log"
	"github.com/racenet/f1telemetry/pkg/packet"
)

// MaxDatagramSize is larger than any packet the game sends
const MaxDatagramSize = 2048

// Client is a telemetry receiver bound to a UDP port. Concurrent calls
// to Next and NextDatagram are safe: a mutex serializes them, so each
// datagram is delivered to exactly one caller.
type Client struct {
	conn *net.UDPConn

	mu  sync.Mutex
	buf []byte

	closeOnce sync.Once
	closeErr  error
}

// New binds a UDP socket on the given address and port. Port 0 picks a
// free port, see Addr.
func New(address string, port int) (*Client, error) {
	addr := fmt.Sprintf("%s:%d", address, port)
	uaddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, ErrBind{Address: addr, Err: err}
	}

	conn, err := net.ListenUDP("udp", uaddr)
	if err != nil {
		return nil, ErrBind{Address: addr, Err: err}
	}
	log.Debug("Telemetry client listening on %s", conn.LocalAddr())

	return &Client{
		conn: conn,
		buf:  make([]byte, MaxDatagramSize),
	}, nil
}

// Addr returns the bound local address
func (c *Client) Addr() *net.UDPAddr {
	return c.conn.LocalAddr().(*net.UDPAddr)
}

// NextDatagram blocks until one raw datagram arrives and returns its
// payload with capture metadata. The returned slice is a copy and stays
// valid after the next read.
func (c *Client) NextDatagram() ([]byte, gopacket.CaptureInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, _, err := c.conn.ReadFromUDP(c.buf)
	if err != nil {
		if errors.Is(err, net.ErrClosed) {
			return nil, gopacket.CaptureInfo{}, ErrClosed{}
		}
		return nil, gopacket.CaptureInfo{}, err
	}

	data := make([]byte, n)
	copy(data, c.buf[:n])
	ci := gopacket.CaptureInfo{
		Timestamp:     time.Now(),
		CaptureLength: n,
		Length:        n,
	}
	return data, ci, nil
}

// Next blocks until one datagram arrives and decodes it. A decode error
// only concerns the datagram it is returned for, the client stays usable
// and the next call reads the next datagram.
func (c *Client) Next() (*packet.Packet, error) {
	data, _, err := c.NextDatagram()
	if err != nil {
		return nil, err
	}

	p, err := packet.Decode(data)
	if err != nil {
		log.Debug("Dropping datagram of %d bytes: %s", len(data), err)
		return nil, err
	}
	return p, nil
}

// Close releases the socket. Blocked and future reads fail with
// ErrClosed. Close may be called more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
