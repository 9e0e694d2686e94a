package gpsd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/terryburton/munin-plugin-gpsd/internal/errors"
	"github.com/terryburton/munin-plugin-gpsd/internal/logger"
)

const (
	dialTimeout = 2 * time.Second

	// readWindow bounds a single NextReport poll. The daemon emits one
	// report cycle per second, so an empty window is common and normal.
	readWindow = 200 * time.Millisecond

	// watchCommand switches the daemon into streaming JSON mode.
	watchCommand = `?WATCH={"enable":true,"json":true};` + "\n"
)

type client struct {
	conn    net.Conn
	reader  *bufio.Reader
	partial []byte
}

// Dial opens a session to the daemon at host:port and enables JSON
// report streaming.
func Dial(host string, port int) (Session, error) {
	errFactory := errors.New()

	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, errFactory.Wrap(ErrSessionOpen, err)
	}

	if _, err := conn.Write([]byte(watchCommand)); err != nil {
		conn.Close()
		return nil, errFactory.Wrap(ErrSessionOpen, err)
	}

	logger.Debug().Str("addr", addr).Msg("session opened")

	return NewFromConn(conn), nil
}

// NewFromConn wraps an established connection in a Session. The WATCH
// handshake is the caller's concern; tests use this with a pipe.
func NewFromConn(conn net.Conn) Session {
	return &client{
		conn:   conn,
		reader: bufio.NewReader(conn),
	}
}

func (c *client) NextReport() (Report, error) {
	errFactory := errors.New()

	for {
		line, err := c.readLine()
		if err != nil {
			return nil, err
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var tag struct {
			Class string `json:"class"`
		}
		if err := json.Unmarshal(line, &tag); err != nil {
			return nil, errFactory.Wrap(ErrMalformedReport, err)
		}

		switch tag.Class {
		case "TPV":
			var r TPV
			if err := json.Unmarshal(line, &r); err != nil {
				return nil, errFactory.Wrap(ErrMalformedReport, err)
			}
			return &r, nil
		case "SKY":
			var r SKY
			if err := json.Unmarshal(line, &r); err != nil {
				return nil, errFactory.Wrap(ErrMalformedReport, err)
			}
			return &r, nil
		default:
			// VERSION, DEVICES, WATCH and friends carry nothing the
			// snapshot needs.
			continue
		}
	}
}

// readLine reads one newline-terminated report within the poll window.
// A line split across windows is accumulated in c.partial so nothing is
// lost to a deadline expiring mid-report.
func (c *client) readLine() ([]byte, error) {
	errFactory := errors.New()

	if err := c.conn.SetReadDeadline(time.Now().Add(readWindow)); err != nil {
		return nil, errFactory.Wrap(ErrSessionRead, err)
	}

	chunk, err := c.reader.ReadBytes('\n')
	c.partial = append(c.partial, chunk...)

	if err == nil {
		line := c.partial
		c.partial = nil
		return line, nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return nil, errFactory.New(ErrNoReport)
	}

	return nil, errFactory.Wrap(ErrSessionRead, err)
}

func (c *client) Close() error {
	errFactory := errors.New()

	if err := c.conn.Close(); err != nil {
		return errFactory.Wrap(ErrSessionClosed, err)
	}
	return nil
}
