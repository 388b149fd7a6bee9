package runner

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
	"unicode/utf8"

	"echoprobe/utils"

	"github.com/sirupsen/logrus"
)

// Only one read of at most this many bytes is made per attempt. An echo
// that does not fit, or arrives split over several segments, fails.
const kMaxResponse = 1024

var ErrInvalidUTF8 = errors.New("response is not valid UTF-8")

// Outcome is the result of a single attempt. It is either a success carrying
// the received text, or a failure carrying Err and/or a mismatching Received.
type Outcome struct {
	Matched  bool
	Received string
	Err      error
}

func (o Outcome) OK() bool {
	return o.Matched && o.Err == nil
}

// RunSingleAttempt connects to address:port, writes message once, reads once
// and compares. Progress lines are written to out. Errors never escape; they
// are reported on out and folded into the returned Outcome.
func RunSingleAttempt(address string, port int, message string, timeout time.Duration, out io.Writer) Outcome {
	target := net.JoinHostPort(address, strconv.Itoa(port))
	log := utils.Logger.WithField("target", target)

	received, err := roundTrip(target, message, timeout, out, log)
	if err != nil {
		log.WithError(err).Warn("attempt failed")
		fmt.Fprintf(out, "[!] Error: %v\n", err)
		return Outcome{Err: err}
	}

	fmt.Fprintf(out, "[←] Received: %s\n", received)
	return Outcome{Matched: received == message, Received: received}
}

func roundTrip(target, message string, timeout time.Duration, out io.Writer, log *logrus.Entry) (string, error) {
	conn, err := net.DialTimeout("tcp", target, timeout)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", target, err)
	}
	defer func() {
		conn.Close()
		log.Debug("connection closed")
	}()
	log.Debug("connected")

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return "", fmt.Errorf("set deadline: %w", err)
	}

	if _, err := conn.Write([]byte(message)); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	fmt.Fprintf(out, "[→] Sent: %s\n", message)

	buf := make([]byte, kMaxResponse)
	n, err := conn.Read(buf)
	if err != nil && !(errors.Is(err, io.EOF) && n == 0) {
		return "", fmt.Errorf("read: %w", err)
	}
	log.WithField("bytes", n).Debug("received")

	if !utf8.Valid(buf[:n]) {
		return "", fmt.Errorf("decode: %w", ErrInvalidUTF8)
	}
	return string(buf[:n]), nil
}
