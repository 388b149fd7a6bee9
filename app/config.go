package app

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	DefaultAddress = "127.0.0.1"
	DefaultPort    = 5000
	DefaultMessage = "test123"
	DefaultRepeat  = 1
	DefaultDelay   = 500 * time.Millisecond
	// Per-attempt connect and read timeout. Not exposed as a flag.
	DefaultTimeout = 5 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Address string
	Port    int
	Message string
	Repeat  int
	Delay   time.Duration
	Timeout time.Duration
}

func NewConfig(address string, port int, message string, repeat int, delay time.Duration) *Config {
	return &Config{
		Address: address,
		Port:    port,
		Message: message,
		Repeat:  repeat,
		Delay:   delay,
		Timeout: DefaultTimeout,
	}
}

// DelayFromSeconds converts a fractional seconds value into a Duration.
func DelayFromSeconds(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range 1-65535", ErrInvalidConfig, c.Port)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("%w: repeat must be positive, got %d", ErrInvalidConfig, c.Repeat)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %v", ErrInvalidConfig, c.Delay)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// Target is the dial address, bracketing IPv6 literals.
func (c *Config) Target() string {
	return net.JoinHostPort(c.Address, strconv.Itoa(c.Port))
}
