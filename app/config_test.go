package app

import (
	"errors"
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig(DefaultAddress, DefaultPort, DefaultMessage, DefaultRepeat, DefaultDelay)
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if c.Timeout != 5*time.Second {
		t.Errorf("Unexpected timeout. Got: %v, want: %v", c.Timeout, 5*time.Second)
	}
	if got := c.Target(); got != "127.0.0.1:5000" {
		t.Errorf("Unexpected target. Got: %s, want: 127.0.0.1:5000", got)
	}
}

func TestTargetIPv6(t *testing.T) {
	c := NewConfig("::1", 7000, "x", 1, 0)
	if got := c.Target(); got != "[::1]:7000" {
		t.Errorf("Unexpected target. Got: %s, want: [::1]:7000", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty address", func(c *Config) { c.Address = "" }},
		{"port zero", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 65536 }},
		{"repeat zero", func(c *Config) { c.Repeat = 0 }},
		{"negative delay", func(c *Config) { c.Delay = -time.Millisecond }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig(DefaultAddress, DefaultPort, DefaultMessage, DefaultRepeat, DefaultDelay)
			tt.mutate(c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	c := NewConfig("localhost", 65535, "", 1, 0)
	if err := c.Validate(); err != nil {
		t.Errorf("port 65535 with zero delay should be valid: %v", err)
	}
	c.Port = 1
	if err := c.Validate(); err != nil {
		t.Errorf("port 1 should be valid: %v", err)
	}
}

func TestDelayFromSeconds(t *testing.T) {
	if got := DelayFromSeconds(0.5); got != 500*time.Millisecond {
		t.Errorf("Unexpected delay. Got: %v, want: 500ms", got)
	}
	if got := DelayFromSeconds(0); got != 0 {
		t.Errorf("Unexpected delay. Got: %v, want: 0", got)
	}
}
