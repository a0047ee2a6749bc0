package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsDefaults(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty base url", mutate: func(c *Config) { c.BaseURL = "" }},
		{name: "scheme missing", mutate: func(c *Config) { c.BaseURL = "127.0.0.1:6806" }},
		{name: "bad scheme", mutate: func(c *Config) { c.BaseURL = "ftp://127.0.0.1" }},
		{name: "zero timeout", mutate: func(c *Config) { c.TimeoutMS = 0 }},
		{name: "negative timeout", mutate: func(c *Config) { c.TimeoutMS = -1 }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}
