package main

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/schuko"
)

// flagConfig is an application configuration backed by command line flags.
type flagConfig struct {
	values map[string]string
}

var _ schuko.Configuration = (*flagConfig)(nil)

func newFlagConfig() *flagConfig {
	return &flagConfig{values: make(map[string]string)}
}

// InitDefaults sets defaults for keys not set by flags.
func (c *flagConfig) InitDefaults() {
	c.setDefault("tracing.adapter", "go")
	c.setDefault("module", "Repl")
	c.setDefault("tracingsyntax", "Error")
	c.setDefault("tracinginterpreter", "Error")
}

func (c *flagConfig) setDefault(key, value string) {
	if !c.IsSet(key) {
		c.values[key] = value
	}
}

// Set sets a key, ignoring empty values.
func (c *flagConfig) Set(key, value string) {
	if value != "" {
		c.values[key] = value
	}
}

func (c *flagConfig) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

func (c *flagConfig) GetString(key string) string {
	return c.values[key]
}

func (c *flagConfig) GetInt(key string) int {
	n, err := strconv.Atoi(c.values[key])
	if err != nil {
		return 0
	}
	return n
}

func (c *flagConfig) GetBool(key string) bool {
	b, err := strconv.ParseBool(c.values[key])
	return err == nil && b
}

func (c *flagConfig) IsInteractive() bool {
	return true
}
