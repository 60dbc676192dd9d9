/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

// Package config loads the TOML configuration shared by the radix commands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/capitalone/radix/digits"
)

// Config is the decoded form of a radix.toml file.
type Config struct {
	Convert  ConvertConfig  `toml:"convert"`
	Parallel ParallelConfig `toml:"parallel"`
	Server   ServerConfig   `toml:"server"`
}

type ConvertConfig struct {
	Precision int    `toml:"precision"` // fractional digits to render
	Alphabet  string `toml:"alphabet"`  // runes spelling digit ordinals
}

type ParallelConfig struct {
	Jobs int `toml:"jobs"` // 0 means GOMAXPROCS
}

type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxPrecision int    `toml:"max_precision"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Convert: ConvertConfig{
			Precision: 64,
			Alphabet:  digits.DefaultDigits,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			MaxPrecision: 10000,
		},
	}
}

// Load reads path on top of the defaults. Keys missing from the file keep
// their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("%s: config file does not exist", path)
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Convert.Precision < 0 {
		return fmt.Errorf("[convert].precision must not be negative, got %d", c.Convert.Precision)
	}
	if _, err := digits.NewAlphabet(c.Convert.Alphabet); err != nil {
		return fmt.Errorf("[convert].alphabet: %w", err)
	}
	if c.Parallel.Jobs < 0 {
		return fmt.Errorf("[parallel].jobs must not be negative, got %d", c.Parallel.Jobs)
	}
	if c.Server.MaxPrecision < 1 {
		return fmt.Errorf("[server].max_precision must be positive, got %d", c.Server.MaxPrecision)
	}
	if c.Convert.Precision > c.Server.MaxPrecision {
		return fmt.Errorf("[convert].precision %d exceeds [server].max_precision %d", c.Convert.Precision, c.Server.MaxPrecision)
	}
	return nil
}

// Alphabet returns the configured digit alphabet.
func (c Config) Alphabet() (digits.Alphabet, error) {
	return digits.NewAlphabet(c.Convert.Alphabet)
}
