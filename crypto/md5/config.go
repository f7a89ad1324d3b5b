// Copyright 2026 The go-md5 Authors
// This file is part of the go-md5 library.
//
// The go-md5 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-md5 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-md5 library. If not, see <http://www.gnu.org/licenses/>.

package md5

import (
	"fmt"
	"io"
	"reflect"

	"github.com/ethereum/go-md5/log"
	"github.com/naoina/toml"
)

// Config contains the diagnostic settings of a Hasher. None of them affect
// the computed digest.
type Config struct {
	// TraceBlocks emits a trace record for every compressed input block.
	TraceBlocks bool

	// Label is attached to every record of the hasher as the "hasher" key.
	Label string `toml:",omitempty"`
}

// DefaultConfig is used by New when no WithConfig option is given.
var DefaultConfig = Config{}

// These settings keep Go field names as TOML keys and reject unknown keys.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadConfig decodes a TOML document on top of DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig
	if err := tomlSettings.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid hasher config: %w", err)
	}
	return cfg, nil
}

// Option configures a Hasher created by New.
type Option func(*Hasher)

// WithConfig replaces the default diagnostic settings.
func WithConfig(cfg Config) Option {
	return func(h *Hasher) {
		h.cfg = cfg
	}
}

// WithLogger routes the hasher's records to l instead of the root logger.
func WithLogger(l log.Logger) Option {
	return func(h *Hasher) {
		h.log = l
	}
}
