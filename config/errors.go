// SPDX-License-Identifier: MIT

package config

import "errors"

// ErrInvalid indicates a setting outside its documented domain.
var ErrInvalid = errors.New("config: invalid value")

// ErrExponent indicates a negative exponent or one whose power of ten overflows int.
var ErrExponent = errors.New("config: exponent out of range")

// ErrRead indicates the configuration file could not be read or parsed.
var ErrRead = errors.New("config: cannot read file")
