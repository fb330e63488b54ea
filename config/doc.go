// Package config holds the application settings of the sparsebench CLI.
//
// Settings come from three layers, later ones winning: Default(), an
// optional YAML file (Load), and command-line flags applied by the caller.
// Validate must pass before a Config is turned into harness parameters.
//
// Sizes may be given as powers of ten; Pow10 and Exponents expand them and
// reject exponents whose value would overflow int.
package config
