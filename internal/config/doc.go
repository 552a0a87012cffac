// Package config loads and validates melelink configuration from TOML.
//
// Configuration lives at ~/.config/melelink/config.toml by default. A missing
// file is not an error; repository defaults apply and `melelink config init`
// writes an annotated sample. Paths support ~ expansion.
package config
