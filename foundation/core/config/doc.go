// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for the configuration layer.
// Author: btstring maintainers
// Version: v0.1.0
// Created: 2026-09-02
// Modified: 2026-09-02

/*
Package config loads btstring configuration from TOML or YAML files and
exposes typed lookups by dot-separated key.

Every lookup checks the environment first. With the prefix BTSTRING the key
chunk.size is overridden by BTSTRING_CHUNK_SIZE.

	cfg, err := config.Discover(config.DefaultDiscoveryOptions("btstring"))
	if err != nil {
		return err
	}
	size := cfg.GetInt("chunk.size", 1024)

Discover searches ./btstring.toml, ./config/btstring.toml and the user
config directory. Defaults passed in LoadOptions or DiscoveryOptions are
merged per key, so a file may set a single value inside a table without
losing the rest of that table's defaults.

Validate applies ValidationRules and returns every violation at once
instead of stopping at the first.
*/
package config
