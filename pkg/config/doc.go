// Package config loads typed configuration structs from environment
// variables.
//
// Every configurable package in the module declares its own Config struct
// with `env` tags and callers hydrate it through Load or MustLoad:
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
// The first Load in a process also sources a .env file when one exists,
// which keeps development setups to a single file without affecting
// deployments that inject real environment variables. Each config type is
// parsed exactly once and cached, so independent components can load the
// same struct without re-reading the environment.
//
// Tests that mutate the environment should call ResetCache between cases.
package config
