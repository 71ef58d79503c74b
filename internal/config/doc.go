// Package config loads crwrite settings from the environment.
//
// Settings come from CRWRITE_* environment variables, optionally seeded from
// a .env file in the working directory. There is no config file: the tool is
// a one-shot transform and command-line flags cover the rest.
package config
