// Package config manages user-level settings stored at ~/.contestkit/config.yaml.
// Settings supply defaults for create flags: where projects are written and
// which template directory replaces the built-in templates.
package config
