// Package config manages user-level settings stored at ~/.vuegen/config.yaml.
// Every key can also be set through a VUEGEN_-prefixed environment variable.
package config
