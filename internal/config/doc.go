// Package config defines the application configuration structure and its
// loading logic. Configuration comes from environment variables (prefix
// CRAFTLY) layered over an optional config.yaml, with struct-tag
// validation applied after unmarshalling.
package config
