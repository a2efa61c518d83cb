package ssp

import "fmt"

// ConfigurationError reports a required configuration value that is missing.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unable to find the environment variable %s", e.Key)
	}
	return fmt.Sprintf("invalid configuration for %s: %s", e.Key, e.Reason)
}

// NotFoundError reports a secret the store returned no value for.
type NotFoundError struct {
	SecretID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to load secret %s", e.SecretID)
}
