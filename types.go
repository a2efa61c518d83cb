package ssp

import (
	"context"
)

type SecretService interface {
	Name() string
	Target() string
	// FetchSecret returns the current value of the named secret, or nil when
	// the store holds no string value for it.
	FetchSecret(ctx context.Context, name string) (*string, error)
}

// Options are the command line overrides the host passes to plugins.
type Options struct {
	Stage  string
	Region string
}

type Secret struct {
	Key   string
	Value string
}
