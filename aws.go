package ssp

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

const (
	TargetSecretsManager = "secretsmanager"
	TargetSSM            = "ssm"
)

// LoadAWSConfig resolves credentials through the SDK default chain, pinned to
// region and, when set, to a shared config profile.
func LoadAWSConfig(ctx context.Context, region, profile string) (aws.Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return cfg, nil
}

func NewSecretService(target string, cfg aws.Config) (SecretService, error) {
	switch target {
	case "", TargetSecretsManager:
		return NewSecretsManagerService(cfg), nil
	case TargetSSM:
		return NewSSMService(cfg), nil
	}

	return nil, fmt.Errorf("unknown target '%s'", target)
}
