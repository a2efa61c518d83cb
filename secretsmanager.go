package ssp

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the part of *secretsmanager.Client the service uses.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

type SecretsManagerService struct {
	Client SecretsManagerAPI
}

func NewSecretsManagerService(cfg aws.Config) SecretsManagerService {
	return SecretsManagerService{
		Client: secretsmanager.NewFromConfig(cfg),
	}
}

func (s SecretsManagerService) Name() string   { return "secrets manager service" }
func (s SecretsManagerService) Target() string { return TargetSecretsManager }

func (s SecretsManagerService) FetchSecret(ctx context.Context, name string) (*string, error) {
	log.Printf("[DEBUG] retrieving secret %s from SecretsManager", name)

	out, err := s.Client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get SecretsManager Secret: %w", err)
	}

	return out.SecretString, nil
}
