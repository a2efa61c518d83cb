package ssp

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// SSMAPI is the part of *ssm.Client the service uses.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SSMService struct {
	Client SSMAPI
}

func NewSSMService(cfg aws.Config) SSMService {
	return SSMService{
		Client: ssm.NewFromConfig(cfg),
	}
}

func (s SSMService) Name() string   { return "SSM Parameter Store service" }
func (s SSMService) Target() string { return TargetSSM }

func (s SSMService) FetchSecret(ctx context.Context, name string) (*string, error) {
	log.Printf("[DEBUG] retrieving parameter %s from SSM Parameter Store", name)

	out, err := s.Client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get parameter from SSM Parameter Store: %w", err)
	}

	if out.Parameter == nil {
		return nil, nil
	}

	return out.Parameter.Value, nil
}
