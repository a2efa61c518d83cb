package ssp

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

type fakeSecretsManager struct {
	value  *string
	err    error
	inputs []*secretsmanager.GetSecretValueInput
}

func (f *fakeSecretsManager) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{
		Name:         params.SecretId,
		SecretString: f.value,
	}, nil
}

func (f *fakeSecretsManager) secretIDs() []string {
	ids := []string{}
	for _, in := range f.inputs {
		ids = append(ids, *in.SecretId)
	}
	return ids
}

type fakeSSM struct {
	parameter *ssmtypes.Parameter
	err       error
	inputs    []*ssm.GetParameterInput
}

func (f *fakeSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.GetParameterOutput{Parameter: f.parameter}, nil
}
