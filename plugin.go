package ssp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sort"

	"github.com/samber/lo"
)

const (
	SecretNameKey = "API_ENV_SECRET_NAME"

	EnvSecretsFilePath   = "SECRETS_FILE_PATH"
	EnvSecretsFileFormat = "SECRETS_FILE_FORMAT"

	DefaultSecretsFile = "secrets.json"

	// LocalStage disables packaging entirely.
	LocalStage = "local"
)

type HookFunc func(ctx context.Context) error

type Plugin struct {
	Hooks   map[string]HookFunc
	Options Options
	Service *Service
	Secrets SecretService

	Region      string
	SecretsFile string
	FileFormat  string
}

func New(service *Service, opts Options, secrets SecretService) *Plugin {
	p := &Plugin{
		Options:     opts,
		Service:     service,
		Secrets:     secrets,
		Region:      service.ResolveRegion(opts),
		SecretsFile: DefaultSecretsFile,
		FileFormat:  FormatJSON,
	}

	if v, ok := os.LookupEnv(EnvSecretsFilePath); ok && v != "" {
		p.SecretsFile = v
	}
	if v, ok := os.LookupEnv(EnvSecretsFileFormat); ok && v != "" {
		p.FileFormat = v
	}

	p.Hooks = map[string]HookFunc{}
	for _, lc := range Lifecycles {
		p.Hooks[lc.Before] = p.PackageSecrets
		p.Hooks[lc.After] = p.CleanupPackageSecrets
	}

	return p
}

// Events returns the registered lifecycle events in lexical order.
func (p *Plugin) Events() []string {
	events := lo.Keys(p.Hooks)
	sort.Strings(events)
	return events
}

// Run fires the hook registered for event. It reports false when no hook is
// registered for it.
func (p *Plugin) Run(ctx context.Context, event string) (bool, error) {
	hook, ok := p.Hooks[event]
	if !ok {
		log.Printf("[DEBUG] no hook registered for %s", event)
		return false, nil
	}

	log.Printf("[DEBUG] running hook for %s", event)
	return true, hook(ctx)
}

func (p *Plugin) FetchSecret(ctx context.Context, name string) (*string, error) {
	return p.Secrets.FetchSecret(ctx, name)
}

func (p *Plugin) WriteEnvironmentSecretToFile(ctx context.Context) error {
	name, ok := p.Service.EnvironmentString(SecretNameKey)
	if !ok {
		return &ConfigurationError{Key: SecretNameKey}
	}

	value, err := p.FetchSecret(ctx, name)
	if err != nil {
		return err
	}
	if value == nil {
		return &NotFoundError{SecretID: name}
	}

	buf := &bytes.Buffer{}
	dumper := Dumper{
		Out:    buf,
		Format: p.FileFormat,
	}
	if err := dumper.Dump([]Secret{{Key: name, Value: *value}}); err != nil {
		return err
	}

	if err := os.WriteFile(p.SecretsFile, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write secrets file: %w", err)
	}

	return nil
}

func (p *Plugin) PackageSecrets(ctx context.Context) error {
	if p.Service.ResolveStage(p.Options) == LocalStage {
		log.Printf("[INFO] Skipping secret packaging due to stage = %s", LocalStage)
		return nil
	}

	log.Printf("[INFO] Serverless Secrets beginning packaging process")
	if p.Service.Package.Include == nil {
		p.Service.Package.Include = []string{}
	}

	if err := p.WriteEnvironmentSecretToFile(ctx); err != nil {
		return err
	}

	if !lo.Contains(p.Service.Package.Include, p.SecretsFile) {
		p.Service.Package.Include = append(p.Service.Package.Include, p.SecretsFile)
	}

	return nil
}

func (p *Plugin) CleanupPackageSecrets(ctx context.Context) error {
	log.Printf("[INFO] Cleaning up %s", p.SecretsFile)

	if err := os.Remove(p.SecretsFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove secrets file: %w", err)
	}

	return nil
}
