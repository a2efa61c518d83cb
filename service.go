package ssp

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultRegion = "us-east-1"
	DefaultStage  = "dev"
)

// Service is the subset of serverless.yml the plugin reads and mutates.
type Service struct {
	Name     string   `yaml:"service"`
	Provider Provider `yaml:"provider"`
	Package  Package  `yaml:"package"`
}

type Provider struct {
	Name        string                 `yaml:"name"`
	Region      string                 `yaml:"region"`
	Stage       string                 `yaml:"stage"`
	Profile     string                 `yaml:"profile"`
	Environment map[string]interface{} `yaml:"environment"`
}

type Package struct {
	Include  []string `yaml:"include"`
	Patterns []string `yaml:"patterns"`
}

func LoadService(path string) (*Service, error) {
	log.Printf("[DEBUG] loading service configuration from %s", path)

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service configuration: %w", err)
	}

	return ParseService(b)
}

func ParseService(b []byte) (*Service, error) {
	svc := &Service{}
	if err := yaml.Unmarshal(b, svc); err != nil {
		return nil, fmt.Errorf("failed to parse service configuration: %w", err)
	}

	return svc, nil
}

func (s *Service) ResolveRegion(opts Options) string {
	switch {
	case opts.Region != "":
		return opts.Region
	case s.Provider.Region != "":
		return s.Provider.Region
	}
	return DefaultRegion
}

func (s *Service) ResolveStage(opts Options) string {
	switch {
	case opts.Stage != "":
		return opts.Stage
	case s.Provider.Stage != "":
		return s.Provider.Stage
	}
	return DefaultStage
}

// EnvironmentString looks up key in provider.environment. Values that are
// empty or not strings are reported as absent.
func (s *Service) EnvironmentString(key string) (string, bool) {
	v, ok := s.Provider.Environment[key]
	if !ok {
		return "", false
	}

	str, ok := v.(string)
	if !ok || str == "" {
		return "", false
	}

	return str, true
}
