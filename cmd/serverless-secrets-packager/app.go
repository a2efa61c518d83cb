package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	ssp "github.com/handlename/serverless-secrets-packager"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "serverless-secrets-packager",
		Usage: "package a secret into a serverless deployment artifact",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "serverless.yml",
				Usage:   "path to the service configuration",
				EnvVars: []string{"SSP_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "stage",
				Usage:   "stage override",
				EnvVars: []string{"SSP_STAGE"},
			},
			&cli.StringFlag{
				Name:    "region",
				Usage:   "region override",
				EnvVars: []string{"SSP_REGION"},
			},
			&cli.StringFlag{
				Name:    "target",
				Value:   ssp.TargetSecretsManager,
				Usage:   "'secretsmanager' or 'ssm'",
				EnvVars: []string{"SSP_TARGET"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "hooks",
				Usage:  "list the lifecycle events hooks are registered for",
				Action: hooksAction,
			},
			{
				Name:      "hook",
				Usage:     "run the hook registered for a lifecycle event",
				ArgsUsage: "EVENT",
				Action:    hookAction,
			},
			{
				Name:   "package",
				Usage:  "write the secrets file and print the files to include",
				Action: packageAction,
			},
			{
				Name:   "cleanup",
				Usage:  "remove the secrets file",
				Action: cleanupAction,
			},
			{
				Name:            "exec",
				Usage:           "run a command between the before and after hooks of a lifecycle",
				ArgsUsage:       "LIFECYCLE -- COMMAND [ARGS...]",
				SkipFlagParsing: true,
				Action:          execAction,
			},
		},
	}
}

func newPlugin(c *cli.Context) (*ssp.Plugin, error) {
	svc, err := ssp.LoadService(c.String("config"))
	if err != nil {
		return nil, err
	}

	opts := ssp.Options{
		Stage:  c.String("stage"),
		Region: c.String("region"),
	}

	cfg, err := ssp.LoadAWSConfig(c.Context, svc.ResolveRegion(opts), svc.Provider.Profile)
	if err != nil {
		return nil, err
	}

	secrets, err := ssp.NewSecretService(c.String("target"), cfg)
	if err != nil {
		return nil, err
	}

	return ssp.New(svc, opts, secrets), nil
}

func hooksAction(c *cli.Context) error {
	p, err := newPlugin(c)
	if err != nil {
		return err
	}

	for _, event := range p.Events() {
		fmt.Fprintln(c.App.Writer, event)
	}

	return nil
}

func hookAction(c *cli.Context) error {
	event := c.Args().First()
	if event == "" {
		return fmt.Errorf("EVENT is required")
	}

	p, err := newPlugin(c)
	if err != nil {
		return err
	}

	ok, err := p.Run(c.Context, event)
	if err != nil {
		return fmt.Errorf("failed to run hook for %s: %w", event, err)
	}
	if !ok {
		return fmt.Errorf("no hook registered for '%s'", event)
	}

	return nil
}

func packageAction(c *cli.Context) error {
	p, err := newPlugin(c)
	if err != nil {
		return err
	}

	if err := p.PackageSecrets(c.Context); err != nil {
		return fmt.Errorf("failed to package secrets: %w", err)
	}

	for _, path := range p.Service.Package.Include {
		fmt.Fprintln(c.App.Writer, path)
	}

	return nil
}

func cleanupAction(c *cli.Context) error {
	p, err := newPlugin(c)
	if err != nil {
		return err
	}

	return p.CleanupPackageSecrets(c.Context)
}

func execAction(c *cli.Context) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("LIFECYCLE is required")
	}

	lc, err := ssp.LookupLifecycle(args[0])
	if err != nil {
		return err
	}

	command := args[1:]
	if len(command) > 0 && command[0] == "--" {
		command = command[1:]
	}
	if len(command) == 0 {
		return fmt.Errorf("COMMAND is required")
	}

	p, err := newPlugin(c)
	if err != nil {
		return err
	}

	return p.Wrap(c.Context, lc, func(ctx context.Context) error {
		cmd := exec.CommandContext(ctx, command[0], command[1:]...)
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("failed to run %s: %w", command[0], err)
		}
		return nil
	})
}
