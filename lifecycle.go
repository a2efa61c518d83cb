package ssp

import (
	"context"
	"fmt"
	"log"

	"github.com/samber/lo"
)

// Lifecycle pairs the host events surrounding one packaging step.
type Lifecycle struct {
	Name   string
	Before string
	After  string
}

var Lifecycles = []Lifecycle{
	{
		Name:   "package",
		Before: "before:package:createDeploymentArtifacts",
		After:  "after:package:createDeploymentArtifacts",
	},
	{
		Name:   "deploy-function",
		Before: "before:deploy:function:packageFunction",
		After:  "after:deploy:function:packageFunction",
	},
	{
		// serverless-offline
		Name:   "offline",
		Before: "before:offline:start:init",
		After:  "before:offline:start:end",
	},
	{
		Name:   "invoke-local",
		Before: "before:invoke:local:invoke",
		After:  "after:invoke:local:invoke",
	},
}

func LookupLifecycle(name string) (Lifecycle, error) {
	lc, ok := lo.Find(Lifecycles, func(lc Lifecycle) bool {
		return lc.Name == name
	})
	if !ok {
		return Lifecycle{}, fmt.Errorf("unknown lifecycle '%s'", name)
	}

	return lc, nil
}

// Wrap runs fn between the before and after hooks of lc. Once the before hook
// has run the after hook always runs, even if it or fn failed.
func (p *Plugin) Wrap(ctx context.Context, lc Lifecycle, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if _, cerr := p.Run(ctx, lc.After); cerr != nil {
			if err == nil {
				err = cerr
			} else {
				log.Printf("[WARN] %s failed after an earlier error: %s", lc.After, cerr)
			}
		}
	}()

	if _, err := p.Run(ctx, lc.Before); err != nil {
		return err
	}

	return fn(ctx)
}
