package discover

import (
	"golang.org/x/sync/errgroup"
)

// Context bundles everything the CLI needs to know about the invocation
// directory before loading a specific profile: the global settings file and
// the list of profiles available under .envlit/.
type Context struct {
	Global   *GlobalSettings
	Profiles []string
}

// Load builds a Context for dir. Global settings discovery and the .envlit
// profile listing are independent filesystem reads, so they run concurrently
// via errgroup.
func Load(dir string) (*Context, error) {
	var g errgroup.Group
	ctx := &Context{}

	g.Go(func() error {
		path, err := DiscoverGlobalConfig()
		if err != nil {
			return err
		}
		settings, err := LoadGlobalSettings(path)
		if err != nil {
			return err
		}
		ctx.Global = settings
		return nil
	})

	g.Go(func() error {
		names, err := ListProfiles(dir)
		if err != nil {
			return err
		}
		ctx.Profiles = names
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ctx, nil
}

// ResolveProfileName picks the effective profile name given an explicit CLI
// argument (highest precedence), falling back to the global settings'
// DefaultProfile, and finally DefaultProfileName.
func (c *Context) ResolveProfileName(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.Global != nil && c.Global.DefaultProfile != "" {
		return c.Global.DefaultProfile
	}
	return DefaultProfileName
}
