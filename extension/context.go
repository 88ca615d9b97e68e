// context.go defines the Context interface for extension access to shared
// services.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals, and
// without any process-wide service container.
//
// Design: Context uses an interface to enable testing with mock
// implementations. Extensions receive Context during Init(), not at
// construction, to support the two-phase initialisation pattern where
// extensions register before the shared services exist. The concrete
// context is built exactly once, by the composition root in cmd/.

package extension

import (
	"github.com/MatesOfMate/extension-template/internal/config"
	"github.com/MatesOfMate/extension-template/internal/entity"
	"github.com/MatesOfMate/extension-template/internal/manifest"
)

// Context provides extensions controlled access to shared services.
// Extensions receive this during initialisation.
type Context interface {
	// Catalog returns the entity catalog, the example collaborator service
	// injected into tool handlers.
	Catalog() *entity.Catalog

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// Manifest returns the discovery manifest this extension was loaded with.
	Manifest() manifest.Manifest
}

// extContext implements Context.
type extContext struct {
	catalog *entity.Catalog
	cfg     *config.Config
	mf      manifest.Manifest
}

// NewContext creates a new extension context. Called by the composition
// root after the manifest and config have been loaded.
func NewContext(catalog *entity.Catalog, cfg *config.Config, mf manifest.Manifest) Context {
	return &extContext{
		catalog: catalog,
		cfg:     cfg,
		mf:      mf,
	}
}

func (c *extContext) Catalog() *entity.Catalog { return c.catalog }

func (c *extContext) Config() *config.Config { return c.cfg }

func (c *extContext) Manifest() manifest.Manifest { return c.mf }
