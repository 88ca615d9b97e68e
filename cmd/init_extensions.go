/*
Copyright © 2026 MatesOfMate
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the composition root: the one place
// where the discovery manifest is read, configuration is loaded, the
// collaborator services are constructed, and the shared context is injected
// into extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the shared services exist. The context is created
// once and shared across all extensions - there is no global service
// container to resolve against.

package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/MatesOfMate/extension-template/extension"
	"github.com/MatesOfMate/extension-template/internal/config"
	"github.com/MatesOfMate/extension-template/internal/entity"
	"github.com/MatesOfMate/extension-template/internal/log"
	"github.com/MatesOfMate/extension-template/internal/manifest"
)

// standaloneCommands lists commands that bypass context initialisation.
// Built from bootstrap commands plus extension-declared standalone commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip context
// initialisation.
//
// Why this exists: Most commands need the manifest and config, but some must
// work without them. Running "mcpext guide" shouldn't fail just because the
// working directory has no extension.yaml. Extensions can implement the
// Standalone interface to declare their own such commands.
func buildStandaloneCommands() map[string]bool {
	cmds := map[string]bool{
		// Core bootstrap commands - always standalone
		"guide":      true,
		"version":    true,
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// ExtContext returns the shared extension context. Valid after
// initExtensions has run (i.e. inside any non-standalone command).
func ExtContext() extension.Context {
	return extContext
}

// initExtensions builds the shared context and injects it into extensions.
//
// Why sync.Once: The context must be identical for every extension and
// every capability invocation. We use sync.Once to guarantee exactly one
// initialisation per process, even if multiple commands somehow trigger it.
//
// Error handling: Any failure here is a misconfiguration (bad manifest,
// broken include, extension Init failure) and aborts the command. Nothing
// is deferred to request time.
func initExtensions() error {
	initOnce.Do(func() {
		mf, err := manifest.Load(ManifestPath())
		if err != nil {
			initErr = err
			return
		}

		cfg, err := config.Load(mf.Includes...)
		if err != nil {
			initErr = err
			return
		}

		// Identify this project in the shared audit log
		if wd, err := os.Getwd(); err == nil {
			log.SetProject(wd)
		}

		extContext = extension.NewContext(entity.NewCatalog(), cfg, mf)

		// Inject the shared context into all Initializable extensions.
		// This is dependency injection - extensions receive collaborators
		// rather than creating them, so wiring failures surface here.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build standaloneCommands after all extensions are registered
		standaloneCommands = buildStandaloneCommands()
	})
}
