// Package all imports all built-in extensions.
// Import this package to register all built-in commands and capabilities.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/MatesOfMate/extension-template/extension/core"
	_ "github.com/MatesOfMate/extension-template/extension/example"
)
