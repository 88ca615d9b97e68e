/*
Copyright © 2026 MatesOfMate
*/
package main

import (
	"github.com/MatesOfMate/extension-template/cmd"

	// Import extensions - each registers itself via init()
	_ "github.com/MatesOfMate/extension-template/extension/all"
)

func main() {
	cmd.Execute()
}
