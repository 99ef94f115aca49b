package main

import (
	"github.com/dmezquita/workspacectl/cmd"

	// Register the X11 backend on Linux builds.
	_ "github.com/dmezquita/workspacectl/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
