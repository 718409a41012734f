package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-hoist/hoist/cmd/hoist/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter hoist.yaml",
		Long: `Write a hoist.yaml into the current Go module with the resolved
defaults filled in: app name and ID derived from the module path, diagnostics
enabled, and the standard frame interval.

The command refuses to overwrite an existing hoist.yaml.`,
		Usage: "hoist init",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	path := filepath.Join(root, "hoist.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("hoist.yaml already exists at %s", path)
	}

	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`app:
  name: %s
  id: %s
runtime:
  debug: true
  frame_interval: %s
`, resolved.AppName, resolved.AppID, resolved.FrameInterval)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write hoist.yaml: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
