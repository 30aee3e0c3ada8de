// Package paths derives Quantower locations from the launcher's directory.
//
// The offsets encode the known install layout: the launcher runs two
// directories below the installation root. Nothing checks that a given
// directory really is a Quantower root.
package paths

import (
	"path/filepath"

	"qtsetup/internal/model"
)

var (
	// RelativeProcessToRoot walks from the launcher directory to the root.
	RelativeProcessToRoot = filepath.Join("..", "..")
	// RelativeRootToCustomIndicators is where user indicators are dropped.
	RelativeRootToCustomIndicators = filepath.Join("Settings", "Scripts", "Indicators")
)

// ProcessDirToRoot resolves the installation root for a launcher directory.
func ProcessDirToRoot(processDir model.Optional[string]) model.Optional[string] {
	return model.FlatMap(processDir, func(dir string) model.Optional[string] {
		return resolve(dir, RelativeProcessToRoot)
	})
}

// RootToCustomIndicatorsDir resolves the custom indicators directory.
func RootToCustomIndicatorsDir(root model.Optional[string]) model.Optional[string] {
	return model.FlatMap(root, func(dir string) model.Optional[string] {
		return resolve(dir, RelativeRootToCustomIndicators)
	})
}

func resolve(base, rel string) model.Optional[string] {
	abs, err := filepath.Abs(filepath.Join(base, rel))
	if err != nil {
		return model.None[string]()
	}
	return model.Some(abs)
}
