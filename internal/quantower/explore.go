package quantower

import (
	"fmt"

	"qtsetup/internal/explorer"
	"qtsetup/internal/model"
)

// ExploreIfExists opens dir in the file manager if it is an existing
// directory. Environment references in dir are expanded first.
//
// Suppressed, absent and missing paths all return false without error. The
// error is reserved for the file manager itself failing to start.
func (b *Bridge) ExploreIfExists(dir model.Optional[string]) (bool, error) {
	if b.suppress.Load() {
		return false, nil
	}

	target := explorer.ExpandEnv(dir.OrElse(""))
	if !explorer.DirExists(target) {
		b.log.Debug().Str("path", target).Msg("nothing to explore")
		return false, nil
	}

	if err := b.launcher.Open(target); err != nil {
		return false, fmt.Errorf("open %s: %w", target, err)
	}
	b.log.Debug().Str("path", target).Msg("file manager launched")
	return true, nil
}

// ExploreRoot opens the detected installation root.
func (b *Bridge) ExploreRoot() (bool, error) {
	return b.ExploreIfExists(b.DetectRootPath())
}

// ExploreCustomIndicators opens the detected custom indicators directory.
func (b *Bridge) ExploreCustomIndicators() (bool, error) {
	return b.ExploreIfExists(b.DetectCustomIndicatorsPath())
}
