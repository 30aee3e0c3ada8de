package quantower

import (
	"qtsetup/internal/envvar"
	"qtsetup/internal/model"
)

// SetupRootEnvironmentVariable writes the detected root at process and
// user scope. It returns false, having written nothing, when the platform
// isn't running.
//
// The user-scope value only reaches processes started afterwards. An IDE
// that is already open has to be restarted before its builds see it.
func (b *Bridge) SetupRootEnvironmentVariable() (bool, error) {
	root, ok := b.DetectRootPath().Get()
	if !ok {
		b.log.Debug().Str("process", b.processName).Msg("root not detected, environment untouched")
		return false, nil
	}

	if err := b.env.Set(envvar.Process, b.envKey, root); err != nil {
		return false, err
	}
	if err := b.env.Set(envvar.User, b.envKey, root); err != nil {
		return false, err
	}

	b.log.Info().Str("key", b.envKey).Str("root", root).Msg("environment variable set")
	return true, nil
}

// ReadRootEnvironmentVariable reads the variable as this process inherited it.
func (b *Bridge) ReadRootEnvironmentVariable() model.Optional[string] {
	return b.read(envvar.Process)
}

// ReadUserRootEnvironmentVariable reads the persisted user-scope value.
func (b *Bridge) ReadUserRootEnvironmentVariable() model.Optional[string] {
	return b.read(envvar.User)
}

func (b *Bridge) read(scope envvar.Scope) model.Optional[string] {
	v, ok := b.env.Get(scope, b.envKey)
	if !ok {
		return model.None[string]()
	}
	return model.Some(v)
}
