package quantower

import (
	"qtsetup/internal/explorer"
	"qtsetup/internal/model"
	"qtsetup/internal/paths"
	"qtsetup/internal/procfind"
)

// Status takes one snapshot of detection and environment state. All
// paths derive from a single process lookup.
func (b *Bridge) Status() model.Status {
	proc := b.Process()
	exe := procfind.ExecutablePath(proc)
	dir := procfind.ExecutableDirectory(proc)
	root := paths.ProcessDirToRoot(dir)
	indicators := paths.RootToCustomIndicatorsDir(root)

	st := model.Status{
		ProcessName:  b.processName,
		Detected:     proc.IsPresent(),
		PID:          model.Map(proc, procfind.Handle.PID),
		ProcessPath:  exe,
		ProcessDir:   dir,
		Root:         root,
		Indicators:   indicators,
		EnvKey:       b.envKey,
		EnvProcess:   b.ReadRootEnvironmentVariable(),
		EnvUser:      b.ReadUserRootEnvironmentVariable(),
		ExploreMuted: b.suppress.Load(),
	}
	if loc, ok := b.env.(interface{ UserLocation() string }); ok {
		st.UserStore = loc.UserLocation()
	}
	st.RootExists = explorer.DirExists(root.OrElse(""))
	st.IndicatorsExists = explorer.DirExists(indicators.OrElse(""))

	if r, ok := root.Get(); ok {
		st.EnvInSync = st.EnvProcess.OrElse("") == r && st.EnvUser.OrElse("") == r
	}
	return st
}
