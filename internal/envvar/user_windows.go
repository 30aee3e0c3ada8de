//go:build windows

package envvar

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const userEnvKey = `Environment`

const (
	hwndBroadcast    = 0xffff
	wmSettingChange  = 0x001A
	smtoAbortIfHung  = 0x0002
	broadcastTimeout = 5000
)

var procSendMessageTimeout = windows.NewLazySystemDLL("user32.dll").NewProc("SendMessageTimeoutW")

// registryStore writes HKCU\Environment, which Explorer hands to every
// process it starts after the change is broadcast.
type registryStore struct{}

func defaultUserStore() UserStore {
	return registryStore{}
}

func (registryStore) Location() string {
	return `HKCU\` + userEnvKey
}

func (registryStore) Lookup(name string) (string, bool) {
	k, err := registry.OpenKey(registry.CURRENT_USER, userEnvKey, registry.QUERY_VALUE)
	if err != nil {
		return "", false
	}
	defer k.Close()

	v, _, err := k.GetStringValue(name)
	if err != nil {
		return "", false
	}
	return v, true
}

func (registryStore) Store(name, value string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, userEnvKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open registry key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("write registry value: %w", err)
	}
	broadcastEnvironmentChange()
	return nil
}

// broadcastEnvironmentChange nudges Explorer to reload the user
// environment. Applications already running keep their old copy.
func broadcastEnvironmentChange() {
	param, err := windows.UTF16PtrFromString(userEnvKey)
	if err != nil {
		return
	}
	var result uintptr
	_, _, _ = procSendMessageTimeout.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		broadcastTimeout,
		uintptr(unsafe.Pointer(&result)),
	)
}
