//go:build windows

package console

import (
	"golang.org/x/sys/windows"
)

const cpUTF8 = 65001

// enableUTF8 switches both console code pages to UTF-8 so that output
// produced from decoded wide text renders correctly.
func enableUTF8() {
	kernel32 := windows.NewLazySystemDLL("kernel32.dll")
	for _, name := range []string{"SetConsoleOutputCP", "SetConsoleCP"} {
		proc := kernel32.NewProc(name)
		if proc.Find() != nil {
			continue
		}
		_, _, _ = proc.Call(uintptr(cpUTF8))
	}
}
