//go:build !windows

package console

// enableUTF8 is a no-op: non-Windows consoles already take UTF-8.
func enableUTF8() {}
