// Package toolchain provides the host helpers used by the compiler driver:
// directory creation, shell commands, the compile timestamp and output
// file truncation, plus Build, which writes generated source and invokes
// the configured compiler on it.
//
// Build reads its settings from a jule.toml file:
//
//	[build]
//	out_dir = "dist"
//	out_file = "main.go"
//	compiler = "go"
//	compiler_flags = ["build", "-o", "app"]
//	stamp = true
package toolchain
