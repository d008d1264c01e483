// Package templates holds the static template tables the generators emit.
//
// A kit is a directory under kits/ embedded into the binary:
//
//	kits/<name>/manifest.yml   # name, description, ordered file list
//	kits/<name>/files/...      # literal file contents, byte for byte
//
// The manifest fixes the emission order. Contents are never rendered or
// substituted; what is embedded is exactly what lands on disk.
package templates
