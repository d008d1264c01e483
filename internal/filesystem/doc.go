// Package filesystem provides directory traversal over an afero filesystem.
//
// Entries are visited in lexical order and named relative to the walk root
// with forward slashes, so archives and listings built from a walk are
// deterministic and portable:
//
//	err := filesystem.Walk(fs, "uber-clone", func(name string, info os.FileInfo) error {
//	    fmt.Println(name) // "public", "public/index.html", ...
//	    return nil
//	})
package filesystem
