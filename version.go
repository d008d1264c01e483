// Package uberclone holds build metadata shared by the uber-clone generators.
package uberclone

// Version is the release version reported by every generator binary.
const Version = "0.1.0"
