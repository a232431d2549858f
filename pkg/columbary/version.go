// Package columbary holds module-level metadata.
package columbary

// Version is the columbary release version.
const Version = "v0.1.0"
