// Package catalog holds build metadata for the catalog module.
package catalog

// Version is the release version reported by catalogd.
const Version = "0.1.0"
