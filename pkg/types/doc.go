// Package types defines the Catalog interface, the Product, Attribute and
// Param entities, the contract rule that ties a Param's variant to its
// Attribute, and the standard error types shared by every Catalog backend.
package types
