// Package catalog names fixture DSLs in a YAML document so tests and the
// CLI can refer to them by name. Builtin returns the catalog embedded in
// the module.
package catalog
