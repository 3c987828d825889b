// Package catalog is the registration layer for package units: it owns the
// registry of primitive dimensions and units, enforces unique tags, and
// provides the SI catalog plus loading of additional unit definitions from
// YAML files. Registries are populated once, before any arithmetic, and
// treated as read-only afterwards.
package catalog
