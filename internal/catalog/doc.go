// Package catalog defines the fixed registry of optional services the
// setup workflow can stand up, and the selection type built from it.
//
// The catalog is an immutable value constructed once at startup and passed
// explicitly to the components that need it; there is no hidden global
// state. Every selection, whether chosen interactively or supplied via
// --service flags, is validated against it before the workflow proceeds.
package catalog
