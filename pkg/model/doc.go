// Package model defines the typed inputs consumed by signature renderers.
// ContactData is the flat record a user fills in, TemplateKind and
// SizeProfile are closed enumerations selecting the visual preset, and
// Signature bundles them with the optional embeddable image reference.
// Every field degrades to an empty or default value so renderers never have
// to fail on well-typed input.
package model
