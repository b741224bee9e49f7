// Package model defines the form model consumed by the clamp field renderers.
// Numeric bounds travel as ValidationRule entries with canonical identifiers
// (min/max) and string parameters so configuration files and OpenAPI
// documents can feed the same structure; Field.Bound turns a complete pair of
// rules into a clamp.Bound.
package model
