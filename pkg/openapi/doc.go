// Package openapi derives clamped form fields from OpenAPI request bodies.
// Integer properties that declare both minimum and maximum become
// model.Field values carrying min/max rules; properties whose range clamp
// cannot serve are listed in the form metadata instead of failing the load.
// kin-openapi types stay internal to this package.
package openapi
