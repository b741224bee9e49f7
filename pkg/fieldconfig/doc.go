// Package fieldconfig loads clamped field definitions from JSON/YAML files so
// forms can be configured without an OpenAPI document. Every bound is checked
// when the file is loaded; a store that loads successfully only holds fields
// clamp can serve.
package fieldconfig
