// Package util provides small generic helpers shared by the provider mappers:
// pointer and absence helpers, loose JSON value coercion, and parsers for the
// duration and size formats providers and config files use.
package util
