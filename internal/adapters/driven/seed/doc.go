// Package seed provides driven.SeedSource implementations.
//
//   - HTTPSource: GET of an http(s) URL; non-2xx statuses are failures
//   - FileSource: a local file path, relative to the working directory
//
// NewSource picks one from a location string.
package seed
