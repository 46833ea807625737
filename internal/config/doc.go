// Package config provides configuration loading, merging, and validation
// facilities for the client and the development server.
//
// Configuration is assembled from multiple sources. Later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path taken from CONFIG or -c/-config)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig], which
// return validated, role-specific views of [StructuredConfig].
package config
