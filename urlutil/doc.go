// Package urlutil provides URL helpers for the schema generator: stripping
// URLs to their server-relative form, merging query parameters, deferred
// string evaluation, and recovering the literal sub-pattern behind each
// named capture group of a route regexp.
package urlutil
