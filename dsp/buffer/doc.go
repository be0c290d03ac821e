// Package buffer provides a reusable sample buffer type and pool for
// allocation-friendly vector processing. All generation functions accept
// raw slices; Buffer is an optional convenience that helps callers manage
// allocation and reuse in hot paths, in either precision.
package buffer
