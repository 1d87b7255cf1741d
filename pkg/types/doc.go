// Package types defines the Garment record, the edit patch, the wardrobe
// configuration, and the standard error types for the wardrobe manager.
package types
