// Package catalog holds the read-only reference data the driver flow selects
// from: products stocked in the yard and predefined delivery addresses.
package catalog
