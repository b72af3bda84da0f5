// Package kernel provides the shared value objects of the stockyard domain.
//
// The package includes:
//   - UUID: identifier of orders and driver sessions
//   - Weight: a scale reading in kilograms, bounded by the weighbridge capacity
//
// Both are immutable and only valid when created through their constructors.
package kernel
