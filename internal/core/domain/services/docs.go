// Package services provides domain services that work across the stockyard
// aggregates without belonging to any single one of them.
//
// The package includes:
//   - DocumentIssuer: builds the delivery note or invoice a driver receives
//     once the loaded truck has been weighed
//   - DocumentFormatter: renders document amounts for the driver's language
package services
