// Package order provides the Order aggregate: a loading or unloading job for
// one truck at the stockyard, as seen by drivers, excavator operators and the
// back office.
//
// Key business rules:
//   - Orders need a valid identifier, a truck number plate, a gross weight and
//     at least one line; every line orders a distinct product with a positive
//     quantity in tons
//   - Status follows pending -> in-progress -> completed
//   - Tare and net weights can only be recorded once loading has started
//   - Notes are append-only and timestamped
package order
