// Package session holds the driver session aggregate: one kiosk interaction
// from the welcome screen to the printed document.
//
// A Session wraps a flow.Sequencer and records when the driver last did
// something and when the current step was entered. The latter doubles as the
// issue time of delivery notes and invoices so their numbers stay stable
// while the driver looks at the document.
package session
