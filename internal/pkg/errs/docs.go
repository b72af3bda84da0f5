// Package errs holds the error kinds shared by the stockyard domain, its
// command handlers and the adapters.
//
// Every kind comes as a sentinel plus a struct carrying the offending
// parameter:
//   - ErrValueIsRequired: a mandatory value is blank or missing
//   - ErrValueIsInvalid: a value is malformed or breaks a rule, optionally with a cause
//   - ErrValueIsOutOfRange: a number lies outside its bounds
//   - ErrObjectNotFound: an order, session, product or address does not exist
//
// Callers classify errors with errors.Is against the sentinels; the HTTP
// adapter maps them to status codes.
package errs
