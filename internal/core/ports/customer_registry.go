package ports

// CustomerRegistry knows which customers have an account with the stockyard.
// Registered customers receive a delivery note, everybody else an invoice.
type CustomerRegistry interface {
	// IsRegistered is consulted once per identity confirmation.
	IsRegistered(customerName string) bool

	// CustomerByPlate returns the customer a truck is registered to, used to
	// prefill the identity screen after plate detection.
	CustomerByPlate(numberPlate string) (string, bool)
}
