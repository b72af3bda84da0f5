// Package flow implements the driver order-flow sequencer: the ordered set of
// kiosk steps a truck driver goes through, the draft order accumulated along
// the way, and the effects the flow asks its collaborators to perform.
//
// The sequencer is a pure transition function
//
//	Transition(state, event, registry) -> (state, effects, error)
//
// plus a Sequencer that owns one State and accepts at most one trigger at a
// time. Forward order of the steps:
//
//	Welcome -> Identity -> Address -> Products -> Quantities ->
//	PreloadConfirm -> PostloadWeighIn -> DeliveryNote | Invoice
//
// DeliveryNote and Invoice are terminal; Finish returns the flow to Welcome
// with an empty draft. Previous is accepted from Identity to PreloadConfirm and
// discards everything recorded by later steps. Once the order is submitted the
// flow is forward-only, so the weigh-in is always accepted.
//
// A trigger whose guard is not met is rejected with a GuardViolationError and
// leaves the state unchanged. Triggers lets a UI disable controls up front
// instead of relying on the error.
package flow
