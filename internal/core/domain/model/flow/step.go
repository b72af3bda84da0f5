package flow

import (
	"fmt"

	"stockyard/internal/pkg/errs"
)

// Step is one screen of the driver kiosk.
type Step int

const (
	StepUnknown Step = iota
	Welcome
	Identity
	Address
	Products
	Quantities
	PreloadConfirm
	PostloadWeighIn
	DeliveryNote
	Invoice
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		Welcome:         "welcome",
		Identity:        "identity",
		Address:         "address",
		Products:        "products",
		Quantities:      "quantities",
		PreloadConfirm:  "preload-confirm",
		PostloadWeighIn: "postload-weigh-in",
		DeliveryNote:    "delivery-note",
		Invoice:         "invoice",
	}
}

func (s Step) String() string {
	if str, ok := getStepStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Step) IsTerminal() bool {
	return s == DeliveryNote || s == Invoice
}

// canGoBack reports whether Previous is accepted at s.
func (s Step) canGoBack() bool {
	return s >= Identity && s <= PreloadConfirm
}

// Trigger names the user action behind an Event.
type Trigger int

const (
	TriggerUnknown Trigger = iota
	TriggerChooseAction
	TriggerConfirmIdentity
	TriggerChooseAddress
	TriggerChooseProducts
	TriggerSetQuantities
	TriggerConfirmPreload
	TriggerConfirmWeighIn
	TriggerFinish
	TriggerPrevious
)

func getTriggerStrings() map[Trigger]string {
	return map[Trigger]string{
		TriggerChooseAction:    "choose-action",
		TriggerConfirmIdentity: "confirm-identity",
		TriggerChooseAddress:   "choose-address",
		TriggerChooseProducts:  "choose-products",
		TriggerSetQuantities:   "set-quantities",
		TriggerConfirmPreload:  "confirm-preload",
		TriggerConfirmWeighIn:  "confirm-weigh-in",
		TriggerFinish:          "finish",
		TriggerPrevious:        "previous",
	}
}

func ParseTrigger(s string) (Trigger, error) {
	for t, str := range getTriggerStrings() {
		if str == s {
			return t, nil
		}
	}
	return TriggerUnknown, errs.NewValueIsInvalidErrorWithCause("trigger is invalid", fmt.Errorf("%q is not a known trigger", s))
}

func (t Trigger) String() string {
	if str, ok := getTriggerStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// forwardTriggers maps each step to the only trigger that moves it forward.
var forwardTriggers = map[Step]Trigger{
	Welcome:         TriggerChooseAction,
	Identity:        TriggerConfirmIdentity,
	Address:         TriggerChooseAddress,
	Products:        TriggerChooseProducts,
	Quantities:      TriggerSetQuantities,
	PreloadConfirm:  TriggerConfirmPreload,
	PostloadWeighIn: TriggerConfirmWeighIn,
	DeliveryNote:    TriggerFinish,
	Invoice:         TriggerFinish,
}
