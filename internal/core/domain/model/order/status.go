package order

import (
	"fmt"

	"stockyard/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Pending
	InProgress
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in-progress",
		Completed:  "completed",
	}
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOpen reports whether the order still shows up on the operator task board.
func (s Status) IsOpen() bool {
	return s == Pending || s == InProgress
}

func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start loading", s.String()),
		)
	}

	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

func (s Status) ValidateWeighIn() error {
	if s != InProgress && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to record a weigh-in", s.String()),
		)
	}
	return nil
}
