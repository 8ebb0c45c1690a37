package lrutime

import (
	"fmt"
	"time"
)

type constError string

// ErrInvalidCapacity may be returned from [New] and [NewExpiringWithCapacity].
const ErrInvalidCapacity = constError("invalid capacity")

// ErrInvalidTTL may be returned from [NewExpiring] and [NewExpiringWithCapacity].
const ErrInvalidTTL = constError("invalid time to live")

func (errStr constError) Error() string { return string(errStr) }

func negativeCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=0 but %d was requested",
		ErrInvalidCapacity, capacity)
}

func nonPositiveTTLError(timeToLive time.Duration) error {
	return fmt.Errorf(
		"%w: must be positive but %s was requested",
		ErrInvalidTTL, timeToLive)
}
