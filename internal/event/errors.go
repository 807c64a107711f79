package event

import "errors"

// Sentinel errors for message delivery.
var (
	// ErrRouterClosed is returned when submitting to or registering with a closed router.
	ErrRouterClosed = errors.New("router is closed")

	// ErrUnknownTarget is returned when no mailbox is registered for the target.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrTargetExists is returned when registering a target twice.
	ErrTargetExists = errors.New("target already registered")

	// ErrQueueFull is returned when the target's mailbox cannot accept more messages.
	ErrQueueFull = errors.New("mailbox is full")

	// ErrNilTarget is returned for the zero uuid.
	ErrNilTarget = errors.New("target id is nil")
)
