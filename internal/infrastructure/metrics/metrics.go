package metrics

import "sync/atomic"

// Counters tracks the payment flow since process start.
type Counters struct {
	initiated               atomic.Uint64
	initiateGatewayFailures atomic.Uint64
	callbacksCompleted      atomic.Uint64
	callbacksFailed         atomic.Uint64
	callbacksDropped        atomic.Uint64
	callbacksMalformed      atomic.Uint64
	callbacksReapplied      atomic.Uint64
	notificationFailures    atomic.Uint64
}

// Snapshot is a point-in-time copy, safe to serialize.
type Snapshot struct {
	Initiated               uint64 `json:"initiated"`
	InitiateGatewayFailures uint64 `json:"initiate_gateway_failures"`
	CallbacksCompleted      uint64 `json:"callbacks_completed"`
	CallbacksFailed         uint64 `json:"callbacks_failed"`
	CallbacksDropped        uint64 `json:"callbacks_dropped"`
	CallbacksMalformed      uint64 `json:"callbacks_malformed"`
	CallbacksReapplied      uint64 `json:"callbacks_reapplied"`
	NotificationFailures    uint64 `json:"notification_failures"`
}

func (c *Counters) IncInitiated() { c.initiated.Add(1) }
func (c *Counters) IncInitiateGatewayFailure() { c.initiateGatewayFailures.Add(1) }
func (c *Counters) IncCallbackCompleted() { c.callbacksCompleted.Add(1) }
func (c *Counters) IncCallbackFailed() { c.callbacksFailed.Add(1) }
func (c *Counters) IncCallbackDropped() { c.callbacksDropped.Add(1) }
func (c *Counters) IncCallbackMalformed() { c.callbacksMalformed.Add(1) }
func (c *Counters) IncCallbackReapplied() { c.callbacksReapplied.Add(1) }
func (c *Counters) IncNotificationFailure() { c.notificationFailures.Add(1) }

func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Initiated:               c.initiated.Load(),
		InitiateGatewayFailures: c.initiateGatewayFailures.Load(),
		CallbacksCompleted:      c.callbacksCompleted.Load(),
		CallbacksFailed:         c.callbacksFailed.Load(),
		CallbacksDropped:        c.callbacksDropped.Load(),
		CallbacksMalformed:      c.callbacksMalformed.Load(),
		CallbacksReapplied:      c.callbacksReapplied.Load(),
		NotificationFailures:    c.notificationFailures.Load(),
	}
}
