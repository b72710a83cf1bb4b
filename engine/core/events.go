package core

import "sync"

// System internal event codes. Application should use codes beyond 255.
type EventCode uint16

const (
	// Shuts the application down after the current frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// The configuration file was reloaded and applied.
	/* Context usage:
	 * cfg := context.Data.(Config)
	 */
	EVENT_CODE_CONFIG_RELOADED EventCode = 0x02

	MAX_EVENT_CODE EventCode = 0xFF
)

type EventContext struct {
	Type   EventCode
	Sender interface{}
	Data   interface{}
}

// Should return true if handled.
type FnOnEvent func(context EventContext) bool

// EventHandle identifies one registration, functions not being comparable.
type EventHandle uint64

type registeredEvent struct {
	handle   EventHandle
	callback FnOnEvent
}

type eventSystemState struct {
	mutex      sync.RWMutex
	nextHandle EventHandle
	registered map[EventCode][]registeredEvent
}

var eventState = &eventSystemState{
	registered: make(map[EventCode][]registeredEvent),
}

/**
 * @brief Registers onEvent for every event fired with code. Listeners are
 * called in registration order.
 * @returns The handle to pass to EventUnregister.
 */
func EventRegister(code EventCode, onEvent FnOnEvent) EventHandle {
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	eventState.nextHandle++
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		handle:   eventState.nextHandle,
		callback: onEvent,
	})
	return eventState.nextHandle
}

// EventUnregister removes a registration. It returns false when the handle is
// not registered for code.
func EventUnregister(code EventCode, handle EventHandle) bool {
	eventState.mutex.Lock()
	defer eventState.mutex.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.handle != handle {
			continue
		}
		events = append(events[:i:i], events[i+1:]...)
		if len(events) == 0 {
			delete(eventState.registered, code)
		} else {
			eventState.registered[code] = events
		}
		return true
	}
	LogWarn("event %d has no listener with handle %d", code, handle)
	return false
}

/**
 * @brief Fires an event to the listeners of context.Type. If a listener
 * returns true, the event is considered handled and is not passed on.
 *
 * Safe to call from any goroutine. Listeners run on the caller's goroutine
 * and may register, unregister or fire events themselves.
 * @returns true if handled, otherwise false.
 */
func EventFire(context EventContext) bool {
	eventState.mutex.RLock()
	events := eventState.registered[context.Type]
	eventState.mutex.RUnlock()

	for _, e := range events {
		if e.callback(context) {
			return true
		}
	}
	return false
}
