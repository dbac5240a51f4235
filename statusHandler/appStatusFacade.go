package statusHandler

import (
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// appStatusFacade will be used for handling multiple monitoring tools at the same time
type appStatusFacade struct {
	handlers []core.AppStatusHandler
}

// NewAppStatusFacadeWithHandlers will receive the handlers which should receive monitored data
func NewAppStatusFacadeWithHandlers(handlers ...core.AppStatusHandler) (*appStatusFacade, error) {
	if len(handlers) == 0 {
		return nil, ErrHandlersSliceIsNil
	}
	for _, handler := range handlers {
		if check.IfNil(handler) {
			return nil, ErrNilHandlerInSlice
		}
	}

	return &appStatusFacade{
		handlers: handlers,
	}, nil
}

// Increment will call the Increment method of all the handlers
func (asf *appStatusFacade) Increment(key string) {
	for _, handler := range asf.handlers {
		handler.Increment(key)
	}
}

// AddUint64 will call the AddUint64 method of all the handlers
func (asf *appStatusFacade) AddUint64(key string, value uint64) {
	for _, handler := range asf.handlers {
		handler.AddUint64(key, value)
	}
}

// Decrement will call the Decrement method of all the handlers
func (asf *appStatusFacade) Decrement(key string) {
	for _, handler := range asf.handlers {
		handler.Decrement(key)
	}
}

// SetInt64Value will call the SetInt64Value method of all the handlers
func (asf *appStatusFacade) SetInt64Value(key string, value int64) {
	for _, handler := range asf.handlers {
		handler.SetInt64Value(key, value)
	}
}

// SetUInt64Value will call the SetUInt64Value method of all the handlers
func (asf *appStatusFacade) SetUInt64Value(key string, value uint64) {
	for _, handler := range asf.handlers {
		handler.SetUInt64Value(key, value)
	}
}

// SetStringValue will call the SetStringValue method of all the handlers
func (asf *appStatusFacade) SetStringValue(key string, value string) {
	for _, handler := range asf.handlers {
		handler.SetStringValue(key, value)
	}
}

// Close will call the Close methods on all inner handlers
func (asf *appStatusFacade) Close() {
	for _, handler := range asf.handlers {
		handler.Close()
	}
}

// IsInterfaceNil returns true if there is no value under the interface
func (asf *appStatusFacade) IsInterfaceNil() bool {
	return asf == nil
}
