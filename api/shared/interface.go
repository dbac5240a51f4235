package shared

import (
	"github.com/gin-gonic/gin"
)

// GroupHandler defines the actions needed to be performed by an gin API group
type GroupHandler interface {
	RegisterRoutes(ws *gin.RouterGroup, additionalMiddlewares []MiddlewareProcessor)
	IsInterfaceNil() bool
}

// MiddlewareProcessor defines a processor used internally by the web server when processing requests
type MiddlewareProcessor interface {
	MiddlewareHandlerFunc() gin.HandlerFunc
	IsInterfaceNil() bool
}

// HttpServerCloser defines the basic actions of starting and closing that a web server should be able to do
type HttpServerCloser interface {
	Start()
	Close() error
	IsInterfaceNil() bool
}

// FacadeHandler defines all the methods that a facade should implement
type FacadeHandler interface {
	EncodeSingle(typeString string, arg any) ([]byte, error)
	EncodeArguments(typeStrings []string, args []any) ([]byte, error)
	IsEncodable(typeString string, arg any) (bool, error)
	DecodeSingle(typeString string, input any) (any, error)
	DecodeArguments(typeStrings []string, data []byte) ([]any, error)
	CanonicalType(typeString string) (string, error)
	IsInterfaceNil() bool
}
