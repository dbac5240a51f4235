package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-abi-go/api/middleware"
	"github.com/multiversx/mx-chain-abi-go/api/shared"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewGlobalThrottler(t *testing.T) {
	t.Parallel()

	gt, err := middleware.NewGlobalThrottler(0)
	assert.Equal(t, middleware.ErrInvalidMaxNumRequests, err)
	assert.True(t, check.IfNil(gt))

	gt, err = middleware.NewGlobalThrottler(1)
	assert.Nil(t, err)
	assert.False(t, check.IfNil(gt))
}

func TestGlobalThrottler_LimitsSimultaneousRequests(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})

	gt, _ := middleware.NewGlobalThrottler(1)
	ws := gin.New()
	ws.Use(gt.MiddlewareHandlerFunc())
	ws.GET("/slow", func(c *gin.Context) {
		entered <- struct{}{}
		<-release
		c.Status(http.StatusOK)
	})
	ws.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	firstDone := make(chan int)
	go func() {
		resp := httptest.NewRecorder()
		ws.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/slow", nil))
		firstDone <- resp.Code
	}()
	<-entered

	resp := httptest.NewRecorder()
	ws.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)

	response := shared.GenericAPIResponse{}
	require.Nil(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Equal(t, shared.ReturnCodeSystemBusy, response.Code)
	assert.Equal(t, middleware.ErrTooManyRequests.Error(), response.Error)

	close(release)
	assert.Equal(t, http.StatusOK, <-firstDone)

	resp = httptest.NewRecorder()
	ws.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Equal(t, http.StatusOK, resp.Code)
}
