package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/middleware")

const prefixDurationTooLong = "[too long]"
const prefixBadRequest = "[bad request]"
const prefixInternalError = "[internal error]"
const maxLoggedLength = 100

type responseLoggerMiddleware struct {
	thresholdDurationForLoggingRequest time.Duration
	printRequestFunc                   func(title string, path string, duration time.Duration, status int, request string, response string)
}

// NewResponseLoggerMiddleware returns a new instance of responseLoggerMiddleware
func NewResponseLoggerMiddleware(thresholdDurationForLoggingRequest time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		thresholdDurationForLoggingRequest: thresholdDurationForLoggingRequest,
	}

	rlm.printRequestFunc = rlm.printRequest

	return rlm
}

// MiddlewareHandlerFunc logs details about a request if it is not successful or its duration is higher than a threshold
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()

		request := rlm.captureRequestBody(c)

		bw := &bodyWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		latency := time.Since(t)
		status := c.Writer.Status()

		shouldLogRequest := latency > rlm.thresholdDurationForLoggingRequest || status != http.StatusOK
		if shouldLogRequest {
			title := rlm.computeLogTitle(status)
			response := removeWhitespacesFromString(bw.body.String())
			rlm.printRequestFunc(title, c.Request.RequestURI, latency, status, request, response)
		}
	}
}

// captureRequestBody reads the request body and puts it back so the handlers can still consume it
func (rlm *responseLoggerMiddleware) captureRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return "n/a"
	}

	reqBodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Debug("responseLoggerMiddleware: cannot read request body", "error", err.Error())
		return "n/a"
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(reqBodyBytes))

	if len(reqBodyBytes) == 0 {
		return "n/a"
	}

	return removeWhitespacesFromString(string(reqBodyBytes))
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

func (rlm *responseLoggerMiddleware) computeLogTitle(status int) string {
	logPrefix := prefixDurationTooLong
	if status == http.StatusBadRequest {
		logPrefix = prefixBadRequest
	} else if status == http.StatusInternalServerError {
		logPrefix = prefixInternalError
	} else if status != http.StatusOK {
		logPrefix = fmt.Sprintf("http code %d", status)
	}

	return fmt.Sprintf("%s api request", logPrefix)
}

func (rlm *responseLoggerMiddleware) printRequest(title string, path string, duration time.Duration, status int, request string, response string) {
	log.Debug(title,
		"path", path,
		"duration", duration,
		"status", status,
		"request", truncate(request),
		"response", truncate(response),
	)
}

func truncate(str string) string {
	if len(str) > maxLoggedLength {
		return str[:maxLoggedLength] + "..."
	}

	return str
}

func removeWhitespacesFromString(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
