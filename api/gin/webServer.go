package gin

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	apiErrors "github.com/multiversx/mx-chain-abi-go/api/errors"
	"github.com/multiversx/mx-chain-abi-go/api/groups"
	"github.com/multiversx/mx-chain-abi-go/api/middleware"
	"github.com/multiversx/mx-chain-abi-go/api/shared"
	"github.com/multiversx/mx-chain-abi-go/config"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logger.GetOrCreate("api/gin")

const (
	abiGroupName                   = "abi"
	metricsPath                    = "/metrics"
	allOrigins                     = "*"
	thresholdForLoggingLongRequest = time.Second
)

// ArgsNewWebServer holds the arguments needed to create a new instance of webServer
type ArgsNewWebServer struct {
	Facade          shared.FacadeHandler
	Config          config.WebServerConfig
	MetricsGatherer prometheus.Gatherer
}

type webServer struct {
	sync.RWMutex
	facade          shared.FacadeHandler
	config          config.WebServerConfig
	metricsGatherer prometheus.Gatherer
	httpServer      shared.HttpServerCloser
	groups          map[string]shared.GroupHandler
}

// NewGinWebServerHandler returns a new instance of webServer
func NewGinWebServerHandler(args ArgsNewWebServer) (*webServer, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &webServer{
		facade:          args.Facade,
		config:          args.Config,
		metricsGatherer: args.MetricsGatherer,
	}, nil
}

func checkArgs(args ArgsNewWebServer) error {
	if check.IfNil(args.Facade) {
		return apiErrors.ErrNilFacadeHandler
	}
	if args.MetricsGatherer == nil {
		return apiErrors.ErrNilMetricsGatherer
	}

	return nil
}

// StartHttpServer will create a new instance of http.Server, populate it with all the routes and start it on
// a separate go routine
func (ws *webServer) StartHttpServer() error {
	ws.Lock()
	defer ws.Unlock()

	if !ws.config.Enabled {
		log.Debug("web server is disabled")
		return nil
	}

	gin.DefaultWriter = &ginWriter{}
	gin.DefaultErrorWriter = &ginErrorWriter{}
	gin.DisableConsoleColor()
	gin.SetMode(gin.ReleaseMode)

	engine, err := ws.createEngine()
	if err != nil {
		return err
	}

	timeout := time.Duration(ws.config.RequestTimeoutSec) * time.Second
	server := &http.Server{
		Addr:         ws.config.InterfaceAddress,
		Handler:      engine,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	log.Debug("creating gin web sever", "interface", ws.config.InterfaceAddress)
	ws.httpServer, err = NewHttpServer(server)
	if err != nil {
		return err
	}

	log.Info("starting web server",
		"interface", ws.config.InterfaceAddress,
		"SimultaneousRequests", ws.config.SimultaneousRequests,
		"RequestTimeoutSec", ws.config.RequestTimeoutSec,
	)

	go ws.httpServer.Start()

	return nil
}

func (ws *webServer) createEngine() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.RecoveryWithWriter(&ginErrorWriter{}))

	corsHandler := ws.createCorsHandler()
	if corsHandler != nil {
		engine.Use(corsHandler)
	}

	processors, err := ws.createMiddlewareLimiters()
	if err != nil {
		return nil, err
	}

	for _, proc := range processors {
		if check.IfNil(proc) {
			continue
		}

		engine.Use(proc.MiddlewareHandlerFunc())
	}

	err = ws.createGroups()
	if err != nil {
		return nil, err
	}

	ws.registerRoutes(engine)

	if ws.config.EnablePprof {
		pprof.Register(engine)
		log.Debug("registered the pprof routes", "prefix", pprof.DefaultPrefix)
	}

	return engine, nil
}

func (ws *webServer) createCorsHandler() gin.HandlerFunc {
	origins := ws.config.CorsAllowOrigins
	if len(origins) == 0 {
		return nil
	}

	corsConfig := cors.DefaultConfig()
	for _, origin := range origins {
		if origin == allOrigins {
			corsConfig.AllowAllOrigins = true
			return cors.New(corsConfig)
		}
	}
	corsConfig.AllowOrigins = origins

	return cors.New(corsConfig)
}

func (ws *webServer) createGroups() error {
	groupsMap := make(map[string]shared.GroupHandler)
	abiGroup, err := groups.NewAbiGroup(ws.facade)
	if err != nil {
		return err
	}
	groupsMap[abiGroupName] = abiGroup

	ws.groups = groupsMap

	return nil
}

func (ws *webServer) registerRoutes(ginRouter *gin.Engine) {
	for groupName, groupHandler := range ws.groups {
		log.Debug("registering gin API group", "group name", groupName)
		ginGroup := ginRouter.Group(fmt.Sprintf("/%s", groupName))
		groupHandler.RegisterRoutes(ginGroup, nil)
	}

	metricsHandler := promhttp.HandlerFor(ws.metricsGatherer, promhttp.HandlerOpts{})
	ginRouter.GET(metricsPath, gin.WrapH(metricsHandler))
}

func (ws *webServer) createMiddlewareLimiters() ([]shared.MiddlewareProcessor, error) {
	middlewares := make([]shared.MiddlewareProcessor, 0)

	responseLoggerMiddleware := middleware.NewResponseLoggerMiddleware(thresholdForLoggingLongRequest)
	middlewares = append(middlewares, responseLoggerMiddleware)

	globalLimiter, err := middleware.NewGlobalThrottler(ws.config.SimultaneousRequests)
	if err != nil {
		return nil, err
	}

	middlewares = append(middlewares, globalLimiter)

	return middlewares, nil
}

// Close will handle the closing of inner components
func (ws *webServer) Close() error {
	ws.Lock()
	defer ws.Unlock()

	if check.IfNil(ws.httpServer) {
		return nil
	}

	err := ws.httpServer.Close()
	if err != nil {
		err = fmt.Errorf("%w while closing the http server in gin/webServer", err)
	}

	return err
}

// IsInterfaceNil returns true if there is no value under the interface
func (ws *webServer) IsInterfaceNil() bool {
	return ws == nil
}
