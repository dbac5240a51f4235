package factory

import (
	"github.com/multiversx/mx-chain-abi-go/abi"
	"github.com/multiversx/mx-chain-abi-go/abi/leafCodecs"
	"github.com/multiversx/mx-chain-abi-go/abi/parser"
	"github.com/multiversx/mx-chain-abi-go/api/shared"
	"github.com/multiversx/mx-chain-abi-go/common"
	"github.com/multiversx/mx-chain-abi-go/config"
	"github.com/multiversx/mx-chain-abi-go/facade"
	"github.com/multiversx/mx-chain-abi-go/statusHandler"
	"github.com/multiversx/mx-chain-core-go/core"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
)

var log = logger.GetOrCreate("factory")

// AbiComponentsFactoryArgs holds the arguments needed for creating the abi components factory
type AbiComponentsFactoryArgs struct {
	Config     *config.Config
	AppVersion string
}

type abiComponentsFactory struct {
	config     config.Config
	appVersion string
}

// abiComponents is the DTO holding the components used by the CLI commands and the web server
type abiComponents struct {
	facade            shared.FacadeHandler
	appStatusHandler  core.AppStatusHandler
	prometheusHandler *statusHandler.PrometheusStatusHandler
}

// NewAbiComponentsFactory initializes the factory which is responsible for creating the abi components
func NewAbiComponentsFactory(args AbiComponentsFactoryArgs) (*abiComponentsFactory, error) {
	if args.Config == nil {
		return nil, ErrNilConfig
	}
	if len(args.AppVersion) == 0 {
		return nil, ErrEmptyAppVersion
	}

	err := config.CheckConfig(args.Config)
	if err != nil {
		return nil, err
	}

	return &abiComponentsFactory{
		config:     *args.Config,
		appVersion: args.AppVersion,
	}, nil
}

// Create wires the leaf codec registry, the codec, the type parser and the status handlers into a facade
func (acf *abiComponentsFactory) Create() (*abiComponents, error) {
	limits := acf.config.Limits

	codec, err := abi.NewCodec(abi.ArgsCodec{
		Registry:        leafCodecs.NewRegistry(),
		MaxNestingDepth: limits.MaxNestingDepth,
		MaxArrayLength:  limits.MaxArrayLength,
	})
	if err != nil {
		return nil, err
	}

	typeParser, err := parser.NewTypeParser(parser.ArgsTypeParser{
		MaxNestingDepth: limits.MaxNestingDepth,
		MaxArrayLength:  limits.MaxArrayLength,
	})
	if err != nil {
		return nil, err
	}

	prometheusHandler := statusHandler.NewPrometheusStatusHandler()
	var handler core.AppStatusHandler
	handler, err = statusHandler.NewAppStatusFacadeWithHandlers(prometheusHandler)
	if err != nil {
		log.Warn("cannot init AppStatusFacade, will start with NilStatusHandler", "error", err)
		handler = statusHandler.NewNilStatusHandler()
	}
	acf.initBaseMetrics(handler)

	abiFacade, err := facade.NewAbiFacade(facade.ArgAbiFacade{
		Codec:         codec,
		TypeParser:    typeParser,
		StatusHandler: handler,
	})
	if err != nil {
		return nil, err
	}

	log.Debug("created abi components",
		"MaxNestingDepth", limits.MaxNestingDepth,
		"MaxArrayLength", limits.MaxArrayLength,
		"version", acf.appVersion,
	)

	return &abiComponents{
		facade:            abiFacade,
		appStatusHandler:  handler,
		prometheusHandler: prometheusHandler,
	}, nil
}

func (acf *abiComponentsFactory) initBaseMetrics(handler core.AppStatusHandler) {
	handler.SetUInt64Value(common.MetricMaxNestingDepth, uint64(acf.config.Limits.MaxNestingDepth))
	handler.SetUInt64Value(common.MetricMaxArrayLength, uint64(acf.config.Limits.MaxArrayLength))
	handler.SetStringValue(common.MetricAppVersion, acf.appVersion)
}

// Facade returns the abi facade
func (ac *abiComponents) Facade() shared.FacadeHandler {
	return ac.facade
}

// AppStatusHandler returns the status handler that collects the codec metrics
func (ac *abiComponents) AppStatusHandler() core.AppStatusHandler {
	return ac.appStatusHandler
}

// MetricsGatherer returns the gatherer exposing the collected metrics
func (ac *abiComponents) MetricsGatherer() prometheus.Gatherer {
	return ac.prometheusHandler.Registry()
}

// Close closes the status handlers
func (ac *abiComponents) Close() error {
	ac.appStatusHandler.Close()

	return nil
}
