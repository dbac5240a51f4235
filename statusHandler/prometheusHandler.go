package statusHandler

import (
	"sync"

	"github.com/multiversx/mx-chain-abi-go/common"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/prometheus/client_golang/prometheus"
)

var log = logger.GetOrCreate("statusHandler")

const stringValueLabel = "value"

// PrometheusStatusHandler will define the handler which will update prometheus metrics
type PrometheusStatusHandler struct {
	registry               *prometheus.Registry
	mutRegistration        sync.Mutex
	prometheusGaugeMetrics sync.Map
	prometheusInfoMetrics  sync.Map
}

// NewPrometheusStatusHandler will return an instance of a PrometheusStatusHandler with all the known metrics
// initialized on its own registry
func NewPrometheusStatusHandler() *PrometheusStatusHandler {
	psh := &PrometheusStatusHandler{
		registry: prometheus.NewRegistry(),
	}
	psh.InitMetrics()

	return psh
}

// InitMetrics will declare and init all the metrics which should be used for Prometheus
func (psh *PrometheusStatusHandler) InitMetrics() {
	for _, key := range common.AllMetrics {
		psh.gauge(key)
	}
}

// Registry returns the gatherer that holds the metrics of this handler
func (psh *PrometheusStatusHandler) Registry() prometheus.Gatherer {
	return psh.registry
}

// Increment will be used for incrementing the value for a key
func (psh *PrometheusStatusHandler) Increment(key string) {
	psh.gauge(key).Inc()
}

// AddUint64 will be used for increasing the value for a key with the provided amount
func (psh *PrometheusStatusHandler) AddUint64(key string, value uint64) {
	psh.gauge(key).Add(float64(value))
}

// Decrement will be used for decrementing the value for a key
func (psh *PrometheusStatusHandler) Decrement(key string) {
	psh.gauge(key).Dec()
}

// SetInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetInt64Value(key string, value int64) {
	psh.gauge(key).Set(float64(value))
}

// SetUInt64Value method - will update the value for a key
func (psh *PrometheusStatusHandler) SetUInt64Value(key string, value uint64) {
	psh.gauge(key).Set(float64(value))
}

// SetStringValue exports the string as the label of an info gauge set to 1
func (psh *PrometheusStatusHandler) SetStringValue(key string, value string) {
	vec := psh.infoVec(key)
	vec.Reset()
	vec.WithLabelValues(value).Set(1)
}

// Close will unregister the metrics
func (psh *PrometheusStatusHandler) Close() {
	psh.prometheusGaugeMetrics.Range(func(_, value any) bool {
		psh.registry.Unregister(value.(prometheus.Gauge))
		return true
	})
	psh.prometheusInfoMetrics.Range(func(_, value any) bool {
		psh.registry.Unregister(value.(*prometheus.GaugeVec))
		return true
	})
}

// IsInterfaceNil returns true if there is no value under the interface
func (psh *PrometheusStatusHandler) IsInterfaceNil() bool {
	return psh == nil
}

func (psh *PrometheusStatusHandler) gauge(key string) prometheus.Gauge {
	value, ok := psh.prometheusGaugeMetrics.Load(key)
	if ok {
		return value.(prometheus.Gauge)
	}

	psh.mutRegistration.Lock()
	defer psh.mutRegistration.Unlock()

	value, ok = psh.prometheusGaugeMetrics.Load(key)
	if ok {
		return value.(prometheus.Gauge)
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: key,
		Help: key,
	})
	err := psh.registry.Register(gauge)
	if err != nil {
		log.Warn("PrometheusStatusHandler: cannot register metric", "key", key, "error", err.Error())
	}
	psh.prometheusGaugeMetrics.Store(key, gauge)

	return gauge
}

func (psh *PrometheusStatusHandler) infoVec(key string) *prometheus.GaugeVec {
	value, ok := psh.prometheusInfoMetrics.Load(key)
	if ok {
		return value.(*prometheus.GaugeVec)
	}

	psh.mutRegistration.Lock()
	defer psh.mutRegistration.Unlock()

	value, ok = psh.prometheusInfoMetrics.Load(key)
	if ok {
		return value.(*prometheus.GaugeVec)
	}

	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: key,
		Help: key,
	}, []string{stringValueLabel})
	err := psh.registry.Register(vec)
	if err != nil {
		log.Warn("PrometheusStatusHandler: cannot register metric", "key", key, "error", err.Error())
	}
	psh.prometheusInfoMetrics.Store(key, vec)

	return vec
}
