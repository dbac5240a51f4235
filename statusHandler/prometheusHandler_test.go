package statusHandler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/multiversx/mx-chain-abi-go/common"
	"github.com/multiversx/mx-chain-abi-go/statusHandler"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	prometheusUtils "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusStatusHandler_NewPrometheusStatusHandler(t *testing.T) {
	t.Parallel()

	var promStatusHandler core.AppStatusHandler
	promStatusHandler = statusHandler.NewPrometheusStatusHandler()
	assert.False(t, check.IfNil(promStatusHandler))
}

func TestPrometheusStatusHandler_TestIfMetricsAreInitialized(t *testing.T) {
	t.Parallel()

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()

	for _, key := range common.AllMetrics {
		gauge, err := promStatusHandler.GetPrometheusMetricByKey(key)
		require.Nil(t, err, key)
		assert.Equal(t, float64(0), prometheusUtils.ToFloat64(gauge), key)
	}
}

func TestPrometheusStatusHandler_TestIncrementAndDecrement(t *testing.T) {
	t.Parallel()

	var metricKey = common.MetricEncodeCalls

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()
	promStatusHandler.Increment(metricKey)

	gauge, err := promStatusHandler.GetPrometheusMetricByKey(metricKey)
	require.Nil(t, err)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(gauge))

	promStatusHandler.Increment(metricKey)
	promStatusHandler.Increment(metricKey)
	assert.Equal(t, float64(3), prometheusUtils.ToFloat64(gauge))

	promStatusHandler.Decrement(metricKey)
	assert.Equal(t, float64(2), prometheusUtils.ToFloat64(gauge))

	promStatusHandler.AddUint64(metricKey, 10)
	assert.Equal(t, float64(12), prometheusUtils.ToFloat64(gauge))
}

func TestPrometheusStatusHandler_TestSetInt64ValueAndSetUInt64Value(t *testing.T) {
	t.Parallel()

	var metricKey = common.MetricMaxNestingDepth

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()
	promStatusHandler.SetInt64Value(metricKey, int64(10))

	gauge, err := promStatusHandler.GetPrometheusMetricByKey(metricKey)
	require.Nil(t, err)
	assert.Equal(t, float64(10), prometheusUtils.ToFloat64(gauge))

	promStatusHandler.SetUInt64Value(metricKey, uint64(20))
	assert.Equal(t, float64(20), prometheusUtils.ToFloat64(gauge))
}

func TestPrometheusStatusHandler_UnknownKeysAreCreatedOnFirstUse(t *testing.T) {
	t.Parallel()

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()
	_, err := promStatusHandler.GetPrometheusMetricByKey("abi_custom")
	assert.NotNil(t, err)

	promStatusHandler.Increment("abi_custom")
	gauge, err := promStatusHandler.GetPrometheusMetricByKey("abi_custom")
	require.Nil(t, err)
	assert.Equal(t, float64(1), prometheusUtils.ToFloat64(gauge))
}

func TestPrometheusStatusHandler_ExposesMetricsOverHTTP(t *testing.T) {
	t.Parallel()

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()
	promStatusHandler.Increment(common.MetricDecodeCalls)
	promStatusHandler.SetStringValue(common.MetricAppVersion, "v1.0.0")
	promStatusHandler.SetStringValue(common.MetricAppVersion, "v1.0.1")

	server := httptest.NewServer(promhttp.HandlerFor(promStatusHandler.Registry(), promhttp.HandlerOpts{}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.Nil(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	require.Nil(t, err)

	body := string(raw)
	assert.Contains(t, body, common.MetricDecodeCalls+" 1")
	assert.Contains(t, body, common.MetricAppVersion+`{value="v1.0.1"} 1`)
	assert.NotContains(t, body, "v1.0.0")
}

func TestPrometheusStatusHandler_CloseUnregistersMetrics(t *testing.T) {
	t.Parallel()

	promStatusHandler := statusHandler.NewPrometheusStatusHandler()
	promStatusHandler.SetStringValue(common.MetricAppVersion, "v1.0.0")
	promStatusHandler.Close()

	families, err := promStatusHandler.Registry().Gather()
	require.Nil(t, err)
	assert.Empty(t, families)
}

func BenchmarkPrometheusStatusHandler_Increment(b *testing.B) {
	var promStatusHandler core.AppStatusHandler
	promStatusHandler = statusHandler.NewPrometheusStatusHandler()

	for n := 0; n < b.N; n++ {
		promStatusHandler.Increment(common.MetricEncodeCalls)
	}
	promStatusHandler.Close()
}
