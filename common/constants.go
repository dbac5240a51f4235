package common

// MetricEncodeCalls is the metric that counts the encode requests
const MetricEncodeCalls = "abi_encode_calls"

// MetricDecodeCalls is the metric that counts the decode requests
const MetricDecodeCalls = "abi_decode_calls"

// MetricIsEncodableCalls is the metric that counts the encodability checks
const MetricIsEncodableCalls = "abi_is_encodable_calls"

// MetricCanonicalTypeCalls is the metric that counts the type canonicalization requests
const MetricCanonicalTypeCalls = "abi_canonical_type_calls"

// MetricParseErrors is the metric that counts the type strings rejected by the parser
const MetricParseErrors = "abi_parse_errors"

// MetricEncodeErrors is the metric that counts the failed encodings
const MetricEncodeErrors = "abi_encode_errors"

// MetricDecodeErrors is the metric that counts the failed decodings
const MetricDecodeErrors = "abi_decode_errors"

// MetricEncodedBytes is the metric that accumulates the number of bytes produced by encodings
const MetricEncodedBytes = "abi_encoded_bytes"

// MetricMaxNestingDepth holds the configured maximum nesting depth
const MetricMaxNestingDepth = "abi_max_nesting_depth"

// MetricMaxArrayLength holds the configured maximum array length
const MetricMaxArrayLength = "abi_max_array_length"

// MetricAppVersion is the metric that holds the application version
const MetricAppVersion = "abi_app_version"

// AllMetrics lists the numeric metrics exported by the status handlers
var AllMetrics = []string{
	MetricEncodeCalls,
	MetricDecodeCalls,
	MetricIsEncodableCalls,
	MetricCanonicalTypeCalls,
	MetricParseErrors,
	MetricEncodeErrors,
	MetricDecodeErrors,
	MetricEncodedBytes,
	MetricMaxNestingDepth,
	MetricMaxArrayLength,
}
