package groups

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/multiversx/mx-chain-abi-go/abi"
	apiErrors "github.com/multiversx/mx-chain-abi-go/api/errors"
	"github.com/multiversx/mx-chain-abi-go/api/shared"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

const (
	encodePath       = "/encode"
	encodeSinglePath = "/encode-single"
	decodePath       = "/decode"
	decodeSinglePath = "/decode-single"
	isEncodablePath  = "/is-encodable"
	canonicalPath    = "/canonical"

	typeQueryParam = "type"
	hexPrefix      = "0x"
)

// abiFacadeHandler defines the methods to be implemented by a facade for handling abi requests
type abiFacadeHandler interface {
	EncodeSingle(typeString string, arg any) ([]byte, error)
	EncodeArguments(typeStrings []string, args []any) ([]byte, error)
	IsEncodable(typeString string, arg any) (bool, error)
	DecodeSingle(typeString string, input any) (any, error)
	DecodeArguments(typeStrings []string, data []byte) ([]any, error)
	CanonicalType(typeString string) (string, error)
	IsInterfaceNil() bool
}

// EncodeRequest holds the types and the arguments of a call to be encoded
type EncodeRequest struct {
	Types []string `json:"types"`
	Args  []any    `json:"args"`
}

// EncodeSingleRequest holds one type and its argument
type EncodeSingleRequest struct {
	Type string `json:"type"`
	Arg  any    `json:"arg"`
}

// DecodeRequest holds the types of a call and the hex encoded data to be decoded
type DecodeRequest struct {
	Types []string `json:"types"`
	Data  string   `json:"data"`
}

// DecodeSingleRequest holds one type and the data to be decoded. The data is subject to the hex detection rules.
type DecodeSingleRequest struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

type abiGroup struct {
	*baseGroup
	facade abiFacadeHandler
}

// NewAbiGroup returns a new instance of abiGroup
func NewAbiGroup(facade abiFacadeHandler) (*abiGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for abi group", apiErrors.ErrNilFacadeHandler)
	}

	ag := &abiGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    encodePath,
			Method:  http.MethodPost,
			Handler: ag.encode,
		},
		{
			Path:    encodeSinglePath,
			Method:  http.MethodPost,
			Handler: ag.encodeSingle,
		},
		{
			Path:    decodePath,
			Method:  http.MethodPost,
			Handler: ag.decode,
		},
		{
			Path:    decodeSinglePath,
			Method:  http.MethodPost,
			Handler: ag.decodeSingle,
		},
		{
			Path:    isEncodablePath,
			Method:  http.MethodPost,
			Handler: ag.isEncodable,
		},
		{
			Path:    canonicalPath,
			Method:  http.MethodGet,
			Handler: ag.canonical,
		},
	}
	ag.endpoints = endpoints

	return ag, nil
}

func (ag *abiGroup) encode(c *gin.Context) {
	request := EncodeRequest{}
	err := bindJSON(c, &request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}

	encoded, err := ag.facade.EncodeArguments(request.Types, request.Args)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrEncode, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"encoded": hexPrefix + hex.EncodeToString(encoded)}, "", shared.ReturnCodeSuccess)
}

func (ag *abiGroup) encodeSingle(c *gin.Context) {
	request := EncodeSingleRequest{}
	err := bindJSON(c, &request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if len(request.Type) == 0 {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, apiErrors.ErrEmptyType)
		return
	}

	encoded, err := ag.facade.EncodeSingle(request.Type, request.Arg)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrEncode, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"encoded": hexPrefix + hex.EncodeToString(encoded)}, "", shared.ReturnCodeSuccess)
}

func (ag *abiGroup) decode(c *gin.Context) {
	request := DecodeRequest{}
	err := bindJSON(c, &request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}

	data, err := hex.DecodeString(removeHexPrefix(request.Data))
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, fmt.Errorf("%w: %v", apiErrors.ErrInvalidHexData, err))
		return
	}

	values, err := ag.facade.DecodeArguments(request.Types, data)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrDecode, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"values": values}, "", shared.ReturnCodeSuccess)
}

func (ag *abiGroup) decodeSingle(c *gin.Context) {
	request := DecodeSingleRequest{}
	err := bindJSON(c, &request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if len(request.Type) == 0 {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, apiErrors.ErrEmptyType)
		return
	}

	value, err := ag.facade.DecodeSingle(request.Type, request.Data)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrDecode, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"value": value}, "", shared.ReturnCodeSuccess)
}

func (ag *abiGroup) isEncodable(c *gin.Context) {
	request := EncodeSingleRequest{}
	err := bindJSON(c, &request)
	if err != nil {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, err)
		return
	}
	if len(request.Type) == 0 {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, apiErrors.ErrEmptyType)
		return
	}

	encodable, err := ag.facade.IsEncodable(request.Type, request.Arg)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrIsEncodable, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"encodable": encodable}, "", shared.ReturnCodeSuccess)
}

func (ag *abiGroup) canonical(c *gin.Context) {
	typeString := c.Query(typeQueryParam)
	if len(typeString) == 0 {
		shared.RespondWithValidationError(c, apiErrors.ErrValidation, apiErrors.ErrEmptyType)
		return
	}

	canonical, err := ag.facade.CanonicalType(typeString)
	if err != nil {
		respondWithFacadeError(c, apiErrors.ErrCanonicalType, err)
		return
	}

	shared.RespondWith(c, http.StatusOK, gin.H{"canonical": canonical}, "", shared.ReturnCodeSuccess)
}

// bindJSON decodes the request body keeping the JSON numbers exact
func bindJSON(c *gin.Context, dest any) error {
	if c.Request.Body == nil {
		return apiErrors.ErrInvalidJSONRequest
	}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	err := decoder.Decode(dest)
	if err != nil {
		return fmt.Errorf("%w: %v", apiErrors.ErrInvalidJSONRequest, err)
	}

	return nil
}

// respondWithFacadeError answers with 400 for the errors the caller can correct and with 500 otherwise
func respondWithFacadeError(c *gin.Context, operationErr error, err error) {
	status, code := http.StatusInternalServerError, shared.ReturnCodeInternalError
	if isRequestError(err) {
		status, code = http.StatusBadRequest, shared.ReturnCodeRequestError
	}

	shared.RespondWith(c, status, nil, fmt.Sprintf("%s: %s", operationErr.Error(), err.Error()), code)
}

func isRequestError(err error) bool {
	for _, requestErr := range []error{
		abi.ErrParsing,
		abi.ErrUnsupportedType,
		abi.ErrEncoding,
		abi.ErrDecoding,
		abi.ErrInsufficientData,
		abi.ErrInvalidInputShape,
	} {
		if errors.Is(err, requestErr) {
			return true
		}
	}

	return false
}

func removeHexPrefix(data string) string {
	if strings.HasPrefix(data, hexPrefix) || strings.HasPrefix(data, "0X") {
		return data[len(hexPrefix):]
	}

	return data
}

// IsInterfaceNil returns true if there is no value under the interface
func (ag *abiGroup) IsInterfaceNil() bool {
	return ag == nil
}
