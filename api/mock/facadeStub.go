package mock

// FacadeStub -
type FacadeStub struct {
	EncodeSingleCalled    func(typeString string, arg any) ([]byte, error)
	EncodeArgumentsCalled func(typeStrings []string, args []any) ([]byte, error)
	IsEncodableCalled     func(typeString string, arg any) (bool, error)
	DecodeSingleCalled    func(typeString string, input any) (any, error)
	DecodeArgumentsCalled func(typeStrings []string, data []byte) ([]any, error)
	CanonicalTypeCalled   func(typeString string) (string, error)
}

// EncodeSingle -
func (stub *FacadeStub) EncodeSingle(typeString string, arg any) ([]byte, error) {
	if stub.EncodeSingleCalled != nil {
		return stub.EncodeSingleCalled(typeString, arg)
	}

	return make([]byte, 0), nil
}

// EncodeArguments -
func (stub *FacadeStub) EncodeArguments(typeStrings []string, args []any) ([]byte, error) {
	if stub.EncodeArgumentsCalled != nil {
		return stub.EncodeArgumentsCalled(typeStrings, args)
	}

	return make([]byte, 0), nil
}

// IsEncodable -
func (stub *FacadeStub) IsEncodable(typeString string, arg any) (bool, error) {
	if stub.IsEncodableCalled != nil {
		return stub.IsEncodableCalled(typeString, arg)
	}

	return false, nil
}

// DecodeSingle -
func (stub *FacadeStub) DecodeSingle(typeString string, input any) (any, error) {
	if stub.DecodeSingleCalled != nil {
		return stub.DecodeSingleCalled(typeString, input)
	}

	return nil, nil
}

// DecodeArguments -
func (stub *FacadeStub) DecodeArguments(typeStrings []string, data []byte) ([]any, error) {
	if stub.DecodeArgumentsCalled != nil {
		return stub.DecodeArgumentsCalled(typeStrings, data)
	}

	return make([]any, 0), nil
}

// CanonicalType -
func (stub *FacadeStub) CanonicalType(typeString string) (string, error) {
	if stub.CanonicalTypeCalled != nil {
		return stub.CanonicalTypeCalled(typeString)
	}

	return typeString, nil
}

// IsInterfaceNil -
func (stub *FacadeStub) IsInterfaceNil() bool {
	return stub == nil
}
