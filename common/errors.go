package common

const (
	_ ErrorCode = iota
	InvalidRatStringErrorCode
	JSONUnmarshalErrorCode
	InvalidHashHintErrorCode
	EmptyHashErrorCode
	InvalidVersionErrorCode
)

var (
	InvalidRatStringError Error = NewError("common", InvalidRatStringErrorCode, "invalid rational string")
	JSONUnmarshalError    Error = NewError("common", JSONUnmarshalErrorCode, "failed json unmarshal")
	InvalidHashHintError  Error = NewError("common", InvalidHashHintErrorCode, "invalid hash hint")
	EmptyHashError        Error = NewError("common", EmptyHashErrorCode, "hash is empty")
	InvalidVersionError   Error = NewError("common", InvalidVersionErrorCode, "invalid version")
)
