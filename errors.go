package jsonschema

import "errors"

// === Reference & Loader Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")

	// ErrRefHandlerMissing is returned when a $ref targets a URI outside the
	// document and no ref handler has been registered.
	ErrRefHandlerMissing = errors.New("no ref handler registered for out-of-document reference")

	// ErrRefNotFound is returned when a $ref cannot be resolved to a schema.
	ErrRefNotFound = errors.New("reference could not be resolved")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Schema Compilation Related Errors ===
var (
	// ErrSchemaCompilation is returned when a schema compilation fails.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrSchemaIsNil is returned when a nil schema is passed where one is required.
	ErrSchemaIsNil = errors.New("schema is nil")

	// ErrInvalidSchemaType is returned when the JSON schema document is not an
	// object or boolean at the top level.
	ErrInvalidSchemaType = errors.New("invalid schema type")
)

// === Format Related Errors ===
var (
	// ErrFormatAlreadyRegistered is returned when RegisterFormat collides with
	// an existing entry and replace was not requested.
	ErrFormatAlreadyRegistered = errors.New("format already registered")

	// ErrIPv6AddressNotEnclosed is returned when a URI's host is an IPv6
	// literal that is missing its enclosing "[" "]" pair.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address is not enclosed in brackets")

	// ErrInvalidIPv6Address is returned when a URI's bracketed host does not
	// parse as a valid IPv6 address.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)
