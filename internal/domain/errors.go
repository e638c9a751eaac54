package domain

import "fmt"

// ConfigurationError reports configuration the bridge cannot proceed
// without, e.g. no instance URL was provided and none could be recovered
// from an identity token.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// UnknownOperationError reports an operation tag outside the catalog.
type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Operation)
}

// MalformedTokenError reports an identity token whose payload could not be
// decoded. It is recovered where it occurs (the resolver logs it and falls
// through to the next URL source) and only ever reaches a caller wrapped in
// a log record, never as a returned error.
type MalformedTokenError struct {
	Stage string // "segments", "base64" or "json"
	Err   error
}

func (e *MalformedTokenError) Error() string {
	return fmt.Sprintf("malformed identity token (%s): %v", e.Stage, e.Err)
}

func (e *MalformedTokenError) Unwrap() error { return e.Err }

// InvalidJSONError reports a parameter that must carry a JSON document but
// does not parse, e.g. reportMetadata.
type InvalidJSONError struct {
	Field string
	Err   error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("field %q is not valid JSON: %v", e.Field, e.Err)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// RemoteAPIError reports a non-2xx response from Salesforce. Message is
// extracted from the response body: the first element's message for an
// array body, the message field for an object body, otherwise a fixed
// fallback.
type RemoteAPIError struct {
	StatusCode int
	Message    string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("salesforce api error (status %d): %s", e.StatusCode, e.Message)
}
