package apiclient

import "errors"

// Sentinel errors for API client operations.

// ErrServerURLMissing indicates the nichefinder server URL is not configured.
var ErrServerURLMissing = errors.New("nichefinder server URL is not configured")

// ErrServerURLParse indicates an error occurred while parsing the server URL.
var ErrServerURLParse = errors.New("failed to parse nichefinder server URL")

// ErrRequestMarshal indicates an error occurred while marshaling the request body.
var ErrRequestMarshal = errors.New("failed to marshal request body")

// ErrRequestCreate indicates an error occurred while creating the HTTP request.
var ErrRequestCreate = errors.New("failed to create HTTP request")

// ErrRequestExecute indicates an error occurred while executing the HTTP request.
var ErrRequestExecute = errors.New("failed to execute HTTP request")

// ErrResponseDecode indicates an error occurred while decoding the response body.
var ErrResponseDecode = errors.New("failed to decode response body")

// ErrServerError indicates the server returned a non-2xx status code with a specific error message.
// The actual error message from the server is included in the wrapping error.
var ErrServerError = errors.New("nichefinder server returned an error")

// ErrServerErrorUnparseable indicates the server returned a non-2xx status code,
// but the error response body could not be parsed or was empty.
var ErrServerErrorUnparseable = errors.New("nichefinder server returned an unparseable error")
