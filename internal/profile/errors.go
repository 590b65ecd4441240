package profile

import "errors"

// Sentinel errors for profile validation and loading.

// ErrMissingRequiredFields indicates the profile lacks interests and/or skills.
// Returned wrapped inside a *ValidationError that names the missing fields.
var ErrMissingRequiredFields = errors.New("Missing required fields")

// ErrProfileRead indicates the profile file could not be read.
var ErrProfileRead = errors.New("failed to read profile file")

// ErrProfileParse indicates the profile file contents could not be decoded.
var ErrProfileParse = errors.New("failed to parse profile file")
