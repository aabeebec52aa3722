// Package domain defines domain-level errors for the labelanalysis feature.
package domain

import "errors"

// Analysis errors. Every failure of the label-analysis pipeline wraps exactly
// one of these sentinels, so upper layers can map them to HTTP statuses with
// errors.Is without depending on upstream SDK error types.
var (
	// ErrInvalidImage indicates the upload could not be decoded as a raster image.
	// User-correctable: re-upload a JPEG, PNG or WebP file.
	ErrInvalidImage = errors.New("invalid image format (supported: JPEG, PNG, WebP)")

	// ErrNotConfigured indicates the vision API credential is missing.
	// A deployment problem, not something the user can fix.
	ErrNotConfigured = errors.New("vision API key not configured")

	// ErrEmptyResponse indicates the model returned no content at all.
	ErrEmptyResponse = errors.New("empty response from AI service")

	// ErrUnparsableResponse indicates the model returned content that is not
	// valid JSON even after stripping code fences. The user may retry.
	ErrUnparsableResponse = errors.New("could not parse AI response")

	// ErrUpstreamThrottled indicates the upstream service rejected the call
	// with a rate limit. No retry is performed here; wait and try again.
	ErrUpstreamThrottled = errors.New("AI service rate limit exceeded, try again later")

	// ErrUpstreamUnavailable indicates a connectivity failure reaching the
	// upstream service. Transient.
	ErrUpstreamUnavailable = errors.New("AI service temporarily unavailable")

	// ErrUpstreamError indicates the upstream service reported a processing
	// error. The original message is kept in the wrap for diagnostics.
	ErrUpstreamError = errors.New("AI service error")

	// ErrInference is the catch-all for anything unanticipated during the
	// inference step, so callers never see a raw SDK error type.
	ErrInference = errors.New("unexpected error during label analysis")
)

// analysisErrors is the closed set used by IsAnalysisError.
var analysisErrors = []error{
	ErrInvalidImage,
	ErrNotConfigured,
	ErrEmptyResponse,
	ErrUnparsableResponse,
	ErrUpstreamThrottled,
	ErrUpstreamUnavailable,
	ErrUpstreamError,
	ErrInference,
}

// IsAnalysisError reports whether err is (or wraps) one of the named
// label-analysis error kinds.
func IsAnalysisError(err error) bool {
	for _, sentinel := range analysisErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
