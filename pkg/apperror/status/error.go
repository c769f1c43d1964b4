package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   0-999:     client/validation errors
//   1000-1999: Adapt internal
//   2000-2999: Speech internal
//   3000-3999: Parse internal

// Client/validation errors start at 0
const (
	AdaptInvalidRequestBody ErrorCode = iota // 0
	AdaptMissingDocument                     // 1
	AdaptDocumentTooLarge                    // 2
	AdaptUnsupportedMediaType                // 3
	SpeechMissingText                        // 4
	SpeechInvalidVoice                       // 5
	SpeechEmptyAfterCleaning                 // 6
	ParseMissingFile                         // 7
)

// Adapt internal errors start at 1000
const (
	AdaptInternal        ErrorCode = 1000 + iota // 1000
	AdaptUpstreamFailed                          // 1001
	AdaptMalformedOutput                         // 1002
)

// Speech internal errors start at 2000
const (
	SpeechInternal        ErrorCode = 2000 + iota // 2000
	SpeechSynthesisFailed                         // 2001
)

// Parse internal errors start at 3000
const (
	ParseInternal      ErrorCode = 3000 + iota // 3000
	ParseExtractFailed                         // 3001
)

// ErrorCodeInternal is the catch-all for failures outside the ranges above.
const ErrorCodeInternal ErrorCode = 9000
