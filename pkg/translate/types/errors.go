package types

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"

	"github.com/pricofy/translate-model/internal/value"
)

// ErrInvalidArgument is wrapped by every local failure: an unknown enum token
// or a constraint that Validate rejects.
var ErrInvalidArgument = errors.New("invalid argument")

func errorString(code, message string) string {
	return fmt.Sprintf("%s: %s", code, message)
}

// NewAPIError returns the typed error for a service error code, carrying
// message. Unknown codes produce a *smithy.GenericAPIError so callers can
// still inspect the code.
func NewAPIError(code, message string) error {
	switch code {
	case "ConcurrentModificationException":
		return NewConcurrentModificationException(message)
	case "ConflictException":
		return NewConflictException(message)
	case "DetectedLanguageLowConfidenceException":
		return NewDetectedLanguageLowConfidenceException(message)
	case "InternalServerException":
		return NewInternalServerException(message)
	case "InvalidFilterException":
		return NewInvalidFilterException(message)
	case "InvalidParameterValueException":
		return NewInvalidParameterValueException(message)
	case "InvalidRequestException":
		return NewInvalidRequestException(message)
	case "LimitExceededException":
		return NewLimitExceededException(message)
	case "ResourceNotFoundException":
		return NewResourceNotFoundException(message)
	case "ServiceUnavailableException":
		return NewServiceUnavailableException(message)
	case "TextSizeLimitExceededException":
		return NewTextSizeLimitExceededException(message)
	case "TooManyRequestsException":
		return NewTooManyRequestsException(message)
	case "TooManyTagsException":
		return NewTooManyTagsException(message)
	case "UnsupportedDisplayLanguageCodeException":
		return NewUnsupportedDisplayLanguageCodeException(message)
	case "UnsupportedLanguagePairException":
		return NewUnsupportedLanguagePairException(message)
	default:
		return &smithy.GenericAPIError{Code: code, Message: message, Fault: smithy.FaultUnknown}
	}
}

// ConcurrentModificationException is returned when another modification of the
// resource is in progress. That modification must complete before the new
// request can be processed.
type ConcurrentModificationException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewConcurrentModificationException returns the error with the given message.
func NewConcurrentModificationException(message string) *ConcurrentModificationException {
	return &ConcurrentModificationException{Message: aws.String(message)}
}

func (e *ConcurrentModificationException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *ConcurrentModificationException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ConcurrentModificationException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "ConcurrentModificationException"
	}
	return *e.ErrorCodeOverride
}

func (e *ConcurrentModificationException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *ConcurrentModificationException) Equal(other *ConcurrentModificationException) bool { return value.Equal(e, other) }

func (e *ConcurrentModificationException) Hash() uint64 { return value.Hash(e) }

// ConflictException is returned when a conflicting operation is in progress on
// the resource.
type ConflictException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewConflictException returns the error with the given message.
func NewConflictException(message string) *ConflictException {
	return &ConflictException{Message: aws.String(message)}
}

func (e *ConflictException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *ConflictException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ConflictException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "ConflictException"
	}
	return *e.ErrorCodeOverride
}

func (e *ConflictException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *ConflictException) Equal(other *ConflictException) bool { return value.Equal(e, other) }

func (e *ConflictException) Hash() uint64 { return value.Hash(e) }

// DetectedLanguageLowConfidenceException is returned when the service could
// not detect the source language with enough confidence. DetectedLanguageCode
// holds its best guess; retry with that code set explicitly as the source
// language.
type DetectedLanguageLowConfidenceException struct {
	Message *string

	ErrorCodeOverride *string

	DetectedLanguageCode *string
}

// NewDetectedLanguageLowConfidenceException returns the error with the given message.
func NewDetectedLanguageLowConfidenceException(message string) *DetectedLanguageLowConfidenceException {
	return &DetectedLanguageLowConfidenceException{Message: aws.String(message)}
}

func (e *DetectedLanguageLowConfidenceException) WithDetectedLanguageCode(v string) *DetectedLanguageLowConfidenceException {
	e.DetectedLanguageCode = aws.String(v)
	return e
}

func (e *DetectedLanguageLowConfidenceException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *DetectedLanguageLowConfidenceException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *DetectedLanguageLowConfidenceException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "DetectedLanguageLowConfidenceException"
	}
	return *e.ErrorCodeOverride
}

func (e *DetectedLanguageLowConfidenceException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *DetectedLanguageLowConfidenceException) Equal(other *DetectedLanguageLowConfidenceException) bool { return value.Equal(e, other) }

func (e *DetectedLanguageLowConfidenceException) Hash() uint64 { return value.Hash(e) }

// InternalServerException is returned when the service hit an internal error.
type InternalServerException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewInternalServerException returns the error with the given message.
func NewInternalServerException(message string) *InternalServerException {
	return &InternalServerException{Message: aws.String(message)}
}

func (e *InternalServerException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *InternalServerException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InternalServerException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "InternalServerException"
	}
	return *e.ErrorCodeOverride
}

func (e *InternalServerException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

func (e *InternalServerException) Equal(other *InternalServerException) bool { return value.Equal(e, other) }

func (e *InternalServerException) Hash() uint64 { return value.Hash(e) }

// InvalidFilterException is returned when the filter of a list request is not
// valid.
type InvalidFilterException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewInvalidFilterException returns the error with the given message.
func NewInvalidFilterException(message string) *InvalidFilterException {
	return &InvalidFilterException{Message: aws.String(message)}
}

func (e *InvalidFilterException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidFilterException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidFilterException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "InvalidFilterException"
	}
	return *e.ErrorCodeOverride
}

func (e *InvalidFilterException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *InvalidFilterException) Equal(other *InvalidFilterException) bool { return value.Equal(e, other) }

func (e *InvalidFilterException) Hash() uint64 { return value.Hash(e) }

// InvalidParameterValueException is returned when a parameter value in the
// request is not valid.
type InvalidParameterValueException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewInvalidParameterValueException returns the error with the given message.
func NewInvalidParameterValueException(message string) *InvalidParameterValueException {
	return &InvalidParameterValueException{Message: aws.String(message)}
}

func (e *InvalidParameterValueException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidParameterValueException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidParameterValueException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "InvalidParameterValueException"
	}
	return *e.ErrorCodeOverride
}

func (e *InvalidParameterValueException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *InvalidParameterValueException) Equal(other *InvalidParameterValueException) bool { return value.Equal(e, other) }

func (e *InvalidParameterValueException) Hash() uint64 { return value.Hash(e) }

// InvalidRequestException is returned when the request as a whole is not
// valid.
type InvalidRequestException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewInvalidRequestException returns the error with the given message.
func NewInvalidRequestException(message string) *InvalidRequestException {
	return &InvalidRequestException{Message: aws.String(message)}
}

func (e *InvalidRequestException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidRequestException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidRequestException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "InvalidRequestException"
	}
	return *e.ErrorCodeOverride
}

func (e *InvalidRequestException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *InvalidRequestException) Equal(other *InvalidRequestException) bool { return value.Equal(e, other) }

func (e *InvalidRequestException) Hash() uint64 { return value.Hash(e) }

// LimitExceededException is returned when a service limit, such as the number
// of concurrent jobs or stored resources, would be exceeded.
type LimitExceededException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewLimitExceededException returns the error with the given message.
func NewLimitExceededException(message string) *LimitExceededException {
	return &LimitExceededException{Message: aws.String(message)}
}

func (e *LimitExceededException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *LimitExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *LimitExceededException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "LimitExceededException"
	}
	return *e.ErrorCodeOverride
}

func (e *LimitExceededException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *LimitExceededException) Equal(other *LimitExceededException) bool { return value.Equal(e, other) }

func (e *LimitExceededException) Hash() uint64 { return value.Hash(e) }

// ResourceNotFoundException is returned when the named resource does not exist
// or is not available.
type ResourceNotFoundException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewResourceNotFoundException returns the error with the given message.
func NewResourceNotFoundException(message string) *ResourceNotFoundException {
	return &ResourceNotFoundException{Message: aws.String(message)}
}

func (e *ResourceNotFoundException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceNotFoundException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ResourceNotFoundException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "ResourceNotFoundException"
	}
	return *e.ErrorCodeOverride
}

func (e *ResourceNotFoundException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *ResourceNotFoundException) Equal(other *ResourceNotFoundException) bool { return value.Equal(e, other) }

func (e *ResourceNotFoundException) Hash() uint64 { return value.Hash(e) }

// ServiceUnavailableException is returned when the service is temporarily
// unavailable.
type ServiceUnavailableException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewServiceUnavailableException returns the error with the given message.
func NewServiceUnavailableException(message string) *ServiceUnavailableException {
	return &ServiceUnavailableException{Message: aws.String(message)}
}

func (e *ServiceUnavailableException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *ServiceUnavailableException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ServiceUnavailableException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "ServiceUnavailableException"
	}
	return *e.ErrorCodeOverride
}

func (e *ServiceUnavailableException) ErrorFault() smithy.ErrorFault { return smithy.FaultServer }

func (e *ServiceUnavailableException) Equal(other *ServiceUnavailableException) bool { return value.Equal(e, other) }

func (e *ServiceUnavailableException) Hash() uint64 { return value.Hash(e) }

// TextSizeLimitExceededException is returned when the text to translate is
// above the size limit. Send the text in smaller pieces.
type TextSizeLimitExceededException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewTextSizeLimitExceededException returns the error with the given message.
func NewTextSizeLimitExceededException(message string) *TextSizeLimitExceededException {
	return &TextSizeLimitExceededException{Message: aws.String(message)}
}

func (e *TextSizeLimitExceededException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *TextSizeLimitExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *TextSizeLimitExceededException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "TextSizeLimitExceededException"
	}
	return *e.ErrorCodeOverride
}

func (e *TextSizeLimitExceededException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *TextSizeLimitExceededException) Equal(other *TextSizeLimitExceededException) bool { return value.Equal(e, other) }

func (e *TextSizeLimitExceededException) Hash() uint64 { return value.Hash(e) }

// TooManyRequestsException is returned when too many requests arrive in a
// short period of time.
type TooManyRequestsException struct {
	Message *string

	ErrorCodeOverride *string
}

// NewTooManyRequestsException returns the error with the given message.
func NewTooManyRequestsException(message string) *TooManyRequestsException {
	return &TooManyRequestsException{Message: aws.String(message)}
}

func (e *TooManyRequestsException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *TooManyRequestsException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *TooManyRequestsException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "TooManyRequestsException"
	}
	return *e.ErrorCodeOverride
}

func (e *TooManyRequestsException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *TooManyRequestsException) Equal(other *TooManyRequestsException) bool { return value.Equal(e, other) }

func (e *TooManyRequestsException) Hash() uint64 { return value.Hash(e) }

// TooManyTagsException is returned when the resource identified by ResourceArn
// would carry more tags than allowed.
type TooManyTagsException struct {
	Message *string

	ErrorCodeOverride *string

	ResourceArn *string
}

// NewTooManyTagsException returns the error with the given message.
func NewTooManyTagsException(message string) *TooManyTagsException {
	return &TooManyTagsException{Message: aws.String(message)}
}

func (e *TooManyTagsException) WithResourceArn(v string) *TooManyTagsException {
	e.ResourceArn = aws.String(v)
	return e
}

func (e *TooManyTagsException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *TooManyTagsException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *TooManyTagsException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "TooManyTagsException"
	}
	return *e.ErrorCodeOverride
}

func (e *TooManyTagsException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *TooManyTagsException) Equal(other *TooManyTagsException) bool { return value.Equal(e, other) }

func (e *TooManyTagsException) Hash() uint64 { return value.Hash(e) }

// UnsupportedDisplayLanguageCodeException is returned when the language
// requested for display names is not supported. DisplayLanguageCode holds the
// rejected code.
type UnsupportedDisplayLanguageCodeException struct {
	Message *string

	ErrorCodeOverride *string

	DisplayLanguageCode *string
}

// NewUnsupportedDisplayLanguageCodeException returns the error with the given message.
func NewUnsupportedDisplayLanguageCodeException(message string) *UnsupportedDisplayLanguageCodeException {
	return &UnsupportedDisplayLanguageCodeException{Message: aws.String(message)}
}

func (e *UnsupportedDisplayLanguageCodeException) WithDisplayLanguageCode(v string) *UnsupportedDisplayLanguageCodeException {
	e.DisplayLanguageCode = aws.String(v)
	return e
}

func (e *UnsupportedDisplayLanguageCodeException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *UnsupportedDisplayLanguageCodeException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *UnsupportedDisplayLanguageCodeException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "UnsupportedDisplayLanguageCodeException"
	}
	return *e.ErrorCodeOverride
}

func (e *UnsupportedDisplayLanguageCodeException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *UnsupportedDisplayLanguageCodeException) Equal(other *UnsupportedDisplayLanguageCodeException) bool { return value.Equal(e, other) }

func (e *UnsupportedDisplayLanguageCodeException) Hash() uint64 { return value.Hash(e) }

// UnsupportedLanguagePairException is returned when the source/target language
// pair is not supported.
type UnsupportedLanguagePairException struct {
	Message *string

	ErrorCodeOverride *string

	SourceLanguageCode *string
	TargetLanguageCode *string
}

// NewUnsupportedLanguagePairException returns the error with the given message.
func NewUnsupportedLanguagePairException(message string) *UnsupportedLanguagePairException {
	return &UnsupportedLanguagePairException{Message: aws.String(message)}
}

func (e *UnsupportedLanguagePairException) WithSourceLanguageCode(v string) *UnsupportedLanguagePairException {
	e.SourceLanguageCode = aws.String(v)
	return e
}

func (e *UnsupportedLanguagePairException) WithTargetLanguageCode(v string) *UnsupportedLanguagePairException {
	e.TargetLanguageCode = aws.String(v)
	return e
}

func (e *UnsupportedLanguagePairException) Error() string {
	return errorString(e.ErrorCode(), e.ErrorMessage())
}

func (e *UnsupportedLanguagePairException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *UnsupportedLanguagePairException) ErrorCode() string {
	if e == nil || e.ErrorCodeOverride == nil {
		return "UnsupportedLanguagePairException"
	}
	return *e.ErrorCodeOverride
}

func (e *UnsupportedLanguagePairException) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

func (e *UnsupportedLanguagePairException) Equal(other *UnsupportedLanguagePairException) bool { return value.Equal(e, other) }

func (e *UnsupportedLanguagePairException) Hash() uint64 { return value.Hash(e) }
