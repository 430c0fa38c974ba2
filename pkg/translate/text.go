package translate

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// TranslateTextRequest translates a single piece of text in real time.
type TranslateTextRequest struct {
	// Text is limited to 10,000 bytes of UTF-8.
	Text             *string  `json:"Text,omitempty" validate:"required,min=1,max=10000"`
	TerminologyNames []string `json:"TerminologyNames,omitempty" validate:"omitempty,dive,min=1,max=256,resourcename"`

	// SourceLanguageCode may be "auto" to let the service detect the language.
	SourceLanguageCode *string                    `json:"SourceLanguageCode,omitempty" validate:"required,min=2,max=5"`
	TargetLanguageCode *string                    `json:"TargetLanguageCode,omitempty" validate:"required,min=2,max=5"`
	Settings           *types.TranslationSettings `json:"Settings,omitempty"`
}

func (r *TranslateTextRequest) WithText(v string) *TranslateTextRequest {
	r.Text = aws.String(v)
	return r
}

// WithTerminologyNames appends v to TerminologyNames.
func (r *TranslateTextRequest) WithTerminologyNames(v ...string) *TranslateTextRequest {
	r.TerminologyNames = value.Append(r.TerminologyNames, v...)
	return r
}

// SetTerminologyNames replaces TerminologyNames with a copy of v. A nil v clears the field.
func (r *TranslateTextRequest) SetTerminologyNames(v []string) *TranslateTextRequest {
	r.TerminologyNames = value.CopySlice(v)
	return r
}

func (r *TranslateTextRequest) WithSourceLanguageCode(v string) *TranslateTextRequest {
	r.SourceLanguageCode = aws.String(v)
	return r
}

func (r *TranslateTextRequest) WithTargetLanguageCode(v string) *TranslateTextRequest {
	r.TargetLanguageCode = aws.String(v)
	return r
}

func (r *TranslateTextRequest) WithSettings(v *types.TranslationSettings) *TranslateTextRequest {
	r.Settings = v
	return r
}

func (r *TranslateTextRequest) Equal(other *TranslateTextRequest) bool { return value.Equal(r, other) }

func (r *TranslateTextRequest) Hash() uint64 { return value.Hash(r) }

func (r *TranslateTextRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *TranslateTextRequest) Validate() error { return validate(r) }

func (r *TranslateTextRequest) OperationName() string { return "TranslateText" }

// TranslateTextResult carries the translated text and what was applied to
// produce it.
type TranslateTextResult struct {
	TranslatedText       *string                    `json:"TranslatedText,omitempty"`
	SourceLanguageCode   *string                    `json:"SourceLanguageCode,omitempty"`
	TargetLanguageCode   *string                    `json:"TargetLanguageCode,omitempty"`
	AppliedTerminologies []types.AppliedTerminology `json:"AppliedTerminologies,omitempty"`
	AppliedSettings      *types.TranslationSettings `json:"AppliedSettings,omitempty"`
}

func (r *TranslateTextResult) WithTranslatedText(v string) *TranslateTextResult {
	r.TranslatedText = aws.String(v)
	return r
}

func (r *TranslateTextResult) WithSourceLanguageCode(v string) *TranslateTextResult {
	r.SourceLanguageCode = aws.String(v)
	return r
}

func (r *TranslateTextResult) WithTargetLanguageCode(v string) *TranslateTextResult {
	r.TargetLanguageCode = aws.String(v)
	return r
}

// WithAppliedTerminologies appends v to AppliedTerminologies.
func (r *TranslateTextResult) WithAppliedTerminologies(v ...types.AppliedTerminology) *TranslateTextResult {
	r.AppliedTerminologies = value.Append(r.AppliedTerminologies, v...)
	return r
}

// SetAppliedTerminologies replaces AppliedTerminologies with a copy of v. A nil v clears the field.
func (r *TranslateTextResult) SetAppliedTerminologies(v []types.AppliedTerminology) *TranslateTextResult {
	r.AppliedTerminologies = value.CopySlice(v)
	return r
}

func (r *TranslateTextResult) WithAppliedSettings(v *types.TranslationSettings) *TranslateTextResult {
	r.AppliedSettings = v
	return r
}

func (r *TranslateTextResult) Equal(other *TranslateTextResult) bool { return value.Equal(r, other) }

func (r *TranslateTextResult) Hash() uint64 { return value.Hash(r) }

func (r *TranslateTextResult) String() string { return value.String(r) }

// ListLanguagesRequest lists the languages the service supports, with names
// rendered in DisplayLanguageCode.
type ListLanguagesRequest struct {
	DisplayLanguageCode types.DisplayLanguageCode `json:"DisplayLanguageCode,omitempty" validate:"omitempty,enum"`
	NextToken           *string                   `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults          *int32                    `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=500"`
}

func (r *ListLanguagesRequest) WithDisplayLanguageCode(v types.DisplayLanguageCode) *ListLanguagesRequest {
	r.DisplayLanguageCode = v
	return r
}

func (r *ListLanguagesRequest) WithNextToken(v string) *ListLanguagesRequest {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListLanguagesRequest) WithMaxResults(v int32) *ListLanguagesRequest {
	r.MaxResults = aws.Int32(v)
	return r
}

func (r *ListLanguagesRequest) Equal(other *ListLanguagesRequest) bool { return value.Equal(r, other) }

func (r *ListLanguagesRequest) Hash() uint64 { return value.Hash(r) }

func (r *ListLanguagesRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ListLanguagesRequest) Validate() error { return validate(r) }

func (r *ListLanguagesRequest) OperationName() string { return "ListLanguages" }

type ListLanguagesResult struct {
	Languages           []types.Language          `json:"Languages,omitempty"`
	DisplayLanguageCode types.DisplayLanguageCode `json:"DisplayLanguageCode,omitempty"`

	// NextToken is set when more languages remain; pass it back to fetch the next
	// page.
	NextToken *string `json:"NextToken,omitempty"`
}

// WithLanguages appends v to Languages.
func (r *ListLanguagesResult) WithLanguages(v ...types.Language) *ListLanguagesResult {
	r.Languages = value.Append(r.Languages, v...)
	return r
}

// SetLanguages replaces Languages with a copy of v. A nil v clears the field.
func (r *ListLanguagesResult) SetLanguages(v []types.Language) *ListLanguagesResult {
	r.Languages = value.CopySlice(v)
	return r
}

func (r *ListLanguagesResult) WithDisplayLanguageCode(v types.DisplayLanguageCode) *ListLanguagesResult {
	r.DisplayLanguageCode = v
	return r
}

func (r *ListLanguagesResult) WithNextToken(v string) *ListLanguagesResult {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListLanguagesResult) Equal(other *ListLanguagesResult) bool { return value.Equal(r, other) }

func (r *ListLanguagesResult) Hash() uint64 { return value.Hash(r) }

func (r *ListLanguagesResult) String() string { return value.String(r) }
