package translate

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// ImportTerminologyRequest creates or overwrites a custom terminology.
type ImportTerminologyRequest struct {
	Name            *string                `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
	MergeStrategy   types.MergeStrategy    `json:"MergeStrategy,omitempty" validate:"required,enum"`
	Description     *string                `json:"Description,omitempty" validate:"omitempty,max=256"`
	TerminologyData *types.TerminologyData `json:"TerminologyData,omitempty" validate:"required"`
	EncryptionKey   *types.EncryptionKey   `json:"EncryptionKey,omitempty"`
	Tags            []types.Tag            `json:"Tags,omitempty" validate:"omitempty,max=200,dive"`
}

func (r *ImportTerminologyRequest) WithName(v string) *ImportTerminologyRequest {
	r.Name = aws.String(v)
	return r
}

func (r *ImportTerminologyRequest) WithMergeStrategy(v types.MergeStrategy) *ImportTerminologyRequest {
	r.MergeStrategy = v
	return r
}

func (r *ImportTerminologyRequest) WithDescription(v string) *ImportTerminologyRequest {
	r.Description = aws.String(v)
	return r
}

func (r *ImportTerminologyRequest) WithTerminologyData(v *types.TerminologyData) *ImportTerminologyRequest {
	r.TerminologyData = v
	return r
}

func (r *ImportTerminologyRequest) WithEncryptionKey(v *types.EncryptionKey) *ImportTerminologyRequest {
	r.EncryptionKey = v
	return r
}

// WithTags appends v to Tags.
func (r *ImportTerminologyRequest) WithTags(v ...types.Tag) *ImportTerminologyRequest {
	r.Tags = value.Append(r.Tags, v...)
	return r
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (r *ImportTerminologyRequest) SetTags(v []types.Tag) *ImportTerminologyRequest {
	r.Tags = value.CopySlice(v)
	return r
}

func (r *ImportTerminologyRequest) Equal(other *ImportTerminologyRequest) bool { return value.Equal(r, other) }

func (r *ImportTerminologyRequest) Hash() uint64 { return value.Hash(r) }

func (r *ImportTerminologyRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ImportTerminologyRequest) Validate() error { return validate(r) }

func (r *ImportTerminologyRequest) OperationName() string { return "ImportTerminology" }

type ImportTerminologyResult struct {
	TerminologyProperties *types.TerminologyProperties `json:"TerminologyProperties,omitempty"`

	// AuxiliaryDataLocation links to a file describing terms that were skipped
	// during import.
	AuxiliaryDataLocation *types.TerminologyDataLocation `json:"AuxiliaryDataLocation,omitempty"`
}

func (r *ImportTerminologyResult) WithTerminologyProperties(v *types.TerminologyProperties) *ImportTerminologyResult {
	r.TerminologyProperties = v
	return r
}

func (r *ImportTerminologyResult) WithAuxiliaryDataLocation(v *types.TerminologyDataLocation) *ImportTerminologyResult {
	r.AuxiliaryDataLocation = v
	return r
}

func (r *ImportTerminologyResult) Equal(other *ImportTerminologyResult) bool { return value.Equal(r, other) }

func (r *ImportTerminologyResult) Hash() uint64 { return value.Hash(r) }

func (r *ImportTerminologyResult) String() string { return value.String(r) }

// GetTerminologyRequest retrieves a custom terminology and a link to download
// its data.
type GetTerminologyRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`

	// TerminologyDataFormat selects the download format. When unset the format of
	// the original import is used.
	TerminologyDataFormat types.TerminologyDataFormat `json:"TerminologyDataFormat,omitempty" validate:"omitempty,enum"`
}

func (r *GetTerminologyRequest) WithName(v string) *GetTerminologyRequest {
	r.Name = aws.String(v)
	return r
}

func (r *GetTerminologyRequest) WithTerminologyDataFormat(v types.TerminologyDataFormat) *GetTerminologyRequest {
	r.TerminologyDataFormat = v
	return r
}

func (r *GetTerminologyRequest) Equal(other *GetTerminologyRequest) bool { return value.Equal(r, other) }

func (r *GetTerminologyRequest) Hash() uint64 { return value.Hash(r) }

func (r *GetTerminologyRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *GetTerminologyRequest) Validate() error { return validate(r) }

func (r *GetTerminologyRequest) OperationName() string { return "GetTerminology" }

type GetTerminologyResult struct {
	TerminologyProperties   *types.TerminologyProperties   `json:"TerminologyProperties,omitempty"`
	TerminologyDataLocation *types.TerminologyDataLocation `json:"TerminologyDataLocation,omitempty"`
	AuxiliaryDataLocation   *types.TerminologyDataLocation `json:"AuxiliaryDataLocation,omitempty"`
}

func (r *GetTerminologyResult) WithTerminologyProperties(v *types.TerminologyProperties) *GetTerminologyResult {
	r.TerminologyProperties = v
	return r
}

func (r *GetTerminologyResult) WithTerminologyDataLocation(v *types.TerminologyDataLocation) *GetTerminologyResult {
	r.TerminologyDataLocation = v
	return r
}

func (r *GetTerminologyResult) WithAuxiliaryDataLocation(v *types.TerminologyDataLocation) *GetTerminologyResult {
	r.AuxiliaryDataLocation = v
	return r
}

func (r *GetTerminologyResult) Equal(other *GetTerminologyResult) bool { return value.Equal(r, other) }

func (r *GetTerminologyResult) Hash() uint64 { return value.Hash(r) }

func (r *GetTerminologyResult) String() string { return value.String(r) }

// ListTerminologiesRequest pages through the custom terminologies of the account.
type ListTerminologiesRequest struct {
	NextToken  *string `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=500"`
}

func (r *ListTerminologiesRequest) WithNextToken(v string) *ListTerminologiesRequest {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListTerminologiesRequest) WithMaxResults(v int32) *ListTerminologiesRequest {
	r.MaxResults = aws.Int32(v)
	return r
}

func (r *ListTerminologiesRequest) Equal(other *ListTerminologiesRequest) bool { return value.Equal(r, other) }

func (r *ListTerminologiesRequest) Hash() uint64 { return value.Hash(r) }

func (r *ListTerminologiesRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ListTerminologiesRequest) Validate() error { return validate(r) }

func (r *ListTerminologiesRequest) OperationName() string { return "ListTerminologies" }

type ListTerminologiesResult struct {
	TerminologyPropertiesList []types.TerminologyProperties `json:"TerminologyPropertiesList,omitempty"`
	NextToken                 *string                       `json:"NextToken,omitempty"`
}

// WithTerminologyPropertiesList appends v to TerminologyPropertiesList.
func (r *ListTerminologiesResult) WithTerminologyPropertiesList(v ...types.TerminologyProperties) *ListTerminologiesResult {
	r.TerminologyPropertiesList = value.Append(r.TerminologyPropertiesList, v...)
	return r
}

// SetTerminologyPropertiesList replaces TerminologyPropertiesList with a copy of v. A nil v clears the field.
func (r *ListTerminologiesResult) SetTerminologyPropertiesList(v []types.TerminologyProperties) *ListTerminologiesResult {
	r.TerminologyPropertiesList = value.CopySlice(v)
	return r
}

func (r *ListTerminologiesResult) WithNextToken(v string) *ListTerminologiesResult {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListTerminologiesResult) Equal(other *ListTerminologiesResult) bool { return value.Equal(r, other) }

func (r *ListTerminologiesResult) Hash() uint64 { return value.Hash(r) }

func (r *ListTerminologiesResult) String() string { return value.String(r) }

// DeleteTerminologyRequest deletes a custom terminology.
type DeleteTerminologyRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
}

func (r *DeleteTerminologyRequest) WithName(v string) *DeleteTerminologyRequest {
	r.Name = aws.String(v)
	return r
}

func (r *DeleteTerminologyRequest) Equal(other *DeleteTerminologyRequest) bool { return value.Equal(r, other) }

func (r *DeleteTerminologyRequest) Hash() uint64 { return value.Hash(r) }

func (r *DeleteTerminologyRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *DeleteTerminologyRequest) Validate() error { return validate(r) }

func (r *DeleteTerminologyRequest) OperationName() string { return "DeleteTerminology" }

type DeleteTerminologyResult struct{}

func (r *DeleteTerminologyResult) Equal(other *DeleteTerminologyResult) bool { return value.Equal(r, other) }

func (r *DeleteTerminologyResult) Hash() uint64 { return value.Hash(r) }

func (r *DeleteTerminologyResult) String() string { return value.String(r) }
