package translate

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// CreateParallelDataRequest creates a parallel data resource from a file in
// S3.
type CreateParallelDataRequest struct {
	Name               *string                   `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
	Description        *string                   `json:"Description,omitempty" validate:"omitempty,max=256"`
	ParallelDataConfig *types.ParallelDataConfig `json:"ParallelDataConfig,omitempty" validate:"required"`
	EncryptionKey      *types.EncryptionKey      `json:"EncryptionKey,omitempty"`
	ClientToken        *string                   `json:"ClientToken,omitempty" validate:"omitempty,min=1,max=64,clienttoken"`
	Tags               []types.Tag               `json:"Tags,omitempty" validate:"omitempty,max=200,dive"`
}

func (r *CreateParallelDataRequest) WithName(v string) *CreateParallelDataRequest {
	r.Name = aws.String(v)
	return r
}

func (r *CreateParallelDataRequest) WithDescription(v string) *CreateParallelDataRequest {
	r.Description = aws.String(v)
	return r
}

func (r *CreateParallelDataRequest) WithParallelDataConfig(v *types.ParallelDataConfig) *CreateParallelDataRequest {
	r.ParallelDataConfig = v
	return r
}

func (r *CreateParallelDataRequest) WithEncryptionKey(v *types.EncryptionKey) *CreateParallelDataRequest {
	r.EncryptionKey = v
	return r
}

func (r *CreateParallelDataRequest) WithClientToken(v string) *CreateParallelDataRequest {
	r.ClientToken = aws.String(v)
	return r
}

// WithTags appends v to Tags.
func (r *CreateParallelDataRequest) WithTags(v ...types.Tag) *CreateParallelDataRequest {
	r.Tags = value.Append(r.Tags, v...)
	return r
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (r *CreateParallelDataRequest) SetTags(v []types.Tag) *CreateParallelDataRequest {
	r.Tags = value.CopySlice(v)
	return r
}

func (r *CreateParallelDataRequest) Equal(other *CreateParallelDataRequest) bool { return value.Equal(r, other) }

func (r *CreateParallelDataRequest) Hash() uint64 { return value.Hash(r) }

func (r *CreateParallelDataRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *CreateParallelDataRequest) Validate() error { return validate(r) }

func (r *CreateParallelDataRequest) OperationName() string { return "CreateParallelData" }

// WithGeneratedClientToken sets ClientToken to a random UUID unless one is
// already present, so retries of the same request stay idempotent.
func (r *CreateParallelDataRequest) WithGeneratedClientToken() *CreateParallelDataRequest {
	r.ClientToken = ensureClientToken(r.ClientToken)
	return r
}

type CreateParallelDataResult struct {
	Name   *string                  `json:"Name,omitempty"`
	Status types.ParallelDataStatus `json:"Status,omitempty"`
}

func (r *CreateParallelDataResult) WithName(v string) *CreateParallelDataResult {
	r.Name = aws.String(v)
	return r
}

func (r *CreateParallelDataResult) WithStatus(v types.ParallelDataStatus) *CreateParallelDataResult {
	r.Status = v
	return r
}

func (r *CreateParallelDataResult) Equal(other *CreateParallelDataResult) bool { return value.Equal(r, other) }

func (r *CreateParallelDataResult) Hash() uint64 { return value.Hash(r) }

func (r *CreateParallelDataResult) String() string { return value.String(r) }

// UpdateParallelDataRequest replaces the input file of an existing parallel
// data resource.
type UpdateParallelDataRequest struct {
	Name               *string                   `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
	Description        *string                   `json:"Description,omitempty" validate:"omitempty,max=256"`
	ParallelDataConfig *types.ParallelDataConfig `json:"ParallelDataConfig,omitempty" validate:"required"`
	ClientToken        *string                   `json:"ClientToken,omitempty" validate:"omitempty,min=1,max=64,clienttoken"`
}

func (r *UpdateParallelDataRequest) WithName(v string) *UpdateParallelDataRequest {
	r.Name = aws.String(v)
	return r
}

func (r *UpdateParallelDataRequest) WithDescription(v string) *UpdateParallelDataRequest {
	r.Description = aws.String(v)
	return r
}

func (r *UpdateParallelDataRequest) WithParallelDataConfig(v *types.ParallelDataConfig) *UpdateParallelDataRequest {
	r.ParallelDataConfig = v
	return r
}

func (r *UpdateParallelDataRequest) WithClientToken(v string) *UpdateParallelDataRequest {
	r.ClientToken = aws.String(v)
	return r
}

func (r *UpdateParallelDataRequest) Equal(other *UpdateParallelDataRequest) bool { return value.Equal(r, other) }

func (r *UpdateParallelDataRequest) Hash() uint64 { return value.Hash(r) }

func (r *UpdateParallelDataRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *UpdateParallelDataRequest) Validate() error { return validate(r) }

func (r *UpdateParallelDataRequest) OperationName() string { return "UpdateParallelData" }

// WithGeneratedClientToken sets ClientToken to a random UUID unless one is
// already present, so retries of the same request stay idempotent.
func (r *UpdateParallelDataRequest) WithGeneratedClientToken() *UpdateParallelDataRequest {
	r.ClientToken = ensureClientToken(r.ClientToken)
	return r
}

type UpdateParallelDataResult struct {
	Name                      *string                  `json:"Name,omitempty"`
	Status                    types.ParallelDataStatus `json:"Status,omitempty"`
	LatestUpdateAttemptStatus types.ParallelDataStatus `json:"LatestUpdateAttemptStatus,omitempty"`
	LatestUpdateAttemptAt     *time.Time               `json:"LatestUpdateAttemptAt,omitempty"`
}

func (r *UpdateParallelDataResult) WithName(v string) *UpdateParallelDataResult {
	r.Name = aws.String(v)
	return r
}

func (r *UpdateParallelDataResult) WithStatus(v types.ParallelDataStatus) *UpdateParallelDataResult {
	r.Status = v
	return r
}

func (r *UpdateParallelDataResult) WithLatestUpdateAttemptStatus(v types.ParallelDataStatus) *UpdateParallelDataResult {
	r.LatestUpdateAttemptStatus = v
	return r
}

func (r *UpdateParallelDataResult) WithLatestUpdateAttemptAt(v time.Time) *UpdateParallelDataResult {
	r.LatestUpdateAttemptAt = aws.Time(v)
	return r
}

func (r *UpdateParallelDataResult) Equal(other *UpdateParallelDataResult) bool { return value.Equal(r, other) }

func (r *UpdateParallelDataResult) Hash() uint64 { return value.Hash(r) }

func (r *UpdateParallelDataResult) String() string { return value.String(r) }

// GetParallelDataRequest fetches a parallel data resource by name.
type GetParallelDataRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
}

func (r *GetParallelDataRequest) WithName(v string) *GetParallelDataRequest {
	r.Name = aws.String(v)
	return r
}

func (r *GetParallelDataRequest) Equal(other *GetParallelDataRequest) bool { return value.Equal(r, other) }

func (r *GetParallelDataRequest) Hash() uint64 { return value.Hash(r) }

func (r *GetParallelDataRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *GetParallelDataRequest) Validate() error { return validate(r) }

func (r *GetParallelDataRequest) OperationName() string { return "GetParallelData" }

// GetParallelDataResult carries presigned links to the input file and, when
// records were skipped, to a file describing them.
type GetParallelDataResult struct {
	ParallelDataProperties                   *types.ParallelDataProperties   `json:"ParallelDataProperties,omitempty"`
	DataLocation                             *types.ParallelDataDataLocation `json:"DataLocation,omitempty"`
	AuxiliaryDataLocation                    *types.ParallelDataDataLocation `json:"AuxiliaryDataLocation,omitempty"`
	LatestUpdateAttemptAuxiliaryDataLocation *types.ParallelDataDataLocation `json:"LatestUpdateAttemptAuxiliaryDataLocation,omitempty"`
}

func (r *GetParallelDataResult) WithParallelDataProperties(v *types.ParallelDataProperties) *GetParallelDataResult {
	r.ParallelDataProperties = v
	return r
}

func (r *GetParallelDataResult) WithDataLocation(v *types.ParallelDataDataLocation) *GetParallelDataResult {
	r.DataLocation = v
	return r
}

func (r *GetParallelDataResult) WithAuxiliaryDataLocation(v *types.ParallelDataDataLocation) *GetParallelDataResult {
	r.AuxiliaryDataLocation = v
	return r
}

func (r *GetParallelDataResult) WithLatestUpdateAttemptAuxiliaryDataLocation(v *types.ParallelDataDataLocation) *GetParallelDataResult {
	r.LatestUpdateAttemptAuxiliaryDataLocation = v
	return r
}

func (r *GetParallelDataResult) Equal(other *GetParallelDataResult) bool { return value.Equal(r, other) }

func (r *GetParallelDataResult) Hash() uint64 { return value.Hash(r) }

func (r *GetParallelDataResult) String() string { return value.String(r) }

// ListParallelDataRequest pages through the parallel data resources of the
// account.
type ListParallelDataRequest struct {
	NextToken  *string `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults *int32  `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=500"`
}

func (r *ListParallelDataRequest) WithNextToken(v string) *ListParallelDataRequest {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListParallelDataRequest) WithMaxResults(v int32) *ListParallelDataRequest {
	r.MaxResults = aws.Int32(v)
	return r
}

func (r *ListParallelDataRequest) Equal(other *ListParallelDataRequest) bool { return value.Equal(r, other) }

func (r *ListParallelDataRequest) Hash() uint64 { return value.Hash(r) }

func (r *ListParallelDataRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ListParallelDataRequest) Validate() error { return validate(r) }

func (r *ListParallelDataRequest) OperationName() string { return "ListParallelData" }

type ListParallelDataResult struct {
	ParallelDataPropertiesList []types.ParallelDataProperties `json:"ParallelDataPropertiesList,omitempty"`
	NextToken                  *string                        `json:"NextToken,omitempty"`
}

// WithParallelDataPropertiesList appends v to ParallelDataPropertiesList.
func (r *ListParallelDataResult) WithParallelDataPropertiesList(v ...types.ParallelDataProperties) *ListParallelDataResult {
	r.ParallelDataPropertiesList = value.Append(r.ParallelDataPropertiesList, v...)
	return r
}

// SetParallelDataPropertiesList replaces ParallelDataPropertiesList with a copy of v. A nil v clears the field.
func (r *ListParallelDataResult) SetParallelDataPropertiesList(v []types.ParallelDataProperties) *ListParallelDataResult {
	r.ParallelDataPropertiesList = value.CopySlice(v)
	return r
}

func (r *ListParallelDataResult) WithNextToken(v string) *ListParallelDataResult {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListParallelDataResult) Equal(other *ListParallelDataResult) bool { return value.Equal(r, other) }

func (r *ListParallelDataResult) Hash() uint64 { return value.Hash(r) }

func (r *ListParallelDataResult) String() string { return value.String(r) }

// DeleteParallelDataRequest deletes a parallel data resource. Deletion is
// asynchronous; the result reports DELETING.
type DeleteParallelDataRequest struct {
	Name *string `json:"Name,omitempty" validate:"required,min=1,max=256,resourcename"`
}

func (r *DeleteParallelDataRequest) WithName(v string) *DeleteParallelDataRequest {
	r.Name = aws.String(v)
	return r
}

func (r *DeleteParallelDataRequest) Equal(other *DeleteParallelDataRequest) bool { return value.Equal(r, other) }

func (r *DeleteParallelDataRequest) Hash() uint64 { return value.Hash(r) }

func (r *DeleteParallelDataRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *DeleteParallelDataRequest) Validate() error { return validate(r) }

func (r *DeleteParallelDataRequest) OperationName() string { return "DeleteParallelData" }

type DeleteParallelDataResult struct {
	Name   *string                  `json:"Name,omitempty"`
	Status types.ParallelDataStatus `json:"Status,omitempty"`
}

func (r *DeleteParallelDataResult) WithName(v string) *DeleteParallelDataResult {
	r.Name = aws.String(v)
	return r
}

func (r *DeleteParallelDataResult) WithStatus(v types.ParallelDataStatus) *DeleteParallelDataResult {
	r.Status = v
	return r
}

func (r *DeleteParallelDataResult) Equal(other *DeleteParallelDataResult) bool { return value.Equal(r, other) }

func (r *DeleteParallelDataResult) Hash() uint64 { return value.Hash(r) }

func (r *DeleteParallelDataResult) String() string { return value.String(r) }
