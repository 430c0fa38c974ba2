package translate

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// StartTextTranslationJobRequest submits an asynchronous batch translation job
// over documents in S3.
type StartTextTranslationJobRequest struct {
	JobName             *string                    `json:"JobName,omitempty" validate:"omitempty,min=1,max=256,jobname"`
	InputDataConfig     *types.InputDataConfig     `json:"InputDataConfig,omitempty" validate:"required"`
	OutputDataConfig    *types.OutputDataConfig    `json:"OutputDataConfig,omitempty" validate:"required"`
	DataAccessRoleArn   *string                    `json:"DataAccessRoleArn,omitempty" validate:"required,min=20,max=2048,iamrolearn"`
	SourceLanguageCode  *string                    `json:"SourceLanguageCode,omitempty" validate:"required,min=2,max=5"`
	TargetLanguageCodes []string                   `json:"TargetLanguageCodes,omitempty" validate:"required,min=1,max=10,dive,min=2,max=5"`
	TerminologyNames    []string                   `json:"TerminologyNames,omitempty" validate:"omitempty,dive,min=1,max=256,resourcename"`
	ParallelDataNames   []string                   `json:"ParallelDataNames,omitempty" validate:"omitempty,dive,min=1,max=256,resourcename"`
	ClientToken         *string                    `json:"ClientToken,omitempty" validate:"omitempty,min=1,max=64,clienttoken"`
	Settings            *types.TranslationSettings `json:"Settings,omitempty"`
}

func (r *StartTextTranslationJobRequest) WithJobName(v string) *StartTextTranslationJobRequest {
	r.JobName = aws.String(v)
	return r
}

func (r *StartTextTranslationJobRequest) WithInputDataConfig(v *types.InputDataConfig) *StartTextTranslationJobRequest {
	r.InputDataConfig = v
	return r
}

func (r *StartTextTranslationJobRequest) WithOutputDataConfig(v *types.OutputDataConfig) *StartTextTranslationJobRequest {
	r.OutputDataConfig = v
	return r
}

func (r *StartTextTranslationJobRequest) WithDataAccessRoleArn(v string) *StartTextTranslationJobRequest {
	r.DataAccessRoleArn = aws.String(v)
	return r
}

func (r *StartTextTranslationJobRequest) WithSourceLanguageCode(v string) *StartTextTranslationJobRequest {
	r.SourceLanguageCode = aws.String(v)
	return r
}

// WithTargetLanguageCodes appends v to TargetLanguageCodes.
func (r *StartTextTranslationJobRequest) WithTargetLanguageCodes(v ...string) *StartTextTranslationJobRequest {
	r.TargetLanguageCodes = value.Append(r.TargetLanguageCodes, v...)
	return r
}

// SetTargetLanguageCodes replaces TargetLanguageCodes with a copy of v. A nil v clears the field.
func (r *StartTextTranslationJobRequest) SetTargetLanguageCodes(v []string) *StartTextTranslationJobRequest {
	r.TargetLanguageCodes = value.CopySlice(v)
	return r
}

// WithTerminologyNames appends v to TerminologyNames.
func (r *StartTextTranslationJobRequest) WithTerminologyNames(v ...string) *StartTextTranslationJobRequest {
	r.TerminologyNames = value.Append(r.TerminologyNames, v...)
	return r
}

// SetTerminologyNames replaces TerminologyNames with a copy of v. A nil v clears the field.
func (r *StartTextTranslationJobRequest) SetTerminologyNames(v []string) *StartTextTranslationJobRequest {
	r.TerminologyNames = value.CopySlice(v)
	return r
}

// WithParallelDataNames appends v to ParallelDataNames.
func (r *StartTextTranslationJobRequest) WithParallelDataNames(v ...string) *StartTextTranslationJobRequest {
	r.ParallelDataNames = value.Append(r.ParallelDataNames, v...)
	return r
}

// SetParallelDataNames replaces ParallelDataNames with a copy of v. A nil v clears the field.
func (r *StartTextTranslationJobRequest) SetParallelDataNames(v []string) *StartTextTranslationJobRequest {
	r.ParallelDataNames = value.CopySlice(v)
	return r
}

func (r *StartTextTranslationJobRequest) WithClientToken(v string) *StartTextTranslationJobRequest {
	r.ClientToken = aws.String(v)
	return r
}

func (r *StartTextTranslationJobRequest) WithSettings(v *types.TranslationSettings) *StartTextTranslationJobRequest {
	r.Settings = v
	return r
}

func (r *StartTextTranslationJobRequest) Equal(other *StartTextTranslationJobRequest) bool { return value.Equal(r, other) }

func (r *StartTextTranslationJobRequest) Hash() uint64 { return value.Hash(r) }

func (r *StartTextTranslationJobRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *StartTextTranslationJobRequest) Validate() error { return validate(r) }

func (r *StartTextTranslationJobRequest) OperationName() string { return "StartTextTranslationJob" }

// WithGeneratedClientToken sets ClientToken to a random UUID unless one is
// already present, so retries of the same request stay idempotent.
func (r *StartTextTranslationJobRequest) WithGeneratedClientToken() *StartTextTranslationJobRequest {
	r.ClientToken = ensureClientToken(r.ClientToken)
	return r
}

type StartTextTranslationJobResult struct {
	JobId     *string         `json:"JobId,omitempty"`
	JobStatus types.JobStatus `json:"JobStatus,omitempty"`
}

func (r *StartTextTranslationJobResult) WithJobId(v string) *StartTextTranslationJobResult {
	r.JobId = aws.String(v)
	return r
}

func (r *StartTextTranslationJobResult) WithJobStatus(v types.JobStatus) *StartTextTranslationJobResult {
	r.JobStatus = v
	return r
}

func (r *StartTextTranslationJobResult) Equal(other *StartTextTranslationJobResult) bool { return value.Equal(r, other) }

func (r *StartTextTranslationJobResult) Hash() uint64 { return value.Hash(r) }

func (r *StartTextTranslationJobResult) String() string { return value.String(r) }

// DescribeTextTranslationJobRequest fetches the properties of one batch job,
// including its current JobStatus.
type DescribeTextTranslationJobRequest struct {
	JobId *string `json:"JobId,omitempty" validate:"required,min=1,max=32,jobid"`
}

func (r *DescribeTextTranslationJobRequest) WithJobId(v string) *DescribeTextTranslationJobRequest {
	r.JobId = aws.String(v)
	return r
}

func (r *DescribeTextTranslationJobRequest) Equal(other *DescribeTextTranslationJobRequest) bool { return value.Equal(r, other) }

func (r *DescribeTextTranslationJobRequest) Hash() uint64 { return value.Hash(r) }

func (r *DescribeTextTranslationJobRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *DescribeTextTranslationJobRequest) Validate() error { return validate(r) }

func (r *DescribeTextTranslationJobRequest) OperationName() string { return "DescribeTextTranslationJob" }

type DescribeTextTranslationJobResult struct {
	TextTranslationJobProperties *types.TextTranslationJobProperties `json:"TextTranslationJobProperties,omitempty"`
}

func (r *DescribeTextTranslationJobResult) WithTextTranslationJobProperties(v *types.TextTranslationJobProperties) *DescribeTextTranslationJobResult {
	r.TextTranslationJobProperties = v
	return r
}

func (r *DescribeTextTranslationJobResult) Equal(other *DescribeTextTranslationJobResult) bool { return value.Equal(r, other) }

func (r *DescribeTextTranslationJobResult) Hash() uint64 { return value.Hash(r) }

func (r *DescribeTextTranslationJobResult) String() string { return value.String(r) }

// ListTextTranslationJobsRequest lists batch jobs, newest first.
type ListTextTranslationJobsRequest struct {
	Filter     *types.TextTranslationJobFilter `json:"Filter,omitempty"`
	NextToken  *string                         `json:"NextToken,omitempty" validate:"omitempty,max=8192"`
	MaxResults *int32                          `json:"MaxResults,omitempty" validate:"omitempty,min=1,max=500"`
}

func (r *ListTextTranslationJobsRequest) WithFilter(v *types.TextTranslationJobFilter) *ListTextTranslationJobsRequest {
	r.Filter = v
	return r
}

func (r *ListTextTranslationJobsRequest) WithNextToken(v string) *ListTextTranslationJobsRequest {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListTextTranslationJobsRequest) WithMaxResults(v int32) *ListTextTranslationJobsRequest {
	r.MaxResults = aws.Int32(v)
	return r
}

func (r *ListTextTranslationJobsRequest) Equal(other *ListTextTranslationJobsRequest) bool { return value.Equal(r, other) }

func (r *ListTextTranslationJobsRequest) Hash() uint64 { return value.Hash(r) }

func (r *ListTextTranslationJobsRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ListTextTranslationJobsRequest) Validate() error { return validate(r) }

func (r *ListTextTranslationJobsRequest) OperationName() string { return "ListTextTranslationJobs" }

// ListTextTranslationJobsResult holds one page of jobs. NextToken is nil on the
// last page.
type ListTextTranslationJobsResult struct {
	TextTranslationJobPropertiesList []types.TextTranslationJobProperties `json:"TextTranslationJobPropertiesList,omitempty"`
	NextToken                        *string                              `json:"NextToken,omitempty"`
}

// WithTextTranslationJobPropertiesList appends v to TextTranslationJobPropertiesList.
func (r *ListTextTranslationJobsResult) WithTextTranslationJobPropertiesList(v ...types.TextTranslationJobProperties) *ListTextTranslationJobsResult {
	r.TextTranslationJobPropertiesList = value.Append(r.TextTranslationJobPropertiesList, v...)
	return r
}

// SetTextTranslationJobPropertiesList replaces TextTranslationJobPropertiesList with a copy of v. A nil v clears the field.
func (r *ListTextTranslationJobsResult) SetTextTranslationJobPropertiesList(v []types.TextTranslationJobProperties) *ListTextTranslationJobsResult {
	r.TextTranslationJobPropertiesList = value.CopySlice(v)
	return r
}

func (r *ListTextTranslationJobsResult) WithNextToken(v string) *ListTextTranslationJobsResult {
	r.NextToken = aws.String(v)
	return r
}

func (r *ListTextTranslationJobsResult) Equal(other *ListTextTranslationJobsResult) bool { return value.Equal(r, other) }

func (r *ListTextTranslationJobsResult) Hash() uint64 { return value.Hash(r) }

func (r *ListTextTranslationJobsResult) String() string { return value.String(r) }

// StopTextTranslationJobRequest asks the service to stop a running job. The
// job moves to STOP_REQUESTED and later to STOPPED; documents already
// translated are kept.
type StopTextTranslationJobRequest struct {
	JobId *string `json:"JobId,omitempty" validate:"required,min=1,max=32,jobid"`
}

func (r *StopTextTranslationJobRequest) WithJobId(v string) *StopTextTranslationJobRequest {
	r.JobId = aws.String(v)
	return r
}

func (r *StopTextTranslationJobRequest) Equal(other *StopTextTranslationJobRequest) bool { return value.Equal(r, other) }

func (r *StopTextTranslationJobRequest) Hash() uint64 { return value.Hash(r) }

func (r *StopTextTranslationJobRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *StopTextTranslationJobRequest) Validate() error { return validate(r) }

func (r *StopTextTranslationJobRequest) OperationName() string { return "StopTextTranslationJob" }

type StopTextTranslationJobResult struct {
	JobId     *string         `json:"JobId,omitempty"`
	JobStatus types.JobStatus `json:"JobStatus,omitempty"`
}

func (r *StopTextTranslationJobResult) WithJobId(v string) *StopTextTranslationJobResult {
	r.JobId = aws.String(v)
	return r
}

func (r *StopTextTranslationJobResult) WithJobStatus(v types.JobStatus) *StopTextTranslationJobResult {
	r.JobStatus = v
	return r
}

func (r *StopTextTranslationJobResult) Equal(other *StopTextTranslationJobResult) bool { return value.Equal(r, other) }

func (r *StopTextTranslationJobResult) Hash() uint64 { return value.Hash(r) }

func (r *StopTextTranslationJobResult) String() string { return value.String(r) }
