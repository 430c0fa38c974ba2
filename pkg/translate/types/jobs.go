package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
)

// InputDataConfig locates the documents a batch job translates.
type InputDataConfig struct {
	S3Uri *string `json:"S3Uri,omitempty" validate:"required,max=1024,s3uri"`

	// ContentType is the MIME type shared by every input document, such as
	// text/html or text/plain.
	ContentType *string `json:"ContentType,omitempty" validate:"required,max=256,contenttype"`
}

func (c *InputDataConfig) WithS3Uri(v string) *InputDataConfig {
	c.S3Uri = aws.String(v)
	return c
}

func (c *InputDataConfig) WithContentType(v string) *InputDataConfig {
	c.ContentType = aws.String(v)
	return c
}

func (c *InputDataConfig) Equal(other *InputDataConfig) bool { return value.Equal(c, other) }

func (c *InputDataConfig) Hash() uint64 { return value.Hash(c) }

func (c *InputDataConfig) String() string { return value.String(c) }

// Validate checks the declared field constraints.
func (c *InputDataConfig) Validate() error { return validate(c) }

// OutputDataConfig locates where a batch job writes its results.
type OutputDataConfig struct {
	S3Uri         *string        `json:"S3Uri,omitempty" validate:"required,max=1024,s3uri"`
	EncryptionKey *EncryptionKey `json:"EncryptionKey,omitempty"`
}

func (c *OutputDataConfig) WithS3Uri(v string) *OutputDataConfig {
	c.S3Uri = aws.String(v)
	return c
}

func (c *OutputDataConfig) WithEncryptionKey(v *EncryptionKey) *OutputDataConfig {
	c.EncryptionKey = v
	return c
}

func (c *OutputDataConfig) Equal(other *OutputDataConfig) bool { return value.Equal(c, other) }

func (c *OutputDataConfig) Hash() uint64 { return value.Hash(c) }

func (c *OutputDataConfig) String() string { return value.String(c) }

// Validate checks the declared field constraints.
func (c *OutputDataConfig) Validate() error { return validate(c) }

// JobDetails counts the documents processed by a batch job.
type JobDetails struct {
	TranslatedDocumentsCount *int32 `json:"TranslatedDocumentsCount,omitempty"`
	DocumentsWithErrorsCount *int32 `json:"DocumentsWithErrorsCount,omitempty"`
	InputDocumentsCount      *int32 `json:"InputDocumentsCount,omitempty"`
}

func (d *JobDetails) WithTranslatedDocumentsCount(v int32) *JobDetails {
	d.TranslatedDocumentsCount = aws.Int32(v)
	return d
}

func (d *JobDetails) WithDocumentsWithErrorsCount(v int32) *JobDetails {
	d.DocumentsWithErrorsCount = aws.Int32(v)
	return d
}

func (d *JobDetails) WithInputDocumentsCount(v int32) *JobDetails {
	d.InputDocumentsCount = aws.Int32(v)
	return d
}

func (d *JobDetails) Equal(other *JobDetails) bool { return value.Equal(d, other) }

func (d *JobDetails) Hash() uint64 { return value.Hash(d) }

func (d *JobDetails) String() string { return value.String(d) }

// TextTranslationJobFilter narrows the jobs returned by a list request. Only
// one criterion is honoured per request.
type TextTranslationJobFilter struct {
	JobName             *string    `json:"JobName,omitempty" validate:"omitempty,min=1,max=256,jobname"`
	JobStatus           JobStatus  `json:"JobStatus,omitempty" validate:"omitempty,enum"`
	SubmittedBeforeTime *time.Time `json:"SubmittedBeforeTime,omitempty"`
	SubmittedAfterTime  *time.Time `json:"SubmittedAfterTime,omitempty"`
}

func (f *TextTranslationJobFilter) WithJobName(v string) *TextTranslationJobFilter {
	f.JobName = aws.String(v)
	return f
}

func (f *TextTranslationJobFilter) WithJobStatus(v JobStatus) *TextTranslationJobFilter {
	f.JobStatus = v
	return f
}

func (f *TextTranslationJobFilter) WithSubmittedBeforeTime(v time.Time) *TextTranslationJobFilter {
	f.SubmittedBeforeTime = aws.Time(v)
	return f
}

func (f *TextTranslationJobFilter) WithSubmittedAfterTime(v time.Time) *TextTranslationJobFilter {
	f.SubmittedAfterTime = aws.Time(v)
	return f
}

func (f *TextTranslationJobFilter) Equal(other *TextTranslationJobFilter) bool { return value.Equal(f, other) }

func (f *TextTranslationJobFilter) Hash() uint64 { return value.Hash(f) }

func (f *TextTranslationJobFilter) String() string { return value.String(f) }

// Validate checks the declared field constraints.
func (f *TextTranslationJobFilter) Validate() error { return validate(f) }

// TextTranslationJobProperties describes a batch translation job.
type TextTranslationJobProperties struct {
	JobId               *string              `json:"JobId,omitempty"`
	JobName             *string              `json:"JobName,omitempty"`
	JobStatus           JobStatus            `json:"JobStatus,omitempty"`
	JobDetails          *JobDetails          `json:"JobDetails,omitempty"`
	SourceLanguageCode  *string              `json:"SourceLanguageCode,omitempty"`
	TargetLanguageCodes []string             `json:"TargetLanguageCodes,omitempty"`
	TerminologyNames    []string             `json:"TerminologyNames,omitempty"`
	ParallelDataNames   []string             `json:"ParallelDataNames,omitempty"`
	Message             *string              `json:"Message,omitempty"`
	SubmittedTime       *time.Time           `json:"SubmittedTime,omitempty"`
	EndTime             *time.Time           `json:"EndTime,omitempty"`
	InputDataConfig     *InputDataConfig     `json:"InputDataConfig,omitempty"`
	OutputDataConfig    *OutputDataConfig    `json:"OutputDataConfig,omitempty"`
	DataAccessRoleArn   *string              `json:"DataAccessRoleArn,omitempty"`
	Settings            *TranslationSettings `json:"Settings,omitempty"`
}

func (p *TextTranslationJobProperties) WithJobId(v string) *TextTranslationJobProperties {
	p.JobId = aws.String(v)
	return p
}

func (p *TextTranslationJobProperties) WithJobName(v string) *TextTranslationJobProperties {
	p.JobName = aws.String(v)
	return p
}

func (p *TextTranslationJobProperties) WithJobStatus(v JobStatus) *TextTranslationJobProperties {
	p.JobStatus = v
	return p
}

func (p *TextTranslationJobProperties) WithJobDetails(v *JobDetails) *TextTranslationJobProperties {
	p.JobDetails = v
	return p
}

func (p *TextTranslationJobProperties) WithSourceLanguageCode(v string) *TextTranslationJobProperties {
	p.SourceLanguageCode = aws.String(v)
	return p
}

// WithTargetLanguageCodes appends v to TargetLanguageCodes.
func (p *TextTranslationJobProperties) WithTargetLanguageCodes(v ...string) *TextTranslationJobProperties {
	p.TargetLanguageCodes = value.Append(p.TargetLanguageCodes, v...)
	return p
}

// SetTargetLanguageCodes replaces TargetLanguageCodes with a copy of v. A nil v clears the field.
func (p *TextTranslationJobProperties) SetTargetLanguageCodes(v []string) *TextTranslationJobProperties {
	p.TargetLanguageCodes = value.CopySlice(v)
	return p
}

// WithTerminologyNames appends v to TerminologyNames.
func (p *TextTranslationJobProperties) WithTerminologyNames(v ...string) *TextTranslationJobProperties {
	p.TerminologyNames = value.Append(p.TerminologyNames, v...)
	return p
}

// SetTerminologyNames replaces TerminologyNames with a copy of v. A nil v clears the field.
func (p *TextTranslationJobProperties) SetTerminologyNames(v []string) *TextTranslationJobProperties {
	p.TerminologyNames = value.CopySlice(v)
	return p
}

// WithParallelDataNames appends v to ParallelDataNames.
func (p *TextTranslationJobProperties) WithParallelDataNames(v ...string) *TextTranslationJobProperties {
	p.ParallelDataNames = value.Append(p.ParallelDataNames, v...)
	return p
}

// SetParallelDataNames replaces ParallelDataNames with a copy of v. A nil v clears the field.
func (p *TextTranslationJobProperties) SetParallelDataNames(v []string) *TextTranslationJobProperties {
	p.ParallelDataNames = value.CopySlice(v)
	return p
}

func (p *TextTranslationJobProperties) WithMessage(v string) *TextTranslationJobProperties {
	p.Message = aws.String(v)
	return p
}

func (p *TextTranslationJobProperties) WithSubmittedTime(v time.Time) *TextTranslationJobProperties {
	p.SubmittedTime = aws.Time(v)
	return p
}

func (p *TextTranslationJobProperties) WithEndTime(v time.Time) *TextTranslationJobProperties {
	p.EndTime = aws.Time(v)
	return p
}

func (p *TextTranslationJobProperties) WithInputDataConfig(v *InputDataConfig) *TextTranslationJobProperties {
	p.InputDataConfig = v
	return p
}

func (p *TextTranslationJobProperties) WithOutputDataConfig(v *OutputDataConfig) *TextTranslationJobProperties {
	p.OutputDataConfig = v
	return p
}

func (p *TextTranslationJobProperties) WithDataAccessRoleArn(v string) *TextTranslationJobProperties {
	p.DataAccessRoleArn = aws.String(v)
	return p
}

func (p *TextTranslationJobProperties) WithSettings(v *TranslationSettings) *TextTranslationJobProperties {
	p.Settings = v
	return p
}

func (p *TextTranslationJobProperties) Equal(other *TextTranslationJobProperties) bool { return value.Equal(p, other) }

func (p *TextTranslationJobProperties) Hash() uint64 { return value.Hash(p) }

func (p *TextTranslationJobProperties) String() string { return value.String(p) }
