package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
)

// ParallelDataConfig locates the input file of a parallel data resource.
type ParallelDataConfig struct {
	S3Uri  *string            `json:"S3Uri,omitempty" validate:"required,max=1024,s3uri"`
	Format ParallelDataFormat `json:"Format,omitempty" validate:"required,enum"`
}

func (c *ParallelDataConfig) WithS3Uri(v string) *ParallelDataConfig {
	c.S3Uri = aws.String(v)
	return c
}

func (c *ParallelDataConfig) WithFormat(v ParallelDataFormat) *ParallelDataConfig {
	c.Format = v
	return c
}

func (c *ParallelDataConfig) Equal(other *ParallelDataConfig) bool { return value.Equal(c, other) }

func (c *ParallelDataConfig) Hash() uint64 { return value.Hash(c) }

func (c *ParallelDataConfig) String() string { return value.String(c) }

// Validate checks the declared field constraints.
func (c *ParallelDataConfig) Validate() error { return validate(c) }

// ParallelDataDataLocation points at a downloadable copy of a parallel data
// input file.
type ParallelDataDataLocation struct {
	RepositoryType *string `json:"RepositoryType,omitempty"`
	Location       *string `json:"Location,omitempty"`
}

func (l *ParallelDataDataLocation) WithRepositoryType(v string) *ParallelDataDataLocation {
	l.RepositoryType = aws.String(v)
	return l
}

func (l *ParallelDataDataLocation) WithLocation(v string) *ParallelDataDataLocation {
	l.Location = aws.String(v)
	return l
}

func (l *ParallelDataDataLocation) Equal(other *ParallelDataDataLocation) bool { return value.Equal(l, other) }

func (l *ParallelDataDataLocation) Hash() uint64 { return value.Hash(l) }

func (l *ParallelDataDataLocation) String() string { return value.String(l) }

// ParallelDataProperties describes a stored parallel data resource.
type ParallelDataProperties struct {
	Name                *string             `json:"Name,omitempty"`
	Arn                 *string             `json:"Arn,omitempty"`
	Description         *string             `json:"Description,omitempty"`
	Status              ParallelDataStatus  `json:"Status,omitempty"`
	SourceLanguageCode  *string             `json:"SourceLanguageCode,omitempty"`
	TargetLanguageCodes []string            `json:"TargetLanguageCodes,omitempty"`
	ParallelDataConfig  *ParallelDataConfig `json:"ParallelDataConfig,omitempty"`
	Message             *string             `json:"Message,omitempty"`
	ImportedDataSize    *int64              `json:"ImportedDataSize,omitempty"`
	ImportedRecordCount *int64              `json:"ImportedRecordCount,omitempty"`
	FailedRecordCount   *int64              `json:"FailedRecordCount,omitempty"`
	SkippedRecordCount  *int64              `json:"SkippedRecordCount,omitempty"`
	EncryptionKey       *EncryptionKey      `json:"EncryptionKey,omitempty"`
	CreatedAt           *time.Time          `json:"CreatedAt,omitempty"`
	LastUpdatedAt       *time.Time          `json:"LastUpdatedAt,omitempty"`

	// LatestUpdateAttemptStatus and LatestUpdateAttemptAt describe the most
	// recent update, which may still be running while Status stays ACTIVE.
	LatestUpdateAttemptStatus ParallelDataStatus `json:"LatestUpdateAttemptStatus,omitempty"`
	LatestUpdateAttemptAt     *time.Time         `json:"LatestUpdateAttemptAt,omitempty"`
}

func (p *ParallelDataProperties) WithName(v string) *ParallelDataProperties {
	p.Name = aws.String(v)
	return p
}

func (p *ParallelDataProperties) WithArn(v string) *ParallelDataProperties {
	p.Arn = aws.String(v)
	return p
}

func (p *ParallelDataProperties) WithDescription(v string) *ParallelDataProperties {
	p.Description = aws.String(v)
	return p
}

func (p *ParallelDataProperties) WithStatus(v ParallelDataStatus) *ParallelDataProperties {
	p.Status = v
	return p
}

func (p *ParallelDataProperties) WithSourceLanguageCode(v string) *ParallelDataProperties {
	p.SourceLanguageCode = aws.String(v)
	return p
}

// WithTargetLanguageCodes appends v to TargetLanguageCodes.
func (p *ParallelDataProperties) WithTargetLanguageCodes(v ...string) *ParallelDataProperties {
	p.TargetLanguageCodes = value.Append(p.TargetLanguageCodes, v...)
	return p
}

// SetTargetLanguageCodes replaces TargetLanguageCodes with a copy of v. A nil v clears the field.
func (p *ParallelDataProperties) SetTargetLanguageCodes(v []string) *ParallelDataProperties {
	p.TargetLanguageCodes = value.CopySlice(v)
	return p
}

func (p *ParallelDataProperties) WithParallelDataConfig(v *ParallelDataConfig) *ParallelDataProperties {
	p.ParallelDataConfig = v
	return p
}

func (p *ParallelDataProperties) WithMessage(v string) *ParallelDataProperties {
	p.Message = aws.String(v)
	return p
}

func (p *ParallelDataProperties) WithImportedDataSize(v int64) *ParallelDataProperties {
	p.ImportedDataSize = aws.Int64(v)
	return p
}

func (p *ParallelDataProperties) WithImportedRecordCount(v int64) *ParallelDataProperties {
	p.ImportedRecordCount = aws.Int64(v)
	return p
}

func (p *ParallelDataProperties) WithFailedRecordCount(v int64) *ParallelDataProperties {
	p.FailedRecordCount = aws.Int64(v)
	return p
}

func (p *ParallelDataProperties) WithSkippedRecordCount(v int64) *ParallelDataProperties {
	p.SkippedRecordCount = aws.Int64(v)
	return p
}

func (p *ParallelDataProperties) WithEncryptionKey(v *EncryptionKey) *ParallelDataProperties {
	p.EncryptionKey = v
	return p
}

func (p *ParallelDataProperties) WithCreatedAt(v time.Time) *ParallelDataProperties {
	p.CreatedAt = aws.Time(v)
	return p
}

func (p *ParallelDataProperties) WithLastUpdatedAt(v time.Time) *ParallelDataProperties {
	p.LastUpdatedAt = aws.Time(v)
	return p
}

func (p *ParallelDataProperties) WithLatestUpdateAttemptStatus(v ParallelDataStatus) *ParallelDataProperties {
	p.LatestUpdateAttemptStatus = v
	return p
}

func (p *ParallelDataProperties) WithLatestUpdateAttemptAt(v time.Time) *ParallelDataProperties {
	p.LatestUpdateAttemptAt = aws.Time(v)
	return p
}

func (p *ParallelDataProperties) Equal(other *ParallelDataProperties) bool { return value.Equal(p, other) }

func (p *ParallelDataProperties) Hash() uint64 { return value.Hash(p) }

func (p *ParallelDataProperties) String() string { return value.String(p) }
