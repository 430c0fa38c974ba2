package types

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
)

// TerminologyData is the content of a terminology file being imported.
type TerminologyData struct {
	// File is the raw CSV or TMX document.
	File           []byte                `json:"File,omitempty" validate:"required" sensitive:"true"`
	Format         TerminologyDataFormat `json:"Format,omitempty" validate:"required,enum"`
	Directionality Directionality        `json:"Directionality,omitempty" validate:"omitempty,enum"`
}

// WithFile stores a copy of v.
func (d *TerminologyData) WithFile(v []byte) *TerminologyData {
	d.File = value.CopySlice(v)
	return d
}

func (d *TerminologyData) WithFormat(v TerminologyDataFormat) *TerminologyData {
	d.Format = v
	return d
}

func (d *TerminologyData) WithDirectionality(v Directionality) *TerminologyData {
	d.Directionality = v
	return d
}

func (d *TerminologyData) Equal(other *TerminologyData) bool { return value.Equal(d, other) }

func (d *TerminologyData) Hash() uint64 { return value.Hash(d) }

func (d *TerminologyData) String() string { return value.String(d) }

// Validate checks the declared field constraints.
func (d *TerminologyData) Validate() error { return validate(d) }

// TerminologyDataLocation points at a downloadable copy of terminology data.
// Location is a presigned URL that expires after 30 minutes.
type TerminologyDataLocation struct {
	RepositoryType *string `json:"RepositoryType,omitempty"`
	Location       *string `json:"Location,omitempty"`
}

func (l *TerminologyDataLocation) WithRepositoryType(v string) *TerminologyDataLocation {
	l.RepositoryType = aws.String(v)
	return l
}

func (l *TerminologyDataLocation) WithLocation(v string) *TerminologyDataLocation {
	l.Location = aws.String(v)
	return l
}

func (l *TerminologyDataLocation) Equal(other *TerminologyDataLocation) bool { return value.Equal(l, other) }

func (l *TerminologyDataLocation) Hash() uint64 { return value.Hash(l) }

func (l *TerminologyDataLocation) String() string { return value.String(l) }

// TerminologyProperties describes a stored custom terminology.
type TerminologyProperties struct {
	Name                *string               `json:"Name,omitempty"`
	Description         *string               `json:"Description,omitempty"`
	Arn                 *string               `json:"Arn,omitempty"`
	SourceLanguageCode  *string               `json:"SourceLanguageCode,omitempty"`
	TargetLanguageCodes []string              `json:"TargetLanguageCodes,omitempty"`
	EncryptionKey       *EncryptionKey        `json:"EncryptionKey,omitempty"`
	SizeBytes           *int32                `json:"SizeBytes,omitempty"`
	TermCount           *int32                `json:"TermCount,omitempty"`
	CreatedAt           *time.Time            `json:"CreatedAt,omitempty"`
	LastUpdatedAt       *time.Time            `json:"LastUpdatedAt,omitempty"`
	Directionality      Directionality        `json:"Directionality,omitempty"`
	Message             *string               `json:"Message,omitempty"`
	SkippedTermCount    *int32                `json:"SkippedTermCount,omitempty"`
	Format              TerminologyDataFormat `json:"Format,omitempty"`
}

func (p *TerminologyProperties) WithName(v string) *TerminologyProperties {
	p.Name = aws.String(v)
	return p
}

func (p *TerminologyProperties) WithDescription(v string) *TerminologyProperties {
	p.Description = aws.String(v)
	return p
}

func (p *TerminologyProperties) WithArn(v string) *TerminologyProperties {
	p.Arn = aws.String(v)
	return p
}

func (p *TerminologyProperties) WithSourceLanguageCode(v string) *TerminologyProperties {
	p.SourceLanguageCode = aws.String(v)
	return p
}

// WithTargetLanguageCodes appends v to TargetLanguageCodes.
func (p *TerminologyProperties) WithTargetLanguageCodes(v ...string) *TerminologyProperties {
	p.TargetLanguageCodes = value.Append(p.TargetLanguageCodes, v...)
	return p
}

// SetTargetLanguageCodes replaces TargetLanguageCodes with a copy of v. A nil v clears the field.
func (p *TerminologyProperties) SetTargetLanguageCodes(v []string) *TerminologyProperties {
	p.TargetLanguageCodes = value.CopySlice(v)
	return p
}

func (p *TerminologyProperties) WithEncryptionKey(v *EncryptionKey) *TerminologyProperties {
	p.EncryptionKey = v
	return p
}

func (p *TerminologyProperties) WithSizeBytes(v int32) *TerminologyProperties {
	p.SizeBytes = aws.Int32(v)
	return p
}

func (p *TerminologyProperties) WithTermCount(v int32) *TerminologyProperties {
	p.TermCount = aws.Int32(v)
	return p
}

func (p *TerminologyProperties) WithCreatedAt(v time.Time) *TerminologyProperties {
	p.CreatedAt = aws.Time(v)
	return p
}

func (p *TerminologyProperties) WithLastUpdatedAt(v time.Time) *TerminologyProperties {
	p.LastUpdatedAt = aws.Time(v)
	return p
}

func (p *TerminologyProperties) WithDirectionality(v Directionality) *TerminologyProperties {
	p.Directionality = v
	return p
}

func (p *TerminologyProperties) WithMessage(v string) *TerminologyProperties {
	p.Message = aws.String(v)
	return p
}

func (p *TerminologyProperties) WithSkippedTermCount(v int32) *TerminologyProperties {
	p.SkippedTermCount = aws.Int32(v)
	return p
}

func (p *TerminologyProperties) WithFormat(v TerminologyDataFormat) *TerminologyProperties {
	p.Format = v
	return p
}

func (p *TerminologyProperties) Equal(other *TerminologyProperties) bool { return value.Equal(p, other) }

func (p *TerminologyProperties) Hash() uint64 { return value.Hash(p) }

func (p *TerminologyProperties) String() string { return value.String(p) }
