package types

import "fmt"

// lookup maps a canonical wire token back to its enum member.
type lookup[T ~string] map[string]T

func newLookup[T ~string](values []T) lookup[T] {
	m := make(lookup[T], len(values))
	for _, v := range values {
		m[string(v)] = v
	}
	return m
}

// parse is exact and case-sensitive; "" and unknown tokens are rejected.
func (l lookup[T]) parse(kind, raw string) (T, error) {
	var zero T
	if raw == "" {
		return zero, fmt.Errorf("%w: %s value cannot be empty", ErrInvalidArgument, kind)
	}
	v, ok := l[raw]
	if !ok {
		return zero, fmt.Errorf("%w: cannot create %s from %q", ErrInvalidArgument, kind, raw)
	}
	return v, nil
}

type DisplayLanguageCode string

// Enum values for DisplayLanguageCode
const (
	DisplayLanguageCodeDe   DisplayLanguageCode = "de"
	DisplayLanguageCodeEn   DisplayLanguageCode = "en"
	DisplayLanguageCodeEs   DisplayLanguageCode = "es"
	DisplayLanguageCodeFr   DisplayLanguageCode = "fr"
	DisplayLanguageCodeIt   DisplayLanguageCode = "it"
	DisplayLanguageCodeJa   DisplayLanguageCode = "ja"
	DisplayLanguageCodeKo   DisplayLanguageCode = "ko"
	DisplayLanguageCodePt   DisplayLanguageCode = "pt"
	DisplayLanguageCodeZh   DisplayLanguageCode = "zh"
	DisplayLanguageCodeZhTw DisplayLanguageCode = "zh-TW"
)

// Values returns all known values for DisplayLanguageCode.
func (DisplayLanguageCode) Values() []DisplayLanguageCode {
	return []DisplayLanguageCode{
		"de",
		"en",
		"es",
		"fr",
		"it",
		"ja",
		"ko",
		"pt",
		"zh",
		"zh-TW",
	}
}

var displayLanguageCodes = newLookup(DisplayLanguageCode("").Values())

func (c DisplayLanguageCode) String() string { return string(c) }

// IsKnown reports whether c is one of the defined members.
func (c DisplayLanguageCode) IsKnown() bool {
	_, ok := displayLanguageCodes[string(c)]
	return ok
}

// ParseDisplayLanguageCode converts a wire token to a DisplayLanguageCode.
func ParseDisplayLanguageCode(raw string) (DisplayLanguageCode, error) {
	return displayLanguageCodes.parse("DisplayLanguageCode", raw)
}

type TerminologyDataFormat string

// Enum values for TerminologyDataFormat
const (
	TerminologyDataFormatCsv TerminologyDataFormat = "CSV"
	TerminologyDataFormatTmx TerminologyDataFormat = "TMX"
)

// Values returns all known values for TerminologyDataFormat.
func (TerminologyDataFormat) Values() []TerminologyDataFormat {
	return []TerminologyDataFormat{
		"CSV",
		"TMX",
	}
}

var terminologyDataFormats = newLookup(TerminologyDataFormat("").Values())

func (f TerminologyDataFormat) String() string { return string(f) }

// IsKnown reports whether f is one of the defined members.
func (f TerminologyDataFormat) IsKnown() bool {
	_, ok := terminologyDataFormats[string(f)]
	return ok
}

// ParseTerminologyDataFormat converts a wire token to a TerminologyDataFormat.
func ParseTerminologyDataFormat(raw string) (TerminologyDataFormat, error) {
	return terminologyDataFormats.parse("TerminologyDataFormat", raw)
}

// JobStatus is the state of an asynchronous translation job as reported by
// the service. Transitions happen remotely; the model only carries the value.
type JobStatus string

// Enum values for JobStatus
const (
	JobStatusSubmitted          JobStatus = "SUBMITTED"
	JobStatusInProgress         JobStatus = "IN_PROGRESS"
	JobStatusCompleted          JobStatus = "COMPLETED"
	JobStatusCompletedWithError JobStatus = "COMPLETED_WITH_ERROR"
	JobStatusFailed             JobStatus = "FAILED"
	JobStatusStopRequested      JobStatus = "STOP_REQUESTED"
	JobStatusStopped            JobStatus = "STOPPED"
)

// Values returns all known values for JobStatus.
func (JobStatus) Values() []JobStatus {
	return []JobStatus{
		"SUBMITTED",
		"IN_PROGRESS",
		"COMPLETED",
		"COMPLETED_WITH_ERROR",
		"FAILED",
		"STOP_REQUESTED",
		"STOPPED",
	}
}

var jobStatuses = newLookup(JobStatus("").Values())

func (s JobStatus) String() string { return string(s) }

// IsKnown reports whether s is one of the defined members.
func (s JobStatus) IsKnown() bool {
	_, ok := jobStatuses[string(s)]
	return ok
}

// ParseJobStatus converts a wire token to a JobStatus.
func ParseJobStatus(raw string) (JobStatus, error) {
	return jobStatuses.parse("JobStatus", raw)
}

type Directionality string

// Enum values for Directionality
const (
	DirectionalityUni   Directionality = "UNI"
	DirectionalityMulti Directionality = "MULTI"
)

// Values returns all known values for Directionality.
func (Directionality) Values() []Directionality {
	return []Directionality{
		"UNI",
		"MULTI",
	}
}

var directionalities = newLookup(Directionality("").Values())

func (d Directionality) String() string { return string(d) }

// IsKnown reports whether d is one of the defined members.
func (d Directionality) IsKnown() bool {
	_, ok := directionalities[string(d)]
	return ok
}

// ParseDirectionality converts a wire token to a Directionality.
func ParseDirectionality(raw string) (Directionality, error) {
	return directionalities.parse("Directionality", raw)
}

type EncryptionKeyType string

// Enum values for EncryptionKeyType
const (
	EncryptionKeyTypeKms EncryptionKeyType = "KMS"
)

// Values returns all known values for EncryptionKeyType.
func (EncryptionKeyType) Values() []EncryptionKeyType {
	return []EncryptionKeyType{
		"KMS",
	}
}

var encryptionKeyTypes = newLookup(EncryptionKeyType("").Values())

func (t EncryptionKeyType) String() string { return string(t) }

// IsKnown reports whether t is one of the defined members.
func (t EncryptionKeyType) IsKnown() bool {
	_, ok := encryptionKeyTypes[string(t)]
	return ok
}

// ParseEncryptionKeyType converts a wire token to an EncryptionKeyType.
func ParseEncryptionKeyType(raw string) (EncryptionKeyType, error) {
	return encryptionKeyTypes.parse("EncryptionKeyType", raw)
}

type Formality string

// Enum values for Formality
const (
	FormalityFormal   Formality = "FORMAL"
	FormalityInformal Formality = "INFORMAL"
)

// Values returns all known values for Formality.
func (Formality) Values() []Formality {
	return []Formality{
		"FORMAL",
		"INFORMAL",
	}
}

var formalities = newLookup(Formality("").Values())

func (f Formality) String() string { return string(f) }

// IsKnown reports whether f is one of the defined members.
func (f Formality) IsKnown() bool {
	_, ok := formalities[string(f)]
	return ok
}

// ParseFormality converts a wire token to a Formality.
func ParseFormality(raw string) (Formality, error) {
	return formalities.parse("Formality", raw)
}

type Profanity string

// Enum values for Profanity
const (
	ProfanityMask Profanity = "MASK"
)

// Values returns all known values for Profanity.
func (Profanity) Values() []Profanity {
	return []Profanity{
		"MASK",
	}
}

var profanities = newLookup(Profanity("").Values())

func (p Profanity) String() string { return string(p) }

// IsKnown reports whether p is one of the defined members.
func (p Profanity) IsKnown() bool {
	_, ok := profanities[string(p)]
	return ok
}

// ParseProfanity converts a wire token to a Profanity.
func ParseProfanity(raw string) (Profanity, error) {
	return profanities.parse("Profanity", raw)
}

type MergeStrategy string

// Enum values for MergeStrategy
const (
	MergeStrategyOverwrite MergeStrategy = "OVERWRITE"
)

// Values returns all known values for MergeStrategy.
func (MergeStrategy) Values() []MergeStrategy {
	return []MergeStrategy{
		"OVERWRITE",
	}
}

var mergeStrategies = newLookup(MergeStrategy("").Values())

func (m MergeStrategy) String() string { return string(m) }

// IsKnown reports whether m is one of the defined members.
func (m MergeStrategy) IsKnown() bool {
	_, ok := mergeStrategies[string(m)]
	return ok
}

// ParseMergeStrategy converts a wire token to a MergeStrategy.
func ParseMergeStrategy(raw string) (MergeStrategy, error) {
	return mergeStrategies.parse("MergeStrategy", raw)
}

type ParallelDataFormat string

// Enum values for ParallelDataFormat
const (
	ParallelDataFormatTsv ParallelDataFormat = "TSV"
	ParallelDataFormatCsv ParallelDataFormat = "CSV"
	ParallelDataFormatTmx ParallelDataFormat = "TMX"
)

// Values returns all known values for ParallelDataFormat.
func (ParallelDataFormat) Values() []ParallelDataFormat {
	return []ParallelDataFormat{
		"TSV",
		"CSV",
		"TMX",
	}
}

var parallelDataFormats = newLookup(ParallelDataFormat("").Values())

func (f ParallelDataFormat) String() string { return string(f) }

// IsKnown reports whether f is one of the defined members.
func (f ParallelDataFormat) IsKnown() bool {
	_, ok := parallelDataFormats[string(f)]
	return ok
}

// ParseParallelDataFormat converts a wire token to a ParallelDataFormat.
func ParseParallelDataFormat(raw string) (ParallelDataFormat, error) {
	return parallelDataFormats.parse("ParallelDataFormat", raw)
}

type ParallelDataStatus string

// Enum values for ParallelDataStatus
const (
	ParallelDataStatusCreating ParallelDataStatus = "CREATING"
	ParallelDataStatusUpdating ParallelDataStatus = "UPDATING"
	ParallelDataStatusActive   ParallelDataStatus = "ACTIVE"
	ParallelDataStatusDeleting ParallelDataStatus = "DELETING"
	ParallelDataStatusFailed   ParallelDataStatus = "FAILED"
)

// Values returns all known values for ParallelDataStatus.
func (ParallelDataStatus) Values() []ParallelDataStatus {
	return []ParallelDataStatus{
		"CREATING",
		"UPDATING",
		"ACTIVE",
		"DELETING",
		"FAILED",
	}
}

var parallelDataStatuses = newLookup(ParallelDataStatus("").Values())

func (s ParallelDataStatus) String() string { return string(s) }

// IsKnown reports whether s is one of the defined members.
func (s ParallelDataStatus) IsKnown() bool {
	_, ok := parallelDataStatuses[string(s)]
	return ok
}

// ParseParallelDataStatus converts a wire token to a ParallelDataStatus.
func ParseParallelDataStatus(raw string) (ParallelDataStatus, error) {
	return parallelDataStatuses.parse("ParallelDataStatus", raw)
}
