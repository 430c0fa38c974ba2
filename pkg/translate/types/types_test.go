package types

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTerminologyProperties() *TerminologyProperties {
	created := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)
	return (&TerminologyProperties{}).
		WithName("MyGlossary").
		WithDescription("product names").
		WithArn("arn:aws:translate:eu-west-1:123456789012:terminology/MyGlossary/LATEST").
		WithSourceLanguageCode("en").
		WithTargetLanguageCodes("de", "fr").
		WithEncryptionKey((&EncryptionKey{}).WithType(EncryptionKeyTypeKms).WithId("alias/translate")).
		WithSizeBytes(1024).
		WithTermCount(42).
		WithCreatedAt(created).
		WithLastUpdatedAt(created).
		WithDirectionality(DirectionalityUni).
		WithSkippedTermCount(0).
		WithFormat(TerminologyDataFormatCsv)
}

func TestTerminologyProperties_Equality(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *TerminologyProperties)
	}{
		{"name", func(p *TerminologyProperties) { p.WithName("Other") }},
		{"description cleared", func(p *TerminologyProperties) { p.Description = nil }},
		{"target languages", func(p *TerminologyProperties) { p.WithTargetLanguageCodes("it") }},
		{"target languages cleared", func(p *TerminologyProperties) { p.SetTargetLanguageCodes(nil) }},
		{"encryption key id", func(p *TerminologyProperties) { p.EncryptionKey.WithId("alias/other") }},
		{"size", func(p *TerminologyProperties) { p.WithSizeBytes(2048) }},
		{"created", func(p *TerminologyProperties) { p.WithCreatedAt(time.Unix(0, 0)) }},
		{"directionality", func(p *TerminologyProperties) { p.WithDirectionality(DirectionalityMulti) }},
		{"format", func(p *TerminologyProperties) { p.WithFormat(TerminologyDataFormatTmx) }},
	}

	a, b := newTerminologyProperties(), newTerminologyProperties()
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := newTerminologyProperties()
			tt.mutate(other)
			assert.False(t, a.Equal(other))
			assert.False(t, other.Equal(a))
		})
	}
}

func TestEqual_Nil(t *testing.T) {
	var a, b *Term
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(&Term{}))
	assert.False(t, (&Term{}).Equal(nil))
	assert.True(t, (&Term{}).Equal(&Term{}))
}

func TestAppliedTerminology_CollectionsAreCopied(t *testing.T) {
	terms := []Term{
		*(&Term{}).WithSourceText("car").WithTargetText("Auto"),
		*(&Term{}).WithSourceText("bike").WithTargetText("Fahrrad"),
	}

	applied := (&AppliedTerminology{}).WithName("vehicles").SetTerms(terms)
	require.Equal(t, terms, applied.Terms)

	terms[0] = Term{SourceText: aws.String("boat")}
	assert.Equal(t, "car", aws.ToString(applied.Terms[0].SourceText))

	applied.WithTerms(*(&Term{}).WithSourceText("bus").WithTargetText("Bus"))
	assert.Len(t, applied.Terms, 3)
	assert.Equal(t, "bus", aws.ToString(applied.Terms[2].SourceText))

	applied.SetTerms(nil)
	assert.Nil(t, applied.Terms)

	applied.WithTerms()
	assert.NotNil(t, applied.Terms)
	assert.Empty(t, applied.Terms)
}

func TestStringLists_AppendAndReplace(t *testing.T) {
	p := &TextTranslationJobProperties{}
	p.WithTargetLanguageCodes("de").WithTargetLanguageCodes("fr", "it")
	assert.Equal(t, []string{"de", "fr", "it"}, p.TargetLanguageCodes)

	src := []string{"es"}
	p.SetTargetLanguageCodes(src)
	src[0] = "pt"
	assert.Equal(t, []string{"es"}, p.TargetLanguageCodes)
}

func TestTerminologyData_FileIsCopiedAndRedacted(t *testing.T) {
	file := []byte("en,de\ncar,Auto\n")
	data := (&TerminologyData{}).WithFile(file).WithFormat(TerminologyDataFormatCsv)

	file[0] = 'x'
	assert.Equal(t, byte('e'), data.File[0])

	s := data.String()
	assert.Contains(t, s, "Format: CSV")
	assert.Contains(t, s, "File: *** sensitive data redacted ***")
	assert.NotContains(t, s, "car")
}

func TestString(t *testing.T) {
	details := (&JobDetails{}).
		WithTranslatedDocumentsCount(8).
		WithDocumentsWithErrorsCount(1).
		WithInputDocumentsCount(9)
	assert.Equal(t, "{TranslatedDocumentsCount: 8, DocumentsWithErrorsCount: 1, InputDocumentsCount: 9}", details.String())

	lang := (&Language{}).WithLanguageName("German").WithLanguageCode("de")
	assert.Equal(t, "{LanguageName: German, LanguageCode: de}", lang.String())

	assert.Equal(t, "{}", (&Tag{}).String())

	var nilLang *Language
	assert.Equal(t, "<nil>", nilLang.String())
}

func TestEnumFieldsStoreCanonicalToken(t *testing.T) {
	fromConst := (&ParallelDataConfig{}).WithFormat(ParallelDataFormatTmx)
	fromToken := &ParallelDataConfig{Format: ParallelDataFormat("TMX")}

	assert.Equal(t, "TMX", string(fromConst.Format))
	assert.True(t, fromConst.Equal(fromToken))
	assert.Equal(t, fromConst.Hash(), fromToken.Hash())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       interface{ Validate() error }
		wantTag string
	}{
		{
			name: "valid encryption key",
			v:    (&EncryptionKey{}).WithType(EncryptionKeyTypeKms).WithId("arn:aws:kms:us-east-1:123456789012:key/1234abcd-12ab-34cd-56ef-1234567890ab"),
		},
		{
			name:    "encryption key without type",
			v:       (&EncryptionKey{}).WithId("alias/translate"),
			wantTag: "required",
		},
		{
			name:    "encryption key with unknown type",
			v:       &EncryptionKey{Type: "AES", Id: aws.String("alias/translate")},
			wantTag: "enum",
		},
		{
			name: "valid terminology data",
			v:    (&TerminologyData{}).WithFile([]byte("en,de")).WithFormat(TerminologyDataFormatCsv),
		},
		{
			name:    "terminology data without file",
			v:       (&TerminologyData{}).WithFormat(TerminologyDataFormatTmx),
			wantTag: "required",
		},
		{
			name:    "tag key too long",
			v:       (&Tag{}).WithKey(string(make([]byte, 129))).WithValue("v"),
			wantTag: "max",
		},
		{
			name: "tag with empty value",
			v:    (&Tag{}).WithKey("team").WithValue(""),
		},
		{
			name:    "input config bad content type",
			v:       (&InputDataConfig{}).WithS3Uri("s3://bucket/in/").WithContentType("html"),
			wantTag: "contenttype",
		},
		{
			name: "output config with key",
			v: (&OutputDataConfig{}).WithS3Uri("s3://bucket/out/").
				WithEncryptionKey((&EncryptionKey{}).WithType(EncryptionKeyTypeKms).WithId("alias/out")),
		},
		{
			name:    "output config with invalid key",
			v:       (&OutputDataConfig{}).WithS3Uri("s3://bucket/out/").WithEncryptionKey(&EncryptionKey{}),
			wantTag: "required",
		},
		{
			name:    "filter with unknown status",
			v:       &TextTranslationJobFilter{JobStatus: "PAUSED"},
			wantTag: "enum",
		},
		{
			name: "settings",
			v:    (&TranslationSettings{}).WithFormality(FormalityFormal).WithProfanity(ProfanityMask),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}
