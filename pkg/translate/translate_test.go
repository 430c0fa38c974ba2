package translate

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/translate-model/pkg/translate/types"
)

func TestGetTerminologyRequest_Format(t *testing.T) {
	req := (&GetTerminologyRequest{}).
		WithName("MyGlossary").
		WithTerminologyDataFormat(types.TerminologyDataFormatCsv)

	assert.Equal(t, "MyGlossary", aws.ToString(req.Name))
	assert.Equal(t, "CSV", string(req.TerminologyDataFormat))
	assert.Equal(t, "CSV", req.TerminologyDataFormat.String())

	direct := &GetTerminologyRequest{Name: aws.String("MyGlossary"), TerminologyDataFormat: "CSV"}
	assert.True(t, req.Equal(direct))
	assert.Equal(t, req.Hash(), direct.Hash())
	assert.NoError(t, req.Validate())
}

func TestStopTextTranslationJobResult_StatusDiffers(t *testing.T) {
	stopped := (&StopTextTranslationJobResult{}).WithJobId("abc123").WithJobStatus(types.JobStatusStopped)
	requested := (&StopTextTranslationJobResult{}).WithJobId("abc123").WithJobStatus(types.JobStatusStopRequested)
	again := (&StopTextTranslationJobResult{}).WithJobId("abc123").WithJobStatus(types.JobStatusStopped)

	assert.False(t, stopped.Equal(requested))
	assert.True(t, stopped.Equal(again))
	assert.Equal(t, stopped.Hash(), again.Hash())
	assert.Equal(t, "{JobId: abc123, JobStatus: STOPPED}", stopped.String())
}

func newStartJobRequest() *StartTextTranslationJobRequest {
	return (&StartTextTranslationJobRequest{}).
		WithJobName("nightly-catalog").
		WithInputDataConfig((&types.InputDataConfig{}).WithS3Uri("s3://catalog-in/2024/").WithContentType("text/html")).
		WithOutputDataConfig((&types.OutputDataConfig{}).WithS3Uri("s3://catalog-out/2024/")).
		WithDataAccessRoleArn("arn:aws:iam::123456789012:role/TranslateBatch").
		WithSourceLanguageCode("es").
		WithTargetLanguageCodes("en").
		WithTerminologyNames("catalog-terms").
		WithParallelDataNames("catalog-pairs").
		WithClientToken("7d5f2c1e-4b3a-4f1e-9c2d-8a7b6c5d4e3f").
		WithSettings((&types.TranslationSettings{}).WithFormality(types.FormalityInformal))
}

func TestStartTextTranslationJobRequest_Equality(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *StartTextTranslationJobRequest)
	}{
		{"job name", func(r *StartTextTranslationJobRequest) { r.WithJobName("weekly") }},
		{"input uri", func(r *StartTextTranslationJobRequest) { r.InputDataConfig.WithS3Uri("s3://other/") }},
		{"output key", func(r *StartTextTranslationJobRequest) {
			r.OutputDataConfig.WithEncryptionKey((&types.EncryptionKey{}).WithType(types.EncryptionKeyTypeKms).WithId("alias/k"))
		}},
		{"role", func(r *StartTextTranslationJobRequest) { r.DataAccessRoleArn = nil }},
		{"target languages", func(r *StartTextTranslationJobRequest) { r.WithTargetLanguageCodes("de") }},
		{"terminology names", func(r *StartTextTranslationJobRequest) { r.SetTerminologyNames([]string{}) }},
		{"client token", func(r *StartTextTranslationJobRequest) { r.WithClientToken("other") }},
		{"settings", func(r *StartTextTranslationJobRequest) { r.Settings.WithProfanity(types.ProfanityMask) }},
	}

	base := newStartJobRequest()
	require.True(t, base.Equal(newStartJobRequest()))
	require.Equal(t, base.Hash(), newStartJobRequest().Hash())
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := newStartJobRequest()
			tt.mutate(other)
			assert.False(t, base.Equal(other))
		})
	}
}

func TestTranslateTextRequest_CollectionOwnership(t *testing.T) {
	names := []string{"brands", "sizes"}
	req := (&TranslateTextRequest{}).
		WithText("Zapatillas talla 42").
		WithSourceLanguageCode("es").
		WithTargetLanguageCode("en").
		SetTerminologyNames(names)

	require.Equal(t, []string{"brands", "sizes"}, req.TerminologyNames)

	names[0] = "colors"
	assert.Equal(t, []string{"brands", "sizes"}, req.TerminologyNames)

	req.SetTerminologyNames(nil)
	assert.Nil(t, req.TerminologyNames)
	assert.NoError(t, req.Validate())
}

func TestTranslateTextResult_Populated(t *testing.T) {
	applied := (&types.AppliedTerminology{}).
		WithName("brands").
		WithTerms(*(&types.Term{}).WithSourceText("zapatillas").WithTargetText("sneakers"))

	res := (&TranslateTextResult{}).
		WithTranslatedText("Sneakers size 42").
		WithSourceLanguageCode("es").
		WithTargetLanguageCode("en").
		WithAppliedTerminologies(*applied).
		WithAppliedSettings((&types.TranslationSettings{}).WithProfanity(types.ProfanityMask))

	other := (&TranslateTextResult{}).
		WithTranslatedText("Sneakers size 42").
		WithSourceLanguageCode("es").
		WithTargetLanguageCode("en").
		SetAppliedTerminologies([]types.AppliedTerminology{*applied}).
		WithAppliedSettings(&types.TranslationSettings{Profanity: "MASK"})

	assert.True(t, res.Equal(other))
	assert.Equal(t, res.Hash(), other.Hash())
	assert.Equal(t,
		"{TranslatedText: Sneakers size 42, SourceLanguageCode: es, TargetLanguageCode: en, "+
			"AppliedTerminologies: [{Name: brands, Terms: [{SourceText: zapatillas, TargetText: sneakers}]}], "+
			"AppliedSettings: {Profanity: MASK}}",
		res.String())
}

func TestListLanguagesResult_Paging(t *testing.T) {
	res := (&ListLanguagesResult{}).
		WithLanguages(
			*(&types.Language{}).WithLanguageCode("de").WithLanguageName("Deutsch"),
			*(&types.Language{}).WithLanguageCode("en").WithLanguageName("Englisch"),
		).
		WithDisplayLanguageCode(types.DisplayLanguageCodeDe).
		WithNextToken("page-2")

	assert.Len(t, res.Languages, 2)
	assert.Equal(t, "page-2", aws.ToString(res.NextToken))
	assert.Equal(t, types.DisplayLanguageCodeDe, res.DisplayLanguageCode)

	last := (&ListLanguagesResult{}).
		SetLanguages(res.Languages).
		WithDisplayLanguageCode(types.DisplayLanguageCodeDe)
	assert.False(t, res.Equal(last))
	last.WithNextToken("page-2")
	assert.True(t, res.Equal(last))
}

func TestWithGeneratedClientToken(t *testing.T) {
	req := (&CreateParallelDataRequest{}).
		WithName("catalog-pairs").
		WithParallelDataConfig((&types.ParallelDataConfig{}).WithS3Uri("s3://pairs/data.tsv").WithFormat(types.ParallelDataFormatTsv)).
		WithGeneratedClientToken()

	require.NotNil(t, req.ClientToken)
	_, err := uuid.Parse(*req.ClientToken)
	assert.NoError(t, err)

	token := *req.ClientToken
	req.WithGeneratedClientToken()
	assert.Equal(t, token, *req.ClientToken, "an existing token is kept")
	assert.NoError(t, req.Validate())

	update := (&UpdateParallelDataRequest{}).WithClientToken("").WithGeneratedClientToken()
	assert.NotEmpty(t, aws.ToString(update.ClientToken))

	job := (&StartTextTranslationJobRequest{}).WithGeneratedClientToken()
	assert.NotEmpty(t, aws.ToString(job.ClientToken))
}

func TestTarget(t *testing.T) {
	tests := []struct {
		req  Request
		want string
	}{
		{&TranslateTextRequest{}, "AWSShineFrontendService_20170701.TranslateText"},
		{&ListLanguagesRequest{}, "AWSShineFrontendService_20170701.ListLanguages"},
		{&ImportTerminologyRequest{}, "AWSShineFrontendService_20170701.ImportTerminology"},
		{&GetTerminologyRequest{}, "AWSShineFrontendService_20170701.GetTerminology"},
		{&ListTerminologiesRequest{}, "AWSShineFrontendService_20170701.ListTerminologies"},
		{&DeleteTerminologyRequest{}, "AWSShineFrontendService_20170701.DeleteTerminology"},
		{&CreateParallelDataRequest{}, "AWSShineFrontendService_20170701.CreateParallelData"},
		{&UpdateParallelDataRequest{}, "AWSShineFrontendService_20170701.UpdateParallelData"},
		{&GetParallelDataRequest{}, "AWSShineFrontendService_20170701.GetParallelData"},
		{&ListParallelDataRequest{}, "AWSShineFrontendService_20170701.ListParallelData"},
		{&DeleteParallelDataRequest{}, "AWSShineFrontendService_20170701.DeleteParallelData"},
		{&StartTextTranslationJobRequest{}, "AWSShineFrontendService_20170701.StartTextTranslationJob"},
		{&DescribeTextTranslationJobRequest{}, "AWSShineFrontendService_20170701.DescribeTextTranslationJob"},
		{&ListTextTranslationJobsRequest{}, "AWSShineFrontendService_20170701.ListTextTranslationJobs"},
		{&StopTextTranslationJobRequest{}, "AWSShineFrontendService_20170701.StopTextTranslationJob"},
		{&TagResourceRequest{}, "AWSShineFrontendService_20170701.TagResource"},
		{&UntagResourceRequest{}, "AWSShineFrontendService_20170701.UntagResource"},
		{&ListTagsForResourceRequest{}, "AWSShineFrontendService_20170701.ListTagsForResource"},
	}

	for _, tt := range tests {
		t.Run(tt.req.OperationName(), func(t *testing.T) {
			assert.Equal(t, tt.want, Target(tt.req))
		})
	}
}

func TestValidate(t *testing.T) {
	const arn = "arn:aws:translate:us-east-1:123456789012:terminology/MyGlossary/LATEST"

	tests := []struct {
		name    string
		req     Request
		wantTag string
	}{
		{
			name: "import terminology",
			req: (&ImportTerminologyRequest{}).
				WithName("MyGlossary").
				WithMergeStrategy(types.MergeStrategyOverwrite).
				WithTerminologyData((&types.TerminologyData{}).WithFile([]byte("en,de\ncar,Auto")).WithFormat(types.TerminologyDataFormatCsv)).
				WithTags(*(&types.Tag{}).WithKey("team").WithValue("catalog")),
		},
		{
			name:    "import terminology without merge strategy",
			req:     (&ImportTerminologyRequest{}).WithName("MyGlossary").WithTerminologyData((&types.TerminologyData{}).WithFile([]byte("x")).WithFormat(types.TerminologyDataFormatCsv)),
			wantTag: "required",
		},
		{
			name:    "import terminology with invalid nested data",
			req:     (&ImportTerminologyRequest{}).WithName("MyGlossary").WithMergeStrategy(types.MergeStrategyOverwrite).WithTerminologyData(&types.TerminologyData{File: []byte("x"), Format: "TSV"}),
			wantTag: "enum",
		},
		{
			name:    "get terminology bad name",
			req:     (&GetTerminologyRequest{}).WithName("my glossary"),
			wantTag: "resourcename",
		},
		{
			name:    "list languages unsupported display code",
			req:     &ListLanguagesRequest{DisplayLanguageCode: "ru"},
			wantTag: "enum",
		},
		{
			name:    "list terminologies max results",
			req:     (&ListTerminologiesRequest{}).WithMaxResults(501),
			wantTag: "max",
		},
		{
			name: "list jobs with filter",
			req: (&ListTextTranslationJobsRequest{}).
				WithFilter((&types.TextTranslationJobFilter{}).WithJobStatus(types.JobStatusInProgress).WithSubmittedAfterTime(time.Now())).
				WithMaxResults(100),
		},
		{
			name:    "describe job without id",
			req:     &DescribeTextTranslationJobRequest{},
			wantTag: "required",
		},
		{
			name:    "stop job id too long",
			req:     (&StopTextTranslationJobRequest{}).WithJobId("0123456789abcdef0123456789abcdef0"),
			wantTag: "max",
		},
		{
			name:    "start job without targets",
			req:     newStartJobRequest().SetTargetLanguageCodes(nil),
			wantTag: "required",
		},
		{
			name: "tag resource",
			req:  (&TagResourceRequest{}).WithResourceArn(arn).WithTags(*(&types.Tag{}).WithKey("env").WithValue("prod")),
		},
		{
			name:    "untag resource bad arn",
			req:     (&UntagResourceRequest{}).WithResourceArn("arn:aws:s3:::bucket").WithTagKeys("env"),
			wantTag: "resourcearn",
		},
		{
			name: "list tags",
			req:  (&ListTagsForResourceRequest{}).WithResourceArn(arn),
		},
		{
			name:    "delete parallel data without name",
			req:     &DeleteParallelDataRequest{},
			wantTag: "required",
		},
		{
			name: "get parallel data",
			req:  (&GetParallelDataRequest{}).WithName("catalog-pairs"),
		},
		{
			name:    "update parallel data bad token",
			req:     (&UpdateParallelDataRequest{}).WithName("catalog-pairs").WithParallelDataConfig((&types.ParallelDataConfig{}).WithS3Uri("s3://pairs/p.csv").WithFormat(types.ParallelDataFormatCsv)).WithClientToken("not a token"),
			wantTag: "clienttoken",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, types.ErrInvalidArgument))

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}

func TestResults_EmptyShapes(t *testing.T) {
	assert.True(t, (&DeleteTerminologyResult{}).Equal(&DeleteTerminologyResult{}))
	assert.Equal(t, "{}", (&TagResourceResult{}).String())
	assert.Equal(t, (&UntagResourceResult{}).Hash(), (&UntagResourceResult{}).Hash())
}

func TestDescribeTextTranslationJobResult(t *testing.T) {
	submitted := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	props := (&types.TextTranslationJobProperties{}).
		WithJobId("abc123").
		WithJobStatus(types.JobStatusCompletedWithError).
		WithJobDetails((&types.JobDetails{}).WithInputDocumentsCount(3).WithTranslatedDocumentsCount(2).WithDocumentsWithErrorsCount(1)).
		WithSubmittedTime(submitted).
		WithEndTime(submitted.Add(time.Hour))

	res := (&DescribeTextTranslationJobResult{}).WithTextTranslationJobProperties(props)
	same := (&DescribeTextTranslationJobResult{}).WithTextTranslationJobProperties(
		(&types.TextTranslationJobProperties{}).
			WithJobId("abc123").
			WithJobStatus(types.JobStatusCompletedWithError).
			WithJobDetails(&types.JobDetails{InputDocumentsCount: aws.Int32(3), TranslatedDocumentsCount: aws.Int32(2), DocumentsWithErrorsCount: aws.Int32(1)}).
			WithSubmittedTime(submitted.In(time.FixedZone("PDT", -7*3600))).
			WithEndTime(submitted.Add(time.Hour)))

	assert.True(t, res.Equal(same))
	assert.Equal(t, res.Hash(), same.Hash())

	same.TextTranslationJobProperties.WithJobStatus(types.JobStatusFailed)
	assert.False(t, res.Equal(same))
}
