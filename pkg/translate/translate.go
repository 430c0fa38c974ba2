// Package translate contains the request and result types of every
// translation API operation.
//
// A caller builds a request with direct field assignment or fluent With*
// chaining and hands it to a transport, which serializes it, performs the
// call and fills the matching result. Service failures surface as the typed
// errors in the types package. Nothing here performs I/O.
package translate

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"

	"github.com/pricofy/translate-model/internal/validation"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// TargetPrefix is the JSON protocol target prefix of the service.
const TargetPrefix = "AWSShineFrontendService_20170701"

// Request is implemented by every operation request.
type Request interface {
	OperationName() string
	Validate() error
}

var (
	_ Request = (*TranslateTextRequest)(nil)
	_ Request = (*ListLanguagesRequest)(nil)
	_ Request = (*ImportTerminologyRequest)(nil)
	_ Request = (*GetTerminologyRequest)(nil)
	_ Request = (*ListTerminologiesRequest)(nil)
	_ Request = (*DeleteTerminologyRequest)(nil)
	_ Request = (*CreateParallelDataRequest)(nil)
	_ Request = (*UpdateParallelDataRequest)(nil)
	_ Request = (*GetParallelDataRequest)(nil)
	_ Request = (*ListParallelDataRequest)(nil)
	_ Request = (*DeleteParallelDataRequest)(nil)
	_ Request = (*StartTextTranslationJobRequest)(nil)
	_ Request = (*DescribeTextTranslationJobRequest)(nil)
	_ Request = (*ListTextTranslationJobsRequest)(nil)
	_ Request = (*StopTextTranslationJobRequest)(nil)
	_ Request = (*TagResourceRequest)(nil)
	_ Request = (*UntagResourceRequest)(nil)
	_ Request = (*ListTagsForResourceRequest)(nil)
)

// Target returns the X-Amz-Target header value for req.
func Target(req Request) string {
	return TargetPrefix + "." + req.OperationName()
}

func validate(v any) error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", types.ErrInvalidArgument, err)
	}
	return nil
}

func ensureClientToken(token *string) *string {
	if aws.ToString(token) != "" {
		return token
	}
	return aws.String(uuid.NewString())
}
