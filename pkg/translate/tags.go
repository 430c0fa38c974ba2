package translate

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
	"github.com/pricofy/translate-model/pkg/translate/types"
)

// TagResourceRequest adds or overwrites tags on a terminology or parallel data
// resource.
type TagResourceRequest struct {
	ResourceArn *string     `json:"ResourceArn,omitempty" validate:"required,min=1,max=512,resourcearn"`
	Tags        []types.Tag `json:"Tags,omitempty" validate:"required,max=200,dive"`
}

func (r *TagResourceRequest) WithResourceArn(v string) *TagResourceRequest {
	r.ResourceArn = aws.String(v)
	return r
}

// WithTags appends v to Tags.
func (r *TagResourceRequest) WithTags(v ...types.Tag) *TagResourceRequest {
	r.Tags = value.Append(r.Tags, v...)
	return r
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (r *TagResourceRequest) SetTags(v []types.Tag) *TagResourceRequest {
	r.Tags = value.CopySlice(v)
	return r
}

func (r *TagResourceRequest) Equal(other *TagResourceRequest) bool { return value.Equal(r, other) }

func (r *TagResourceRequest) Hash() uint64 { return value.Hash(r) }

func (r *TagResourceRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *TagResourceRequest) Validate() error { return validate(r) }

func (r *TagResourceRequest) OperationName() string { return "TagResource" }

type TagResourceResult struct{}

func (r *TagResourceResult) Equal(other *TagResourceResult) bool { return value.Equal(r, other) }

func (r *TagResourceResult) Hash() uint64 { return value.Hash(r) }

func (r *TagResourceResult) String() string { return value.String(r) }

// UntagResourceRequest removes the tags named by TagKeys.
type UntagResourceRequest struct {
	ResourceArn *string  `json:"ResourceArn,omitempty" validate:"required,min=1,max=512,resourcearn"`
	TagKeys     []string `json:"TagKeys,omitempty" validate:"required,max=200,dive,min=1,max=128,tagtext"`
}

func (r *UntagResourceRequest) WithResourceArn(v string) *UntagResourceRequest {
	r.ResourceArn = aws.String(v)
	return r
}

// WithTagKeys appends v to TagKeys.
func (r *UntagResourceRequest) WithTagKeys(v ...string) *UntagResourceRequest {
	r.TagKeys = value.Append(r.TagKeys, v...)
	return r
}

// SetTagKeys replaces TagKeys with a copy of v. A nil v clears the field.
func (r *UntagResourceRequest) SetTagKeys(v []string) *UntagResourceRequest {
	r.TagKeys = value.CopySlice(v)
	return r
}

func (r *UntagResourceRequest) Equal(other *UntagResourceRequest) bool { return value.Equal(r, other) }

func (r *UntagResourceRequest) Hash() uint64 { return value.Hash(r) }

func (r *UntagResourceRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *UntagResourceRequest) Validate() error { return validate(r) }

func (r *UntagResourceRequest) OperationName() string { return "UntagResource" }

type UntagResourceResult struct{}

func (r *UntagResourceResult) Equal(other *UntagResourceResult) bool { return value.Equal(r, other) }

func (r *UntagResourceResult) Hash() uint64 { return value.Hash(r) }

func (r *UntagResourceResult) String() string { return value.String(r) }

// ListTagsForResourceRequest lists the tags of a resource.
type ListTagsForResourceRequest struct {
	ResourceArn *string `json:"ResourceArn,omitempty" validate:"required,min=1,max=512,resourcearn"`
}

func (r *ListTagsForResourceRequest) WithResourceArn(v string) *ListTagsForResourceRequest {
	r.ResourceArn = aws.String(v)
	return r
}

func (r *ListTagsForResourceRequest) Equal(other *ListTagsForResourceRequest) bool { return value.Equal(r, other) }

func (r *ListTagsForResourceRequest) Hash() uint64 { return value.Hash(r) }

func (r *ListTagsForResourceRequest) String() string { return value.String(r) }

// Validate checks the declared field constraints.
func (r *ListTagsForResourceRequest) Validate() error { return validate(r) }

func (r *ListTagsForResourceRequest) OperationName() string { return "ListTagsForResource" }

type ListTagsForResourceResult struct {
	Tags []types.Tag `json:"Tags,omitempty"`
}

// WithTags appends v to Tags.
func (r *ListTagsForResourceResult) WithTags(v ...types.Tag) *ListTagsForResourceResult {
	r.Tags = value.Append(r.Tags, v...)
	return r
}

// SetTags replaces Tags with a copy of v. A nil v clears the field.
func (r *ListTagsForResourceResult) SetTags(v []types.Tag) *ListTagsForResourceResult {
	r.Tags = value.CopySlice(v)
	return r
}

func (r *ListTagsForResourceResult) Equal(other *ListTagsForResourceResult) bool { return value.Equal(r, other) }

func (r *ListTagsForResourceResult) Hash() uint64 { return value.Hash(r) }

func (r *ListTagsForResourceResult) String() string { return value.String(r) }
