// Package types holds the nested value objects, enumerated codes and typed
// service errors of the translation API model.
//
// Every model type offers fluent With* setters that return the receiver,
// structural Equal and Hash, and a String rendering that lists set fields.
// Collection setters always store an owned copy of the caller's slice.
package types

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/pricofy/translate-model/internal/value"
)

// Term is one source/target pair of a custom terminology.
type Term struct {
	SourceText *string `json:"SourceText,omitempty" validate:"omitempty,max=10000"`
	TargetText *string `json:"TargetText,omitempty" validate:"omitempty,max=10000"`
}

func (t *Term) WithSourceText(v string) *Term {
	t.SourceText = aws.String(v)
	return t
}

func (t *Term) WithTargetText(v string) *Term {
	t.TargetText = aws.String(v)
	return t
}

func (t *Term) Equal(other *Term) bool { return value.Equal(t, other) }

func (t *Term) Hash() uint64 { return value.Hash(t) }

func (t *Term) String() string { return value.String(t) }

// AppliedTerminology names a terminology that was applied to a translation and
// lists the terms that matched the input text.
type AppliedTerminology struct {
	Name  *string `json:"Name,omitempty"`
	Terms []Term  `json:"Terms,omitempty"`
}

func (a *AppliedTerminology) WithName(v string) *AppliedTerminology {
	a.Name = aws.String(v)
	return a
}

// WithTerms appends v to Terms.
func (a *AppliedTerminology) WithTerms(v ...Term) *AppliedTerminology {
	a.Terms = value.Append(a.Terms, v...)
	return a
}

// SetTerms replaces Terms with a copy of v. A nil v clears the field.
func (a *AppliedTerminology) SetTerms(v []Term) *AppliedTerminology {
	a.Terms = value.CopySlice(v)
	return a
}

func (a *AppliedTerminology) Equal(other *AppliedTerminology) bool { return value.Equal(a, other) }

func (a *AppliedTerminology) Hash() uint64 { return value.Hash(a) }

func (a *AppliedTerminology) String() string { return value.String(a) }

// Language describes one language supported by the service, with its name
// rendered in the requested display language.
type Language struct {
	LanguageName *string `json:"LanguageName,omitempty"`
	LanguageCode *string `json:"LanguageCode,omitempty"`
}

func (l *Language) WithLanguageName(v string) *Language {
	l.LanguageName = aws.String(v)
	return l
}

func (l *Language) WithLanguageCode(v string) *Language {
	l.LanguageCode = aws.String(v)
	return l
}

func (l *Language) Equal(other *Language) bool { return value.Equal(l, other) }

func (l *Language) Hash() uint64 { return value.Hash(l) }

func (l *Language) String() string { return value.String(l) }

// Tag is a key/value label attached to a terminology or parallel data resource.
type Tag struct {
	Key   *string `json:"Key,omitempty" validate:"required,min=1,max=128,tagtext"`
	Value *string `json:"Value,omitempty" validate:"required,max=256,tagtext"`
}

func (t *Tag) WithKey(v string) *Tag {
	t.Key = aws.String(v)
	return t
}

func (t *Tag) WithValue(v string) *Tag {
	t.Value = aws.String(v)
	return t
}

func (t *Tag) Equal(other *Tag) bool { return value.Equal(t, other) }

func (t *Tag) Hash() uint64 { return value.Hash(t) }

func (t *Tag) String() string { return value.String(t) }

// Validate checks the declared field constraints.
func (t *Tag) Validate() error { return validate(t) }

// EncryptionKey references the customer managed key used to encrypt a resource
// or job output.
type EncryptionKey struct {
	Type EncryptionKeyType `json:"Type,omitempty" validate:"required,enum"`

	// Id is the key ARN, key ID, alias name or alias ARN.
	Id *string `json:"Id,omitempty" validate:"required,min=1,max=400,kmskeyid"`
}

func (k *EncryptionKey) WithType(v EncryptionKeyType) *EncryptionKey {
	k.Type = v
	return k
}

func (k *EncryptionKey) WithId(v string) *EncryptionKey {
	k.Id = aws.String(v)
	return k
}

func (k *EncryptionKey) Equal(other *EncryptionKey) bool { return value.Equal(k, other) }

func (k *EncryptionKey) Hash() uint64 { return value.Hash(k) }

func (k *EncryptionKey) String() string { return value.String(k) }

// Validate checks the declared field constraints.
func (k *EncryptionKey) Validate() error { return validate(k) }

// TranslationSettings tunes the output of a translation.
type TranslationSettings struct {
	Formality Formality `json:"Formality,omitempty" validate:"omitempty,enum"`
	Profanity Profanity `json:"Profanity,omitempty" validate:"omitempty,enum"`
}

func (s *TranslationSettings) WithFormality(v Formality) *TranslationSettings {
	s.Formality = v
	return s
}

func (s *TranslationSettings) WithProfanity(v Profanity) *TranslationSettings {
	s.Profanity = v
	return s
}

func (s *TranslationSettings) Equal(other *TranslationSettings) bool { return value.Equal(s, other) }

func (s *TranslationSettings) Hash() uint64 { return value.Hash(s) }

func (s *TranslationSettings) String() string { return value.String(s) }

// Validate checks the declared field constraints.
func (s *TranslationSettings) Validate() error { return validate(s) }
