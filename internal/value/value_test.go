package value

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Code *string
}

type sample struct {
	Name    *string
	Count   *int32
	Kind    string
	Tags    []string
	Items   []inner
	Payload []byte `sensitive:"true"`
	Raw     []byte
	At      *time.Time
	Nested  *inner
	Labels  map[string]string
	ignored string
}

func str(s string) *string { return &s }

func i32(v int32) *int32 { return &v }

func TestEqual(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	sameInstant := at.In(time.FixedZone("CET", 3600))

	base := func() *sample {
		return &sample{
			Name:   str("glossary"),
			Count:  i32(3),
			Kind:   "CSV",
			Tags:   []string{"a", "b"},
			Items:  []inner{{Code: str("en")}},
			At:     &at,
			Nested: &inner{Code: str("fr")},
			Labels: map[string]string{"k": "v"},
		}
	}

	tests := []struct {
		name   string
		mutate func(s *sample)
		equal  bool
	}{
		{name: "identical", mutate: func(s *sample) {}, equal: true},
		{name: "same instant in another zone", mutate: func(s *sample) { s.At = &sameInstant }, equal: true},
		{name: "unexported field ignored", mutate: func(s *sample) { s.ignored = "x" }, equal: true},
		{name: "different scalar", mutate: func(s *sample) { s.Name = str("other") }, equal: false},
		{name: "nil scalar", mutate: func(s *sample) { s.Count = nil }, equal: false},
		{name: "different enum", mutate: func(s *sample) { s.Kind = "TMX" }, equal: false},
		{name: "slice order", mutate: func(s *sample) { s.Tags = []string{"b", "a"} }, equal: false},
		{name: "nil vs empty slice", mutate: func(s *sample) { s.Tags = nil }, equal: false},
		{name: "nested value", mutate: func(s *sample) { s.Items[0].Code = str("de") }, equal: false},
		{name: "nested pointer", mutate: func(s *sample) { s.Nested = nil }, equal: false},
		{name: "map value", mutate: func(s *sample) { s.Labels["k"] = "w" }, equal: false},
		{name: "bytes", mutate: func(s *sample) { s.Payload = []byte{1} }, equal: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := base(), base()
			tt.mutate(b)

			assert.Equal(t, tt.equal, Equal(a, b))
			assert.Equal(t, tt.equal, Equal(b, a))
			if tt.equal {
				assert.Equal(t, Hash(a), Hash(b))
			}
		})
	}
}

func TestEqual_NilPointers(t *testing.T) {
	var a, b *sample
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, &sample{}))
	assert.False(t, Equal(&sample{}, b))
	assert.True(t, Equal(&sample{}, &sample{}))
}

func TestHash_DistinguishesFields(t *testing.T) {
	a := &sample{Name: str("a")}
	b := &sample{Name: str("b")}
	c := &sample{Tags: []string{}}
	d := &sample{}

	assert.NotEqual(t, Hash(a), Hash(b))
	assert.NotEqual(t, Hash(c), Hash(d))
	assert.Equal(t, Hash(&sample{Labels: map[string]string{"x": "1", "y": "2"}}),
		Hash(&sample{Labels: map[string]string{"y": "2", "x": "1"}}))
}

func TestString(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &sample{
		Name:    str("glossary"),
		Kind:    "CSV",
		Tags:    []string{"a", "b"},
		Items:   []inner{{Code: str("en")}},
		Payload: []byte("secret"),
		Raw:     []byte("abc"),
		At:      &at,
	}

	got := String(s)
	assert.Equal(t,
		"{Name: glossary, Kind: CSV, Tags: [a, b], Items: [{Code: en}], Payload: "+Redacted+", Raw: <3 bytes>, At: 2024-03-01T12:00:00Z}",
		got)
	assert.NotContains(t, got, "secret")

	var nilSample *sample
	assert.Equal(t, "<nil>", String(nilSample))
	assert.Equal(t, "{}", String(&sample{}))
}

func TestCopySlice(t *testing.T) {
	assert.Nil(t, CopySlice[string](nil))

	src := []string{"a", "b"}
	dst := CopySlice(src)
	require.Equal(t, src, dst)

	src[0] = "z"
	assert.Equal(t, "a", dst[0])

	empty := CopySlice([]string{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAppend(t *testing.T) {
	got := Append[string](nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	items := []string{"a"}
	got = Append(got, items...)
	items[0] = "z"
	assert.Equal(t, []string{"a"}, got)

	got = Append(got, "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
