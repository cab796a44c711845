package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testNamespace = "pesel/identifier-ref/v1"

func TestBuilder_Reference_Deterministic(t *testing.T) {
	b := NewBuilder(false, testNamespace)

	// uuid5(uuid5(URL, namespace), raw)
	assert.Equal(t, "38d93530-64ff-5ca1-b5b5-ce6ccdddb256", b.Reference("44051401359"))
	assert.Equal(t, "16b024a9-bbf5-5959-9c27-a3ce81e811e7", b.Reference("05323100048"))
	assert.Equal(t, b.Reference("44051401359"), NewBuilder(true, testNamespace).Reference("44051401359"))
}

func TestBuilder_Reference_NamespaceMatters(t *testing.T) {
	a := NewBuilder(false, testNamespace).Reference("44051401359")
	b := NewBuilder(false, "other/namespace").Reference("44051401359")
	assert.NotEqual(t, a, b)
}

func TestBuilder_Validity(t *testing.T) {
	b := NewBuilder(false, testNamespace)

	ok := b.Validity("44051401359")
	assert.True(t, ok.Valid)
	assert.Equal(t, "44051401359", ok.Input)
	assert.NotEmpty(t, ok.Reference)
	assert.Empty(t, ok.BirthDate)
	assert.Empty(t, ok.Reason)

	// Structurally valid although the date does not exist.
	dayOff := b.Validity("90053201237")
	assert.True(t, dayOff.Valid)

	bad := b.Validity("44051401358")
	assert.False(t, bad.Valid)
	assert.Equal(t, "check digit does not match", bad.Reason)
	assert.Empty(t, bad.Reference)

	empty := b.Validity("")
	assert.False(t, empty.Valid)
	assert.Equal(t, "missing input", empty.Reason)
}

func TestBuilder_Decode(t *testing.T) {
	b := NewBuilder(false, testNamespace)

	res := b.Decode("05323100048")
	assert.True(t, res.Valid)
	assert.Equal(t, "2005-12-31", res.BirthDate)
	assert.Equal(t, "female", res.Sex)
	assert.Equal(t, "16b024a9-bbf5-5959-9c27-a3ce81e811e7", res.Reference)

	bad := b.Decode("90053201237")
	assert.False(t, bad.Valid)
	assert.Equal(t, "day out of range", bad.Reason)
	assert.Empty(t, bad.BirthDate)
}

func TestBuilder_Masking(t *testing.T) {
	b := NewBuilder(true, testNamespace)

	res := b.Decode("44051401359")
	assert.Equal(t, "440514****9", res.Input)
	assert.Equal(t, "38d93530-64ff-5ca1-b5b5-ce6ccdddb256", res.Reference)
}

func TestMask(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"44051401359", "440514****9"},
		{"4405140135", "440514****"},
		{"440514013", "440514013"},
		{"", ""},
		{"440514013590", "440514****90"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mask(tt.in), "input %q", tt.in)
	}
}

func TestReport_Add(t *testing.T) {
	var r Report
	b := NewBuilder(false, testNamespace)
	r.Add(b.Validity("44051401359"))
	r.Add(b.Validity("123"))
	r.Add(b.Validity("05323100048"))

	assert.Equal(t, Summary{Total: 3, Valid: 2, Invalid: 1}, r.Summary)
	assert.True(t, r.HasInvalid())
	assert.Len(t, r.Results, 3)
}
