package report

import (
	"errors"

	"github.com/google/uuid"

	"github.com/vvka-141/pesel/pkg/pesel"
)

// DateLayout is the birth date format used in every output format.
const DateLayout = "2006-01-02"

// Result is one checked input.
type Result struct {
	Input     string `json:"input" yaml:"input"`
	Valid     bool   `json:"valid" yaml:"valid"`
	BirthDate string `json:"birth_date,omitempty" yaml:"birth_date,omitempty"`
	Sex       string `json:"sex,omitempty" yaml:"sex,omitempty"`
	Reference string `json:"reference,omitempty" yaml:"reference,omitempty"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Summary counts results.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// Report is the unit handed to a Renderer.
type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// Add appends a result and updates the summary.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
	r.Summary.Total++
	if res.Valid {
		r.Summary.Valid++
	} else {
		r.Summary.Invalid++
	}
}

// HasInvalid reports whether any result was rejected.
func (r *Report) HasInvalid() bool {
	return r.Summary.Invalid > 0
}

// Builder creates Results with consistent masking and references.
// Safe for concurrent use; it holds no mutable state.
type Builder struct {
	mask      bool
	namespace uuid.UUID
}

// NewBuilder creates a Builder. namespace is hashed into a UUID v5 namespace
// under the standard URL namespace.
func NewBuilder(mask bool, namespace string) *Builder {
	return &Builder{
		mask:      mask,
		namespace: uuid.NewSHA1(uuid.NameSpaceURL, []byte(namespace)),
	}
}

// Reference returns the deterministic reference for an identifier.
func (b *Builder) Reference(raw string) string {
	return uuid.NewSHA1(b.namespace, []byte(raw)).String()
}

// Validity checks structure only (length, digits, checksum).
func (b *Builder) Validity(input string) Result {
	res := Result{Input: b.display(input), Valid: pesel.IsValid(input)}
	if res.Valid {
		res.Reference = b.Reference(input)
		return res
	}
	res.Reason = reasonFor(input)
	return res
}

// Decode fully decodes input, including the birth date.
func (b *Builder) Decode(input string) Result {
	id, ok := pesel.TryParse(input)
	if !ok {
		return Result{Input: b.display(input), Reason: reasonFor(input)}
	}
	return b.FromIdentifier(id)
}

// FromIdentifier builds a row for an already parsed identifier.
func (b *Builder) FromIdentifier(id pesel.Identifier) Result {
	return Result{
		Input:     b.display(id.Value()),
		Valid:     true,
		BirthDate: id.BirthDate().Format(DateLayout),
		Sex:       id.Sex().String(),
		Reference: b.Reference(id.Value()),
	}
}

func (b *Builder) display(input string) string {
	if b.mask {
		return Mask(input)
	}
	return input
}

// Mask hides the serial and sex digits (positions 6-9) of inputs long enough
// to contain them.
func Mask(input string) string {
	if len(input) < 10 {
		return input
	}
	return input[:6] + "****" + input[10:]
}

func reasonFor(input string) string {
	_, err := pesel.Parse(input)
	var perr *pesel.ParseError
	if errors.As(err, &perr) {
		if perr.Reason != "" {
			return perr.Reason
		}
		return perr.Err.Error()
	}
	return ""
}
