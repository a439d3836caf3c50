// Package analysis defines the normalized analysis result produced by the
// pipeline and the repair logic that keeps it well formed regardless of how
// the upstream text oracle misbehaves
package analysis

import "encoding/json"

// Record is one input item: an email reduced to the fields the oracle sees.
// Records are caller supplied and never persisted by this core
type Record struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Classification holds counts for the four fixed sentiment categories.
// A struct rather than a map so every result carries all four keys
type Classification struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
	Other    int `json:"other"`
}

// Total returns the sum of all category counts
func (c Classification) Total() int {
	return c.Positive + c.Negative + c.Neutral + c.Other
}

// Add returns the elementwise sum of c and o
func (c Classification) Add(o Classification) Classification {
	return Classification{
		Positive: c.Positive + o.Positive,
		Negative: c.Negative + o.Negative,
		Neutral:  c.Neutral + o.Neutral,
		Other:    c.Other + o.Other,
	}
}

// clamp zeroes any negative category count
func (c Classification) clamp() Classification {
	z := func(n int) int {
		if n < 0 {
			return 0
		}
		return n
	}
	return Classification{
		Positive: z(c.Positive),
		Negative: z(c.Negative),
		Neutral:  z(c.Neutral),
		Other:    z(c.Other),
	}
}

// Highlight is one notable theme surfaced by the oracle.
// Count and Percentage are populated by merge rounds; a freshly classified
// batch usually carries text only
type Highlight struct {
	Text       string  `json:"text"`
	Count      int     `json:"count,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
}

// UnmarshalJSON accepts either a bare string or the structured form, since
// the oracle is inconsistent about which it emits
func (h *Highlight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		h.Text = s
		h.Count = 0
		h.Percentage = 0
		return nil
	}
	type plain Highlight
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		*h = Highlight(p)
		return nil
	}
	// unusable element; zero value is filtered out during repair
	*h = Highlight{}
	return nil
}

// Result is the normalized unit produced by both batch classification and
// merge rounds. Every Result, however produced, has all four fields present
// and well typed; Repair guarantees this
type Result struct {
	TotalEmails    int            `json:"total_emails"`
	Classification Classification `json:"classification"`
	Highlights     []Highlight    `json:"highlights"`
	Summary        string         `json:"summary"`
}

// JSON renders the result as its canonical JSON form.
// Marshaling a Result cannot fail; errors are swallowed into "{}"
func (r Result) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return "{}"
	}
	return string(b)
}
