package rates

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// AsOfLayout formats the snapshot timestamp for display, e.g. "23 Jun 23:59 UTC".
const AsOfLayout = "02 Jan 15:04 UTC"

// Snapshot is one published set of exchange rates. Every value is relative
// to the same reference currency, so only ratios between codes matter.
type Snapshot struct {
	Meta Meta                    `json:"meta"`
	Data map[string]CurrencyData `json:"data"`
}

// Meta carries the publication timestamp (RFC 3339).
type Meta struct {
	LastUpdatedAt string `json:"last_updated_at"`
}

// CurrencyData is the rate of a single currency code.
type CurrencyData struct {
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// New builds a snapshot from a code to rate mapping.
func New(lastUpdated time.Time, values map[string]float64) *Snapshot {
	s := &Snapshot{
		Meta: Meta{LastUpdatedAt: lastUpdated.UTC().Format(time.RFC3339)},
		Data: make(map[string]CurrencyData, len(values)),
	}
	for code, v := range values {
		code = strings.ToUpper(code)
		s.Data[code] = CurrencyData{Code: code, Value: v}
	}
	return s
}

// Parse decodes and validates a snapshot document.
func Parse(body []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to decode rates: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal encodes the snapshot in its wire format.
func (s *Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// Validate checks the timestamp and that every rate is usable as a divisor.
func (s *Snapshot) Validate() error {
	if _, err := s.LastUpdated(); err != nil {
		return err
	}
	if len(s.Data) == 0 {
		return fmt.Errorf("rates document has no currencies")
	}
	for code, d := range s.Data {
		if d.Value <= 0 {
			return fmt.Errorf("rate for %s must be positive, got %v", code, d.Value)
		}
	}
	return nil
}

// LastUpdated parses the publication timestamp.
func (s *Snapshot) LastUpdated() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s.Meta.LastUpdatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last_updated_at %q: %w", s.Meta.LastUpdatedAt, err)
	}
	return t, nil
}

// IsCurrent reports whether the snapshot was published on the same UTC
// calendar day as now. An unparsable timestamp is never current.
func (s *Snapshot) IsCurrent(now time.Time) bool {
	t, err := s.LastUpdated()
	if err != nil {
		return false
	}
	y1, m1, d1 := t.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AsOf renders the publication timestamp for display.
func (s *Snapshot) AsOf() (string, error) {
	t, err := s.LastUpdated()
	if err != nil {
		return "", err
	}
	return t.UTC().Format(AsOfLayout), nil
}

// Rate returns the value of an uppercase currency code.
func (s *Snapshot) Rate(code string) (float64, bool) {
	d, ok := s.Data[code]
	if !ok {
		return 0, false
	}
	return d.Value, true
}

// Codes returns the supported currency codes in sorted order.
func (s *Snapshot) Codes() []string {
	codes := make([]string, 0, len(s.Data))
	for code := range s.Data {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns a deep copy.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Meta: s.Meta,
		Data: make(map[string]CurrencyData, len(s.Data)),
	}
	for k, v := range s.Data {
		c.Data[k] = v
	}
	return c
}
