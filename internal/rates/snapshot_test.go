package rates

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
	"meta": {"last_updated_at": "2023-06-23T23:59:59Z"},
	"data": {
		"EUR": {"code": "EUR", "value": 0.9},
		"USD": {"code": "USD", "value": 1.0},
		"JPY": {"code": "JPY", "value": 143.5}
	}
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	assert.Equal(t, "2023-06-23T23:59:59Z", s.Meta.LastUpdatedAt)
	if diff := cmp.Diff([]string{"EUR", "JPY", "USD"}, s.Codes()); diff != "" {
		t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
	}

	rate, ok := s.Rate("JPY")
	assert.True(t, ok)
	assert.Equal(t, 143.5, rate)

	_, ok = s.Rate("jpy")
	assert.False(t, ok, "lookup is by canonical uppercase code")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"empty object", `{}`},
		{"bad timestamp", `{"meta":{"last_updated_at":"yesterday"},"data":{"USD":{"code":"USD","value":1}}}`},
		{"no currencies", `{"meta":{"last_updated_at":"2023-06-23T23:59:59Z"},"data":{}}`},
		{"zero rate", `{"meta":{"last_updated_at":"2023-06-23T23:59:59Z"},"data":{"USD":{"code":"USD","value":0}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}

func TestSnapshot_IsCurrent(t *testing.T) {
	s := New(time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), map[string]float64{"usd": 1})

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"same instant", time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC), true},
		{"end of day", time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), true},
		{"next day", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), false},
		{"previous year", time.Date(2023, 3, 10, 8, 0, 0, 0, time.UTC), false},
		{"same UTC day in another zone", time.Date(2024, 3, 10, 20, 0, 0, 0, time.FixedZone("EST", -5*3600)), false},
		{"local date differs but UTC matches", time.Date(2024, 3, 9, 22, 0, 0, 0, time.FixedZone("EST", -5*3600)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsCurrent(tt.now))
		})
	}
}

func TestSnapshot_IsCurrent_BadTimestamp(t *testing.T) {
	s := &Snapshot{Meta: Meta{LastUpdatedAt: "garbage"}}
	assert.False(t, s.IsCurrent(time.Now()))
}

func TestSnapshot_AsOf(t *testing.T) {
	s, err := Parse([]byte(sampleDocument))
	require.NoError(t, err)

	got, err := s.AsOf()
	require.NoError(t, err)
	assert.Equal(t, "23 Jun 23:59 UTC", got)

	offset := &Snapshot{Meta: Meta{LastUpdatedAt: "2023-06-24T01:30:00+02:00"}}
	got, err = offset.AsOf()
	require.NoError(t, err)
	assert.Equal(t, "23 Jun 23:30 UTC", got)
}

func TestNew_UppercasesCodes(t *testing.T) {
	s := New(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), map[string]float64{"usd": 1, "Eur": 0.9})

	assert.Equal(t, []string{"EUR", "USD"}, s.Codes())
	assert.Equal(t, "EUR", s.Data["EUR"].Code)
	assert.Equal(t, "2024-01-02T03:04:05Z", s.Meta.LastUpdatedAt)
	assert.NoError(t, s.Validate())
}

func TestSnapshot_MarshalRoundTrip(t *testing.T) {
	s := New(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), map[string]float64{"USD": 1, "EUR": 0.9})

	body, err := s.Marshal()
	require.NoError(t, err)

	got, err := Parse(body)
	require.NoError(t, err)
	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Clone(t *testing.T) {
	s := New(time.Now(), map[string]float64{"USD": 1})
	c := s.Clone()
	c.Data["EUR"] = CurrencyData{Code: "EUR", Value: 0.9}

	_, ok := s.Rate("EUR")
	assert.False(t, ok)
}
