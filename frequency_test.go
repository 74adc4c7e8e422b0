package recurrence

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyStringKnownValues(t *testing.T) {
	assert.Equal(t, "DAILY", Daily.String())
	assert.Equal(t, "YEARLY", Yearly.String())
}

func TestFrequencyStringPanicsOnUnknownValue(t *testing.T) {
	assert.Panics(t, func() { _ = Frequency(99).String() })
}

func TestFrequencySubDaily(t *testing.T) {
	assert.True(t, Hourly.subDaily())
	assert.False(t, Daily.subDaily())
}

func TestFrequencyJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Weekly)
	require.NoError(t, err)
	assert.Equal(t, "4", string(b))

	var got Frequency
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, Weekly, got)
}

func TestFrequencyUnmarshalAcceptsNumericString(t *testing.T) {
	var got Frequency
	require.NoError(t, json.Unmarshal([]byte(`"6"`), &got))
	assert.Equal(t, Yearly, got)
}

func TestFrequencyUnmarshalRejectsNonNumeric(t *testing.T) {
	var got Frequency
	err := json.Unmarshal([]byte(`"not-a-number"`), &got)
	require.Error(t, err)
	var ruleErr *RuleError
	assert.ErrorAs(t, err, &ruleErr)
}
