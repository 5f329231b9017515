package suite

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestRun_EvaluatesEntries(t *testing.T) {
	ws := &Worksheet{
		Name: "basics",
		Entries: []Entry{
			{
				ID:         "and-false",
				Expression: "A AND B",
				Assignment: map[string]bool{"A": true, "B": false},
				Expect:     &Expect{Result: boolPtr(false)},
			},
			{
				ID:         "not-or",
				Expression: "NOT A OR B",
				Expect:     &Expect{Result: boolPtr(true)},
			},
			{
				ID:         "constant",
				Expression: "TRUE AND FALSE",
				Expect:     &Expect{Result: boolPtr(false), Variables: []string{}},
			},
		},
	}

	report := Run(ws)

	require.Len(t, report.Results, 3)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, "basics", report.Worksheet)
	assert.True(t, report.Passed())

	for _, res := range report.Results {
		assert.True(t, res.Passed, "entry %s: %v", res.ID, res.Failures)
		assert.Empty(t, res.Err)
	}
}

func TestRun_ExpectationFailure(t *testing.T) {
	ws := &Worksheet{
		Name: "failing",
		Entries: []Entry{
			{
				ID:         "wrong",
				Expression: "TRUE",
				Expect:     &Expect{Result: boolPtr(false)},
			},
		},
	}

	report := Run(ws)

	require.Len(t, report.Results, 1)
	assert.False(t, report.Passed())
	assert.False(t, report.Results[0].Passed)
	require.Len(t, report.Results[0].Failures, 1)
	assert.Contains(t, report.Results[0].Failures[0], "result")
}

func TestRun_TautologyAndContradiction(t *testing.T) {
	ws := &Worksheet{
		Name: "classics",
		Entries: []Entry{
			{
				ID:         "excluded-middle",
				Expression: "P OR NOT P",
				Expect:     &Expect{Tautology: boolPtr(true)},
			},
			{
				ID:         "contradiction",
				Expression: "P AND NOT P",
				Expect:     &Expect{Contradiction: boolPtr(true)},
			},
			{
				ID:         "contingent",
				Expression: "P OR Q",
				Expect:     &Expect{Tautology: boolPtr(false), Contradiction: boolPtr(false)},
			},
			{
				ID:         "constant-tautology",
				Expression: "TRUE OR FALSE",
				Expect:     &Expect{Tautology: boolPtr(true)},
			},
		},
	}

	report := Run(ws)

	assert.True(t, report.Passed())
	for _, res := range report.Results {
		assert.True(t, res.Passed, "entry %s: %v", res.ID, res.Failures)
	}
}

func TestRun_BadExpressionIsolated(t *testing.T) {
	ws := &Worksheet{
		Name: "mixed",
		Entries: []Entry{
			{ID: "broken", Expression: "A AND"},
			{ID: "fine", Expression: "A OR B", Expect: &Expect{Variables: []string{"A", "B"}}},
		},
	}

	report := Run(ws)

	require.Len(t, report.Results, 2)
	assert.False(t, report.Results[0].Passed)
	assert.NotEmpty(t, report.Results[0].Err)
	assert.True(t, report.Results[1].Passed)
	assert.False(t, report.Passed())
}

func TestRun_VariableExpectationMismatch(t *testing.T) {
	ws := &Worksheet{
		Name: "vars",
		Entries: []Entry{
			{
				ID:         "missing-var",
				Expression: "A AND B",
				Expect:     &Expect{Variables: []string{"A"}},
			},
		},
	}

	report := Run(ws)

	assert.False(t, report.Passed())
	require.Len(t, report.Results[0].Failures, 1)
	assert.Contains(t, report.Results[0].Failures[0], "variables")
}
