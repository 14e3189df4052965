package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestDefaultLeversAreIdentity(t *testing.T) {
	l := DefaultLevers()
	require.Equal(t, Levers{Recruitment: 1, Churn: 1, Progression: 1, Price: 1, Salary: 1}, l)
	require.NoError(t, l.Validate())
}

func TestPartialLeversDefaultUnsetFields(t *testing.T) {
	var l Levers
	require.NoError(t, json.Unmarshal([]byte(`{"churn":0.5}`), &l))
	require.Equal(t, Levers{Recruitment: 1, Churn: 0.5, Progression: 1, Price: 1, Salary: 1}, l)
}

func TestExplicitZeroLeverIsKept(t *testing.T) {
	var l Levers
	require.NoError(t, json.Unmarshal([]byte(`{"recruitment":0}`), &l))
	require.Zero(t, l.Recruitment)
	require.Equal(t, 1.0, l.Churn)
	require.NoError(t, l.Validate())
}

func TestNegativeLeverRejected(t *testing.T) {
	l := DefaultLevers()
	l.Churn = -0.5
	require.Error(t, l.Validate())

	// Zero is a valid lever: it switches the targeted flow off.
	l.Churn = 0
	require.NoError(t, l.Validate())
}
