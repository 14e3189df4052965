package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testPerson(id string, role Role, level Level) *Person {
	hired := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &Person{
		ID: id, Role: role, Level: level, Office: "oslo",
		HireDate: hired, LevelStart: hired, Active: true,
	}
}

func TestRosterShapeResolvedOnFirstAdd(t *testing.T) {
	s := NewOfficeState("oslo")
	require.NoError(t, s.Add(testPerson("a", "consultant", "A")))
	require.NoError(t, s.Add(testPerson("b", "support", NoLevel)))

	require.True(t, s.Roles["consultant"].Leveled)
	require.False(t, s.Roles["support"].Leveled)

	// Mixing shapes within a role is a consistency violation.
	require.Error(t, s.Add(testPerson("c", "consultant", NoLevel)))
	require.Error(t, s.Add(testPerson("d", "support", "A")))
}

func TestRemoveDropsFromLiveRoster(t *testing.T) {
	s := NewOfficeState("oslo")
	a := testPerson("a", "consultant", "A")
	b := testPerson("b", "consultant", "A")
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	s.Remove(a)
	remaining := s.ActiveAt("consultant", "A")
	require.Len(t, remaining, 1)
	require.Equal(t, "b", remaining[0].ID)
	require.Equal(t, 1, s.ActiveCount())
}

func TestMoveLevelRelocates(t *testing.T) {
	s := NewOfficeState("oslo")
	a := testPerson("a", "consultant", "A")
	require.NoError(t, s.Add(a))

	require.NoError(t, s.MoveLevel(a, "B"))
	a.Level = "B"

	require.Empty(t, s.ActiveAt("consultant", "A"))
	require.Len(t, s.ActiveAt("consultant", "B"), 1)

	flat := testPerson("f", "support", NoLevel)
	require.NoError(t, s.Add(flat))
	require.Error(t, s.MoveLevel(flat, "A"))
}

func TestHeadcountSkipsInactive(t *testing.T) {
	s := NewOfficeState("oslo")
	a := testPerson("a", "consultant", "A")
	b := testPerson("b", "consultant", "A")
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	b.Active = false
	require.Equal(t, 1, s.ActiveCount())
	require.Equal(t, map[Role]map[Level]int{"consultant": {"A": 1}}, s.Headcount())
}

func TestTenureMonths(t *testing.T) {
	p := testPerson("a", "consultant", "A")
	asOf := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 24, p.TenureMonths(asOf))
	require.Equal(t, 0, p.TenureMonths(p.HireDate))
	// Tenure never goes negative.
	require.Equal(t, 0, p.TenureMonths(p.HireDate.AddDate(-1, 0, 0)))
}
