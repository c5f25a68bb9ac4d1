package doctor

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCheck struct {
	mock.Mock
}

func (m *mockCheck) Name() string     { return m.Called().String(0) }
func (m *mockCheck) Category() string { return "test" }

func (m *mockCheck) Run(ctx context.Context) *CheckResult {
	return m.Called(ctx).Get(0).(*CheckResult)
}

func newMockCheck(name string, status Severity) *mockCheck {
	c := &mockCheck{}
	c.On("Name").Return(name).Maybe()
	c.On("Run", mock.Anything).Return(&CheckResult{Name: name, Status: status}).Once()
	return c
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []Severity
		want         Summary
		wantErrors   bool
		wantWarnings bool
	}{
		{"empty", nil, Summary{}, false, false},
		{"all pass", []Severity{SeverityPass, SeverityPass}, Summary{Passed: 2}, false, false},
		{"info only", []Severity{SeverityInfo}, Summary{Info: 1}, false, false},
		{"warning", []Severity{SeverityPass, SeverityWarning}, Summary{Passed: 1, Warnings: 1}, false, true},
		{"mixed", []Severity{SeverityError, SeverityWarning, SeverityInfo, SeverityPass}, Summary{1, 1, 1, 1}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var checks []*mockCheck
			var registered []Check
			for i, s := range tt.statuses {
				c := newMockCheck(string(rune('a'+i)), s)
				checks = append(checks, c)
				registered = append(registered, c)
			}
			r := NewRunner(registered...)

			report := r.Run(t.Context())
			assert.Equal(t, tt.want, report.Summary)
			assert.Len(t, report.Results, len(tt.statuses))
			assert.Equal(t, tt.wantErrors, report.HasErrors())
			assert.Equal(t, tt.wantWarnings, report.HasWarnings())
			for _, c := range checks {
				c.AssertExpectations(t)
			}
		})
	}
}

func TestRunner_OrderAndTimestamp(t *testing.T) {
	r := NewRunner(newMockCheck("first", SeverityPass), newMockCheck("second", SeverityPass))
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600)) }

	report := r.Run(t.Context())
	require.Len(t, report.Results, 2)
	assert.Equal(t, "first", report.Results[0].Name)
	assert.Equal(t, "second", report.Results[1].Name)
	assert.Equal(t, time.UTC, report.Timestamp.Location())
	assert.Len(t, r.Checks(), 2)
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(&CheckResult{Name: "x", Status: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"warning"`)
	assert.Equal(t, "unknown", Severity(42).String())
}
