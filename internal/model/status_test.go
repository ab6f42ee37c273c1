package model

import "testing"

func TestRunStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   RunStatus
		expected bool
	}{
		{RunStatusIdle, false},
		{RunStatusRunning, true},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("RunStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestRunStatus_String(t *testing.T) {
	status := RunStatusRunning
	expected := "Running"
	result := status.String()

	if result != expected {
		t.Errorf("RunStatus.String() = %s, expected %s", result, expected)
	}
}

func TestStatusOf(t *testing.T) {
	if StatusOf(true) != RunStatusRunning {
		t.Errorf("StatusOf(true) = %s, expected %s", StatusOf(true), RunStatusRunning)
	}
	if StatusOf(false) != RunStatusIdle {
		t.Errorf("StatusOf(false) = %s, expected %s", StatusOf(false), RunStatusIdle)
	}
}
