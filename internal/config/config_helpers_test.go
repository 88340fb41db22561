package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", 42},
		{"valid integer", "100", 100},
		{"invalid integer uses default", "not-a-number", 42},
		{"negative", "-10", -10},
		{"zero", "0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsInt("TEST_INT_VAR", 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset uses default", "", 5 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"compound", "1h30m", 90 * time.Minute},
		{"bare number uses default", "300", 5 * time.Minute},
		{"garbage uses default", "soon", 5 * time.Minute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
		})
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_VAR", "2.5")
	assert.Equal(t, 2.5, getEnvAsFloat("TEST_FLOAT_VAR", 1))

	t.Setenv("TEST_FLOAT_VAR", "x")
	assert.Equal(t, 1.0, getEnvAsFloat("TEST_FLOAT_VAR", 1))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,, b "))
}
