package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EDU2JOB_TEST_SET", "from-env")
	t.Setenv("EDU2JOB_TEST_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"set variable", "base: ${EDU2JOB_TEST_SET}", "base: from-env"},
		{"set variable ignores default", "${EDU2JOB_TEST_SET:-fallback}", "from-env"},
		{"unset variable with default", "${EDU2JOB_TEST_UNSET:-fallback}", "fallback"},
		{"unset variable without default", "x${EDU2JOB_TEST_UNSET}y", "xy"},
		{"empty variable uses default", "${EDU2JOB_TEST_EMPTY:-fallback}", "fallback"},
		{"no references", "plain text", "plain text"},
		{"multiple references", "${EDU2JOB_TEST_SET}/${EDU2JOB_TEST_UNSET:-v2}", "from-env/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandEnv(tt.input))
		})
	}
}

func TestMissingEnvVars(t *testing.T) {
	t.Setenv("EDU2JOB_TEST_SET", "value")

	input := "${EDU2JOB_TEST_SET} ${EDU2JOB_TEST_UNSET} ${EDU2JOB_TEST_UNSET} ${EDU2JOB_TEST_DEFAULTED:-d}"
	missing := MissingEnvVars(input)

	assert.Equal(t, []string{"EDU2JOB_TEST_UNSET"}, missing)
}
