package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		valid     bool
		issuePath string
	}{
		{name: "empty", yaml: "", valid: true},
		{name: "full", yaml: "packaged: false\ndev_root: /src/app\nlink_path: /usr/local/bin/ollama\nexecutable: ollama\nelevation: auto\nlog_level: INFO\n", valid: true},
		{name: "bad elevation", yaml: "elevation: always\n", issuePath: "/elevation"},
		{name: "relative link path", yaml: "link_path: bin/ollama\n", issuePath: "/link_path"},
		{name: "executable with slash", yaml: "executable: ../ollama\n", issuePath: "/executable"},
		{name: "packaged not bool", yaml: "packaged: yes please\n", issuePath: "/packaged"},
		{name: "unknown key", yaml: "colour: blue\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Empty(t, result.Issues)
				return
			}
			require.NotEmpty(t, result.Issues)
			if tt.issuePath != "" {
				assert.Equal(t, tt.issuePath, result.Issues[0].Path)
			}
			assert.NotEmpty(t, result.Issues[0].Message)
		})
	}
}

func TestValidateUnparseable(t *testing.T) {
	_, err := Validate([]byte("link_path: [unclosed\n"))
	assert.Error(t, err)
}
