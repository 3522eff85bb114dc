package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	allowed := []string{"-t", "-l", "-s"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-t", "60", "-x", "1", "-l", "2500"},
			want: []string{"-t", "60", "-l", "2500"},
		},
		{
			name: "joined values",
			args: []string{"-s=seed.yaml", "-j=:memory:"},
			want: []string{"-s=seed.yaml"},
		},
		{
			name: "flag at end without value",
			args: []string{"-t"},
			want: []string{"-t"},
		},
		{
			name: "next token is a flag, not a value",
			args: []string{"-t", "-l", "100"},
			want: []string{"-t", "-l", "100"},
		},
		{
			name: "positional arguments ignored",
			args: []string{"seed.yaml", "t", "60"},
			want: []string{},
		},
		{
			name: "repeated flag kept in order",
			args: []string{"-t", "1", "-t", "2"},
			want: []string{"-t", "1", "-t", "2"},
		},
		{
			name: "empty",
			args: nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/bankist.json"}, want: "/etc/bankist.json"},
		{name: "long joined", args: []string{"-config=/tmp/b.json"}, want: "/tmp/b.json"},
		{name: "other flags ignored", args: []string{"-t", "30", "-v", "debug"}, want: ""},
		{name: "last wins", args: []string{"-c", "a.json", "-config", "b.json"}, want: "b.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
