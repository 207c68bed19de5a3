package launcher

import (
	"strings"
	"testing"
)

func TestExecErrors(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		wantErr string
	}{
		{
			name:    "empty argv",
			argv:    nil,
			wantErr: "no command provided",
		},
		{
			name:    "command not found",
			argv:    []string{"webappinit-no-such-command"},
			wantErr: "looking up",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Exec(tt.argv, nil)
			if err == nil {
				t.Fatal("Exec() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Exec() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
