package config

import "testing"

func TestSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		key     string
		want    string
	}{
		{
			name:    "plain pair",
			environ: []string{"AWS_REGION=us-west-2"},
			key:     "AWS_REGION",
			want:    "us-west-2",
		},
		{
			name:    "value containing equals",
			environ: []string{"COGNITO_IDENTITY_POOL=pool=extra"},
			key:     "COGNITO_IDENTITY_POOL",
			want:    "pool=extra",
		},
		{
			name:    "empty value",
			environ: []string{"PHOTO_REPO_S3_BUCKET="},
			key:     "PHOTO_REPO_S3_BUCKET",
			want:    "",
		},
		{
			name:    "absent key",
			environ: []string{"AWS_REGION=us-west-2"},
			key:     "IMAGE_METADATA_TABLE",
			want:    "",
		},
		{
			name:    "later entry wins",
			environ: []string{"AWS_REGION=us-west-2", "AWS_REGION=eu-west-1"},
			key:     "AWS_REGION",
			want:    "eu-west-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := Snapshot(tt.environ)
			if got := env[tt.key]; got != tt.want {
				t.Errorf("Snapshot()[%q] = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSnapshotSize(t *testing.T) {
	env := Snapshot([]string{"A=1", "B=2", "A=3"})
	if len(env) != 2 {
		t.Errorf("Snapshot() has %d keys, want 2", len(env))
	}
}
