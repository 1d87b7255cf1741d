package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "no buckets is valid",
			config:  Config{},
			wantErr: nil,
		},
		{
			name:    "empty season returns ErrInvalidBucketName",
			config:  Config{Seasons: []string{"Winter", ""}},
			wantErr: ErrInvalidBucketName,
		},
		{
			name:    "empty type returns ErrInvalidBucketName",
			config:  Config{Types: []string{""}},
			wantErr: ErrInvalidBucketName,
		},
		{
			name:    "duplicate season returns ErrDuplicateBucket",
			config:  Config{Seasons: []string{"Winter", "Winter"}},
			wantErr: ErrDuplicateBucket,
		},
		{
			name:    "names are case-sensitive",
			config:  Config{Types: []string{"Coat", "coat"}},
			wantErr: nil,
		},
		{
			name:    "same name across dimensions is allowed",
			config:  Config{Seasons: []string{"Rain"}, Types: []string{"Rain"}},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seasons[0] = "Monsoon"
	if DefaultSeasons[0] != "Spring" {
		t.Fatalf("DefaultConfig shares storage with DefaultSeasons")
	}
}
