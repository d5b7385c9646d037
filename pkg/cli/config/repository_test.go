package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/release-info/pkg/cli/config"
)

func TestRepository_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Repository
		wantErr   bool
		wantOwner string
		wantRepo  string
	}{
		{
			name:      "valid",
			cfg:       config.Repository{Owner: "octo", Repo: "hello", OutPath: "release.json"},
			wantOwner: "octo",
			wantRepo:  "hello",
		},
		{
			name:      "surrounding whitespace is trimmed",
			cfg:       config.Repository{Owner: "  octo\n", Repo: "\thello "},
			wantOwner: "octo",
			wantRepo:  "hello",
		},
		{
			name:      "out-path is optional",
			cfg:       config.Repository{Owner: "octo", Repo: "hello.go"},
			wantOwner: "octo",
			wantRepo:  "hello.go",
		},
		{
			name:    "missing owner",
			cfg:     config.Repository{Repo: "hello"},
			wantErr: true,
		},
		{
			name:    "blank repo",
			cfg:     config.Repository{Owner: "octo", Repo: "   "},
			wantErr: true,
		},
		{
			name:    "owner/repo given as owner",
			cfg:     config.Repository{Owner: "octo/hello", Repo: "hello"},
			wantErr: true,
		},
		{
			name:    "space inside repo",
			cfg:     config.Repository{Owner: "octo", Repo: "hel lo"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}

			gt.NoError(t, err)
			ref := cfg.Ref()
			gt.Value(t, ref.Owner).Equal(tt.wantOwner)
			gt.Value(t, ref.Repo).Equal(tt.wantRepo)
		})
	}
}
