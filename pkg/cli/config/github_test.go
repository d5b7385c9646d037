package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/release-info/pkg/cli/config"
)

func TestGitHub_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.GitHub
		wantErr bool
	}{
		{
			name: "token",
			cfg:  config.GitHub{Token: "token"},
		},
		{
			name: "github app",
			cfg:  config.GitHub{AppID: 1, InstallationID: 2, PrivateKey: "key"},
		},
		{
			name:    "nothing",
			cfg:     config.GitHub{},
			wantErr: true,
		},
		{
			name:    "blank token",
			cfg:     config.GitHub{Token: "  "},
			wantErr: true,
		},
		{
			name:    "incomplete github app",
			cfg:     config.GitHub{AppID: 1, PrivateKey: "key"},
			wantErr: true,
		},
		{
			name:    "token and github app",
			cfg:     config.GitHub{Token: "token", AppID: 1, InstallationID: 2, PrivateKey: "key"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := cfg.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestGitHub_NewClient(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		cfg := config.GitHub{Token: "token", APIURL: "https://api.github.com"}
		client, err := cfg.NewClient()
		gt.NoError(t, err)
		gt.Value(t, client).NotNil()
	})

	t.Run("invalid api url", func(t *testing.T) {
		cfg := config.GitHub{Token: "token", APIURL: "not a url"}
		_, err := cfg.NewClient()
		gt.Error(t, err)
	})
}
