package config

import (
	"os"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		env     string
		want    Config
		wantErr bool
	}{
		{
			name: "no config file",
			want: Config{Dir: "."},
		},
		{
			name:  "yaml file",
			files: map[string]string{".cra2parcel.yaml": "dir: web\ntheme: dracula\nassume-yes: true\n"},
			want:  Config{Dir: "web", Theme: "dracula", AssumeYes: true},
		},
		{
			name:  "yml file",
			files: map[string]string{".cra2parcel.yml": "theme: charm\n"},
			want:  Config{Dir: ".", Theme: "charm"},
		},
		{
			name:  "toml file",
			files: map[string]string{".cra2parcel.toml": "dir = \"frontend\"\nassume-yes = true\n"},
			want:  Config{Dir: "frontend", AssumeYes: true},
		},
		{
			name: "yaml wins over toml",
			files: map[string]string{
				".cra2parcel.yaml": "dir: from-yaml\n",
				".cra2parcel.toml": "dir = \"from-toml\"\n",
			},
			want: Config{Dir: "from-yaml"},
		},
		{
			name:  "empty yaml file",
			files: map[string]string{".cra2parcel.yaml": ""},
			want:  Config{Dir: "."},
		},
		{
			name:  "env overrides file",
			files: map[string]string{".cra2parcel.yaml": "dir: web\ntheme: base\n"},
			env:   "/srv/app/",
			want:  Config{Dir: "/srv/app", Theme: "base"},
		},
		{
			name:    "unknown yaml key",
			files:   map[string]string{".cra2parcel.yaml": "path: .version\n"},
			wantErr: true,
		},
		{
			name:    "unknown toml key",
			files:   map[string]string{".cra2parcel.toml": "path = \".version\"\n"},
			wantErr: true,
		},
		{
			name:    "invalid yaml",
			files:   map[string]string{".cra2parcel.yaml": ": this is invalid"},
			wantErr: true,
		},
		{
			name:    "env path traversal rejected",
			env:     "../../etc",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inTempDir(t, tt.files)
			if tt.env != "" {
				t.Setenv(DirEnv, tt.env)
			}

			cfg, err := LoadConfigFn()
			checkError(t, err, tt.wantErr)
			if tt.wantErr {
				if cfg != nil {
					t.Errorf("expected nil config on error, got %+v", cfg)
				}
				return
			}
			checkConfig(t, cfg, tt.want)
		})
	}
}

func TestLoadConfig_ReadError(t *testing.T) {
	inTempDir(t, nil)
	if err := os.Mkdir(".cra2parcel.yaml", 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfigFn()
	checkError(t, err, true)
	if cfg != nil {
		t.Errorf("expected nil config, got %+v", cfg)
	}
}

func TestDefault(t *testing.T) {
	checkConfig(t, Default(), Config{Dir: "."})
}
