package logger

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		wantErr bool
	}{
		{name: "development default", env: "development"},
		{name: "production with level", env: "production", level: "warn"},
		{name: "invalid level", env: "development", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.env, tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.wantErr)
			}
			if Get() == nil {
				t.Fatalf("Get() returned nil logger")
			}
		})
	}
}

func TestNamed(t *testing.T) {
	if err := Init("development", "debug"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Named("consumer") == nil {
		t.Fatalf("Named() returned nil logger")
	}
}
