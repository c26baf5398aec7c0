package appargs

import (
	"flag"
	"testing"

	"github.com/urfave/cli"
)

func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cli.NewContext(nil, set, nil)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		validators []Validator
		args       []string
		wantErr    bool
	}{
		{"optional absent", []Validator{Optional}, nil, false},
		{"optional present", []Validator{Optional}, []string{"folder"}, false},
		{"required present", []Validator{NonEmptyString}, []string{"path"}, false},
		{"required absent", []Validator{NonEmptyString}, nil, true},
		{"required empty", []Validator{NonEmptyString}, []string{""}, true},
		{"trailing junk", []Validator{NonEmptyString}, []string{"path", "extra"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.validators...)(testContext(t, tt.args...))
			if tt.wantErr && err == nil {
				t.Fatal("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
