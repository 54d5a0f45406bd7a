package initcmd

import (
	"testing"

	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	t.Run("create", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		ctrl := New(fs)
		if err := ctrl.Init(".pinbump.yaml"); err != nil {
			t.Fatal(err)
		}
		b, err := afero.ReadFile(fs, ".pinbump.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != templateConfig {
			t.Fatalf("wanted %q, got %q", templateConfig, string(b))
		}
	})
	t.Run("don't overwrite an existing file", func(t *testing.T) {
		t.Parallel()
		fs := afero.NewMemMapFs()
		if err := afero.WriteFile(fs, ".pinbump.yaml", []byte("files: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		ctrl := New(fs)
		if err := ctrl.Init(".pinbump.yaml"); err != nil {
			t.Fatal(err)
		}
		b, err := afero.ReadFile(fs, ".pinbump.yaml")
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != "files: []\n" {
			t.Fatal("the existing file must not be overwritten")
		}
	})
}
