package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "gridtui 1.2.3" {
		t.Errorf("--version = %q", out)
	}
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "built-in demo",
			args:     []string{"resolve", "--width", "60", "--height", "20"},
			contains: []string{"built-in demo at 60x20", "cont", "Button1", "Button7", "prompt"},
		},
		{
			name:    "missing file",
			args:    []string{"resolve", filepath.Join(t.TempDir(), "missing.toml")},
			wantErr: true,
		},
		{
			name:    "too many args",
			args:    []string{"resolve", "a.toml", "b.toml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output missing %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestResolveCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	layout := "[[component]]\nid = \"sidebar\"\n[component.style]\nwidth = \"25%\"\n"
	if err := os.WriteFile(path, []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "resolve", path, "--width", "40", "--height", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "sidebar") {
		t.Errorf("output missing sidebar:\n%s", out)
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--frames", "3", "--components", "4", "--incremental")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"3 frames over 4 components", "repainted", "reused", "color seqs"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}

	if _, err := execute(t, "bench", "--frames", "0"); err == nil {
		t.Error("bench with zero frames should fail")
	}
}

func TestBenchTree(t *testing.T) {
	tree, err := benchTree(5)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 7 {
		t.Errorf("Len() = %d, want root + container + 5 buttons", tree.Len())
	}
}
