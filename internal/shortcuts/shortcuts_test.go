package shortcuts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmezquita/workspacectl/internal/template"
)

func TestSync_WritesAndRemoves(t *testing.T) {
	dir := t.TempDir()

	// A stale launcher from a deleted template, plus a foreign file
	// that must be left alone.
	stale := filepath.Join(dir, "workspacectl-old.desktop")
	foreign := filepath.Join(dir, "firefox.desktop")
	for _, p := range []string{stale, foreign} {
		if err := os.WriteFile(p, []byte("[Desktop Entry]\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	res, err := Sync([]template.Info{
		{Name: "dev", Description: "Editor plus terminals"},
		{Name: "broken", Err: "yaml: bad"},
	}, dir)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if len(res.Written) != 1 || res.Written[0] != "workspacectl-dev.desktop" {
		t.Errorf("written = %v", res.Written)
	}
	if len(res.Removed) != 1 || res.Removed[0] != "workspacectl-old.desktop" {
		t.Errorf("removed = %v", res.Removed)
	}

	data, err := os.ReadFile(filepath.Join(dir, "workspacectl-dev.desktop"))
	if err != nil {
		t.Fatalf("read launcher: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"[Desktop Entry]",
		"Name=Workspace: dev",
		"Comment=Editor plus terminals",
		"Exec=workspacectl launch dev",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("launcher missing %q:\n%s", want, content)
		}
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale launcher was not removed")
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Error("foreign .desktop file must not be touched")
	}
	if _, err := os.Stat(filepath.Join(dir, "workspacectl-broken.desktop")); !os.IsNotExist(err) {
		t.Error("unparseable template must not get a launcher")
	}
}

func TestDesktopEntry_MultilineDescription(t *testing.T) {
	entry := desktopEntry(template.Info{Name: "x", Description: "line one\nline two"})
	if strings.Contains(strings.TrimSuffix(entry, "\n"), "line one\nline two") {
		t.Error("newlines must be flattened in Comment")
	}
	if !strings.Contains(entry, "Comment=line one line two") {
		t.Errorf("entry = %q", entry)
	}
}
