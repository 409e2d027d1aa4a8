package settings

import (
	"os"
	"path/filepath"
	"testing"

	"card-carousel/pkg/carousel"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "missing.json"))
	if s != Defaults() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestLoadReadsTunables(t *testing.T) {
	path := writeSettings(t, `{"deadZone": 12, "springFrequency": 5, "springDamping": 0.5}`)
	want := Settings{DeadZone: 12, SpringFrequency: 5, SpringDamping: 0.5}
	if got := Load(path); got != want {
		t.Fatalf("Load = %+v, want %+v", got, want)
	}
}

func TestLoadFillsZeroValues(t *testing.T) {
	path := writeSettings(t, `{"deadZone": 3}`)

	s := Load(path)
	if s.DeadZone != 3 {
		t.Fatalf("DeadZone = %v, want 3", s.DeadZone)
	}
	if s.SpringFrequency != defaultSettings.SpringFrequency || s.SpringDamping != defaultSettings.SpringDamping {
		t.Fatalf("spring = %v/%v, want defaults", s.SpringFrequency, s.SpringDamping)
	}
}

func TestLoadMalformedFileReturnsDefaults(t *testing.T) {
	if s := Load(writeSettings(t, "{not json")); s != Defaults() {
		t.Fatalf("settings = %+v, want defaults", s)
	}
}

func TestStartIndexIgnoresStoredPosition(t *testing.T) {
	// Files written by older builds may still carry a position
	s := Load(writeSettings(t, `{"deadZone": 4, "lastIndex": 2}`))

	c, err := carousel.NewController(len(carousel.DefaultDeck()))
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	c.SetDeadZone(s.DeadZone)
	if c.CurrentIndex() != 0 {
		t.Fatalf("start index = %d, want 0", c.CurrentIndex())
	}
	if s.DeadZone != 4 {
		t.Fatalf("DeadZone = %v, want 4", s.DeadZone)
	}
}
