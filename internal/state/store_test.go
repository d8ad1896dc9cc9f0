package state

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/wsltune/internal/settings"
	"github.com/five82/wsltune/internal/wslconfig"
)

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestFacade_StartsAtDefaults(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))
	if diff := cmp.Diff(settings.Defaults(), f.GetConfig()); diff != "" {
		t.Fatalf("GetConfig mismatch (-want +got):\n%s", diff)
	}
	if f.Snapshot().Dirty {
		t.Fatalf("fresh facade reports dirty")
	}
}

func TestFacade_SetConfigMergesAndMarksDirty(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))
	f.SetConfig(settings.Partial{MemoryLimit: intPtr(16), Firewall: boolPtr(false)})

	got := f.GetConfig()
	if got.MemoryLimit != 16 || got.Firewall {
		t.Fatalf("GetConfig = memory %d firewall %v, want 16 false", got.MemoryLimit, got.Firewall)
	}
	if got.ProcessorCount != settings.Defaults().ProcessorCount {
		t.Fatalf("untouched field changed: processorCount = %d", got.ProcessorCount)
	}
	if !f.Snapshot().Dirty {
		t.Fatalf("Dirty = false after SetConfig")
	}
}

func TestFacade_ResetToDefault(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))
	f.SetConfig(settings.Partial{Swap: intPtr(4), Kernel: strPtr(`C:\k`)})
	f.ResetToDefault()

	if diff := cmp.Diff(settings.Defaults(), f.GetConfig()); diff != "" {
		t.Fatalf("GetConfig after reset (-want +got):\n%s", diff)
	}
}

func TestFacade_ExportConfigMatchesSerializer(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))
	f.SetConfig(settings.Partial{IgnoredPorts: strPtr("3000,8080")})

	got := f.ExportConfig()
	if want := wslconfig.Serialize(f.GetConfig()); got != want {
		t.Fatalf("ExportConfig differs from Serialize:\n%s\nvs\n%s", got, want)
	}
	if !strings.HasSuffix(got, "ignoredPorts=3000,8080") {
		t.Fatalf("ExportConfig missing ignoredPorts line:\n%s", got)
	}
}

func TestFacade_SetAndToggle(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))

	if err := f.Set("memoryLimit", "2048MB"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := f.GetConfig().MemoryLimit; got != 2 {
		t.Fatalf("MemoryLimit = %d, want 2", got)
	}

	on, err := f.Toggle("firewall")
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if on || f.GetConfig().Firewall {
		t.Fatalf("Toggle firewall = %v, want false", on)
	}

	if err := f.Set("bogus", "1"); !errors.Is(err, settings.ErrUnknownField) {
		t.Fatalf("Set unknown err = %v, want ErrUnknownField", err)
	}
	if _, err := f.Toggle("memoryLimit"); err == nil {
		t.Fatalf("Toggle on size field returned nil error")
	}
	if _, err := f.Toggle("bogus"); !errors.Is(err, settings.ErrUnknownField) {
		t.Fatalf("Toggle unknown err = %v, want ErrUnknownField", err)
	}
}

func TestFacade_SaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".wslconfig")
	f := NewFacade(path)
	f.SetConfig(settings.Partial{
		MemoryLimit:  intPtr(12),
		NetworkMode:  strPtr("nat"),
		SafeMode:     boolPtr(true),
		IgnoredPorts: strPtr("22"),
	})

	before := time.Now()
	if err := f.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	snap := f.Snapshot()
	if snap.Dirty {
		t.Fatalf("Dirty = true after Save")
	}
	if snap.LastSaved.Before(before) {
		t.Fatalf("LastSaved = %v, want >= %v", snap.LastSaved, before)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != f.ExportConfig() {
		t.Fatalf("file contents differ from ExportConfig")
	}

	g := NewFacade(path)
	if err := g.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(f.GetConfig(), g.GetConfig()); diff != "" {
		t.Fatalf("loaded settings mismatch (-want +got):\n%s", diff)
	}
}

func TestFacade_LoadMissingFileKeepsDefaults(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))
	f.SetConfig(settings.Partial{MemoryLimit: intPtr(3)})

	if err := f.Load(); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if diff := cmp.Diff(settings.Defaults(), f.GetConfig()); diff != "" {
		t.Fatalf("GetConfig after Load (-want +got):\n%s", diff)
	}
	if f.Snapshot().Dirty {
		t.Fatalf("Dirty = true after Load")
	}
}

func TestFacade_SaveErrorIsRecorded(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	f := NewFacade(filepath.Join(blocker, ".wslconfig"))
	f.SetConfig(settings.Partial{Swap: intPtr(1)})

	err := f.Save()
	if err == nil {
		t.Fatalf("Save returned nil error for path under a regular file")
	}
	snap := f.Snapshot()
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(err).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !snap.Dirty {
		t.Fatalf("Dirty cleared by failed Save")
	}
}

func TestFacade_ConcurrentAccess(t *testing.T) {
	f := NewFacade(filepath.Join(t.TempDir(), ".wslconfig"))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			f.SetConfig(settings.Partial{ProcessorCount: intPtr(n)})
		}(i)
		go func() {
			defer wg.Done()
			_ = f.ExportConfig()
			_ = f.Snapshot()
		}()
	}
	wg.Wait()

	if got := f.GetConfig().ProcessorCount; got < 0 || got > 7 {
		t.Fatalf("ProcessorCount = %d, want one of the written values", got)
	}
}

func TestSnapshot_Summary(t *testing.T) {
	snap := Snapshot{Settings: settings.Defaults()}
	if got, want := snap.Summary(), "memory=8GB swap=0GB processors=4"; got != want {
		t.Fatalf("Summary = %q, want %q", got, want)
	}
}
