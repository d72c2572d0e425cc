package lockfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/minios-linux/reswkit/generator"
)

const (
	resources = "Strings/en-US/Resources.resw"
	errorsRes = "Dialogs/Errors.resw"
)

var (
	resourcesFile = FileEntryKey(resources)
	errorsFile    = FileEntryKey(errorsRes)
)

func newLockFile() *LockFile {
	return &LockFile{
		Version:   Version,
		Checksums: make(map[string]map[string]string),
	}
}

func TestHashDeterministic(t *testing.T) {
	h1 := Hash("<root/>")
	h2 := Hash("<root/>")
	if h1 != h2 {
		t.Errorf("Hash not deterministic: %s != %s", h1, h2)
	}
	if h3 := Hash("<root></root>"); h1 == h3 {
		t.Errorf("Hash collision: %s == %s", h1, h3)
	}
}

func TestLoadNonExistent(t *testing.T) {
	lf, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error for non-existent file: %v", err)
	}
	if lf.Version != Version {
		t.Errorf("Version = %d, want %d", lf.Version, Version)
	}
	if len(lf.Checksums) != 0 {
		t.Errorf("Checksums not empty: %v", lf.Checksums)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LockFileName), []byte("checksums: [1, 2"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted a malformed lock file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	lf, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	lf.Update(resources, resourcesFile, "<root/>")
	lf.Update(resources, SettingsKey, "settings")
	lf.Update(errorsRes, errorsFile, "<root/>")

	if err := lf.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	path := filepath.Join(dir, LockFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Lock file not created at %s", path)
	}
	if lf.Path() != path {
		t.Fatalf("Path() = %q, want %q", lf.Path(), path)
	}

	lf2, err := Load(dir)
	if err != nil {
		t.Fatalf("Load after save: %v", err)
	}

	targets, keys := lf2.Stats()
	if targets != 2 {
		t.Errorf("targets = %d, want 2", targets)
	}
	if keys != 3 {
		t.Errorf("keys = %d, want 3", keys)
	}
	if lf2.IsChanged(resources, resourcesFile, "<root/>") {
		t.Error("reloaded checksum does not match")
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := newLockFile().Save(); err == nil {
		t.Fatal("Save succeeded without a path")
	}
}

func TestIsChanged(t *testing.T) {
	lf := newLockFile()

	if !lf.IsChanged(resources, resourcesFile, "<root/>") {
		t.Error("new input should be changed")
	}

	lf.Update(resources, resourcesFile, "<root/>")
	if lf.IsChanged(resources, resourcesFile, "<root/>") {
		t.Error("unchanged input should not be changed")
	}
	if !lf.IsChanged(resources, resourcesFile, "<root><data/></root>") {
		t.Error("modified input should be changed")
	}
	if !lf.IsChanged(errorsRes, resourcesFile, "<root/>") {
		t.Error("different resource should be changed")
	}
}

func TestFilterChanged(t *testing.T) {
	lf := newLockFile()
	lf.Update(resources, resourcesFile, "v1")
	lf.Update(resources, SettingsKey, "s1")

	inputs := map[string]string{
		resourcesFile: "v1",
		SettingsKey:   "s2",
		"file:extra":  "new",
	}
	changed := lf.FilterChanged(resources, inputs)

	want := map[string]string{SettingsKey: "s2", "file:extra": "new"}
	if !reflect.DeepEqual(changed, want) {
		t.Errorf("FilterChanged() = %v, want %v", changed, want)
	}
	if got := lf.FilterChanged("unknown.resw", inputs); len(got) != 3 {
		t.Errorf("unknown resource: %d changed, want 3", len(got))
	}
}

func TestUpdateBatchAndClean(t *testing.T) {
	lf := newLockFile()
	lf.UpdateBatch(resources, map[string]string{
		resourcesFile: "v1",
		SettingsKey:   "s1",
		"file:old":    "gone",
	})

	if lf.IsChanged(resources, SettingsKey, "s1") {
		t.Error("settings should not be changed after batch update")
	}

	lf.Clean(resources, []string{resourcesFile, SettingsKey})
	if lf.IsChanged(resources, resourcesFile, "v1") {
		t.Error("file input should still be tracked")
	}
	if !lf.IsChanged(resources, "file:old", "gone") {
		t.Error("stale input should be removed by Clean")
	}
}

func TestRemoveTargetAndPrune(t *testing.T) {
	lf := newLockFile()
	lf.Update(resources, resourcesFile, "v")
	lf.Update(errorsRes, errorsFile, "v")
	lf.Update("About.resw", FileEntryKey("About.resw"), "v")

	lf.RemoveTarget("About.resw")
	lf.Prune([]string{resources})

	if got := lf.Targets(); !reflect.DeepEqual(got, []string{resources}) {
		t.Errorf("Targets() = %v, want [%s]", got, resources)
	}
}

func TestTargetsSorted(t *testing.T) {
	lf := newLockFile()
	lf.Update(resources, resourcesFile, "v")
	lf.Update(errorsRes, errorsFile, "v")
	lf.Update("About.resw", FileEntryKey("About.resw"), "v")

	want := []string{"About.resw", errorsRes, resources}
	if got := lf.Targets(); !reflect.DeepEqual(got, want) {
		t.Errorf("Targets() = %v, want %v", got, want)
	}
}

func TestKeys(t *testing.T) {
	if got := TargetKey(filepath.Join("Strings", "fr", "Resources.resw")); got != "Strings/fr/Resources.resw" {
		t.Errorf("TargetKey() = %q", got)
	}
	if got := FileEntryKey(filepath.Join("Strings", "fr", "Resources.resw")); got != "file:Strings/fr/Resources.resw" {
		t.Errorf("FileEntryKey() = %q", got)
	}
}

func TestSettingsContent(t *testing.T) {
	base := generator.Settings{FilePath: "Resources.resw", DefaultNamespace: "App"}
	langs := []string{"en", "fr"}
	c := SettingsContent(base, langs)

	if c != SettingsContent(base, []string{"en", "fr"}) {
		t.Error("SettingsContent is not deterministic")
	}

	variants := map[string]generator.Settings{}
	s := base
	s.Basic = true
	variants["basic"] = s
	s = base
	s.IsLibrary, s.ModuleName = true, "Lib"
	variants["library"] = s
	s = base
	s.DefaultNamespace = "Other"
	variants["namespace"] = s
	s = base
	s.AppType = generator.AppTypeResourceManager
	variants["app type"] = s

	for name, v := range variants {
		if SettingsContent(v, langs) == c {
			t.Errorf("%s change not reflected in SettingsContent", name)
		}
	}
	if SettingsContent(base, []string{"en"}) == c {
		t.Error("language change not reflected in SettingsContent")
	}
}

func TestSummary(t *testing.T) {
	lf := newLockFile()
	if lf.Summary() != "empty" {
		t.Errorf("empty summary = %q, want %q", lf.Summary(), "empty")
	}

	lf.Update(resources, resourcesFile, "v")
	lf.Update(errorsRes, errorsFile, "v")
	want := "2 resources, 2 inputs (Dialogs/Errors.resw: 1 inputs, Strings/en-US/Resources.resw: 1 inputs)"
	if got := lf.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestConcurrentAccess(t *testing.T) {
	lf := newLockFile()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			target := "Res" + strconv.Itoa(n) + ".resw"
			lf.Update(target, SettingsKey, "value")
			lf.IsChanged(target, SettingsKey, "value")
			lf.Stats()
		}(i)
	}
	wg.Wait()

	targets, keys := lf.Stats()
	if targets != 10 || keys != 10 {
		t.Errorf("after concurrent writes: %d targets, %d keys, want 10, 10", targets, keys)
	}
}
