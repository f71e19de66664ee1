package document

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/matzehuels/readmefeed/pkg/errors"
	"github.com/matzehuels/readmefeed/pkg/inject"
)

var apod = inject.Region{Name: "apod", Start: "<!-- APOD_START -->", End: "<!-- APOD_END -->"}

func loadText(t *testing.T, content string) *Document {
	t.Helper()
	doc, err := Load(writeFile(t, content))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return doc
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.md"))
	if !errors.Is(err, errors.ErrCodeDocumentLoad) {
		t.Errorf("Load() error = %v, want DOCUMENT_LOAD", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, errors.ErrCodeDocumentLoad) {
		t.Errorf("Load(dir) error = %v, want DOCUMENT_LOAD", err)
	}
}

func TestInjectAndSave(t *testing.T) {
	path := writeFile(t, "# Title\n<!-- APOD_START -->\nold\n<!-- APOD_END -->\n")

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !doc.Regions([]inject.Region{apod})["apod"] {
		t.Fatal("apod region not found")
	}
	if doc.Changed() {
		t.Error("fresh document should be unchanged")
	}

	if !doc.Inject(apod, "new") {
		t.Fatal("Inject() = false")
	}
	if !doc.Changed() {
		t.Error("Changed() should be true after inject")
	}

	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, _ := os.ReadFile(path)
	want := "# Title\n<!-- APOD_START -->\nnew\n<!-- APOD_END -->\n"
	if string(data) != want {
		t.Errorf("saved = %q, want %q", data, want)
	}
	if doc.Changed() {
		t.Error("Changed() should reset after save")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestInjectMissingRegion(t *testing.T) {
	doc := loadText(t, "no markers here")
	if doc.Inject(apod, "x") {
		t.Error("Inject() should report missing region")
	}
	if doc.String() != "no markers here" {
		t.Errorf("document changed: %q", doc.String())
	}
}

func TestSavePreservesMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := writeFile(t, "<!-- APOD_START --><!-- APOD_END -->")
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	doc, _ := Load(path)
	doc.Inject(apod, "x")
	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestSaveFailureLeavesOriginal(t *testing.T) {
	path := writeFile(t, "<!-- APOD_START --><!-- APOD_END -->")
	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	doc.Inject(apod, "x")
	if err := os.RemoveAll(filepath.Dir(path)); err != nil {
		t.Fatal(err)
	}
	err = doc.Save()
	if !errors.Is(err, errors.ErrCodeDocumentSave) {
		t.Errorf("Save() error = %v, want DOCUMENT_SAVE", err)
	}
}

func TestConcurrentInject(t *testing.T) {
	regions := []inject.Region{
		{Name: "a", Start: "<!-- A_START -->", End: "<!-- A_END -->"},
		{Name: "b", Start: "<!-- B_START -->", End: "<!-- B_END -->"},
		{Name: "c", Start: "<!-- C_START -->", End: "<!-- C_END -->"},
	}
	text := ""
	for _, r := range regions {
		text += r.Start + r.End + "\n"
	}
	doc := loadText(t, text)

	var wg sync.WaitGroup
	for _, r := range regions {
		wg.Add(1)
		go func(r inject.Region) {
			defer wg.Done()
			doc.Inject(r, r.Name)
		}(r)
	}
	wg.Wait()

	for _, r := range regions {
		body, ok := inject.Body(doc.String(), r.Start, r.End)
		if !ok || body != "\n"+r.Name+"\n" {
			t.Errorf("region %s body = %q", r.Name, body)
		}
	}
}

func TestRegions(t *testing.T) {
	doc := loadText(t, "<!-- A_START -->x<!-- A_END -->\n<!-- B_START -->")
	found := doc.Regions([]inject.Region{
		{Name: "a", Start: "<!-- A_START -->", End: "<!-- A_END -->"},
		{Name: "b", Start: "<!-- B_START -->", End: "<!-- B_END -->"},
	})
	if !found["a"] || found["b"] {
		t.Errorf("Regions() = %v, want a present and b missing", found)
	}
}

func TestSaveThroughSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	target := writeFile(t, "<!-- APOD_START -->old<!-- APOD_END -->")
	link := filepath.Join(t.TempDir(), "README.md")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(link)
	if err != nil {
		t.Fatal(err)
	}
	doc.Inject(apod, "new")
	if err := doc.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Error("Save replaced the symlink with a regular file")
	}
	data, _ := os.ReadFile(target)
	if want := "<!-- APOD_START -->\nnew\n<!-- APOD_END -->"; string(data) != want {
		t.Errorf("target = %q, want %q", data, want)
	}
}
