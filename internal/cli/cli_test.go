package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/readmefeed/pkg/errors"
	pkgio "github.com/matzehuels/readmefeed/pkg/io"
	"github.com/matzehuels/readmefeed/pkg/observability"
	"github.com/matzehuels/readmefeed/pkg/pipeline"
)

const testReadme = `# Hello

<!-- UPDATED_START -->
old
<!-- UPDATED_END -->

<!-- WAVE_START --><!-- WAVE_END -->
`

type fixture struct {
	dir    string
	doc    string
	config string
}

// newFixture writes a README and a config with two offline regions.
func newFixture(t *testing.T, readme string) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		doc:    filepath.Join(dir, "README.md"),
		config: filepath.Join(dir, "readmefeed.toml"),
	}
	if err := os.WriteFile(f.doc, []byte(readme), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := `document = "` + filepath.ToSlash(f.doc) + `"

[cache]
backend = "file"
dir = "` + filepath.ToSlash(filepath.Join(dir, "cache")) + `"

[[region]]
name = "updated"
source = "timestamp"

[[region]]
name = "wave"
params = { harmonics = "3", points = "16" }

[[region]]
name = "absent"
source = "timestamp"
`
	if err := os.WriteFile(f.config, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return f
}

// run executes the root command with args and returns stdout and logs.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	c.Out = &out
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&logs)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestUpdate(t *testing.T) {
	f := newFixture(t, testReadme)

	out, logs, err := run(t, "update", "-c", f.config)
	if err != nil {
		t.Fatalf("update: %v\n%s", err, logs)
	}

	got := readFile(t, f.doc)
	if strings.Contains(got, "\nold\n") {
		t.Errorf("updated region still holds old content:\n%s", got)
	}
	if !strings.Contains(got, "<!-- UPDATED_START -->\n**") {
		t.Errorf("timestamp not injected:\n%s", got)
	}
	if !strings.Contains(got, "<!-- WAVE_START -->\n<img src=\"https://quickchart.io/chart?") {
		t.Errorf("wave chart not injected:\n%s", got)
	}
	for _, want := range []string{"updated", "wave", "absent skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(logs, "document saved") {
		t.Errorf("logs missing save line:\n%s", logs)
	}
}

func TestUpdateReport(t *testing.T) {
	f := newFixture(t, testReadme)
	path := filepath.Join(f.dir, "report.json")

	if _, _, err := run(t, "update", "-c", f.config, "--report", path); err != nil {
		t.Fatalf("update: %v", err)
	}
	rep, err := pkgio.ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !rep.Saved || len(rep.Regions) != 3 {
		t.Errorf("report = %+v", rep)
	}
	if rep.Count(pipeline.Skipped) != 1 {
		t.Errorf("expected the absent region to be skipped: %+v", rep.Regions)
	}
}

func TestReport(t *testing.T) {
	f := newFixture(t, testReadme)
	path := filepath.Join(f.dir, "report.json")
	if _, _, err := run(t, "update", "-c", f.config, "--report", path); err != nil {
		t.Fatalf("update: %v", err)
	}

	out, _, err := run(t, "report", path)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"OUTCOME", "wave", "updated", "skipped", "2 updated, 0 degraded, 1 skipped"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	bad := filepath.Join(f.dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"regions":[{"name":"x","outcome":"exploded"}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "report", bad); err == nil {
		t.Error("expected an error for an unknown outcome")
	}
}

func TestUpdateDryRun(t *testing.T) {
	f := newFixture(t, testReadme)

	out, _, err := run(t, "update", "-c", f.config, "--dry-run", "--only", "updated")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := readFile(t, f.doc); got != testReadme {
		t.Errorf("dry run modified the document:\n%s", got)
	}
	if !strings.HasPrefix(out, "# Hello") || !strings.Contains(out, "<!-- WAVE_START --><!-- WAVE_END -->") {
		t.Errorf("dry run output should be the document with only the selected region changed:\n%s", out)
	}
}

func TestUpdateErrors(t *testing.T) {
	f := newFixture(t, testReadme)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing document", []string{"update", "-c", f.config, "-d", filepath.Join(f.dir, "nope.md")}, errors.ErrCodeDocumentLoad},
		{"unknown region", []string{"update", "-c", f.config, "--only", "nope"}, errors.ErrCodeInvalidRegion},
		{"missing explicit config", []string{"update", "-c", filepath.Join(f.dir, "nope.toml")}, errors.ErrCodeInvalidConfig},
		{"negative concurrency", []string{"update", "-c", f.config, "--concurrency=-1"}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %q, want %q (err=%v)", got, tt.code, err)
			}
		})
	}
	if got := readFile(t, f.doc); got != testReadme {
		t.Errorf("failed runs modified the document")
	}
}

func TestUpdateCacheUnavailable(t *testing.T) {
	f := newFixture(t, testReadme)
	blocker := filepath.Join(f.dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := strings.Replace(readFile(t, f.config),
		filepath.ToSlash(filepath.Join(f.dir, "cache")),
		filepath.ToSlash(filepath.Join(blocker, "cache")), 1)
	if err := os.WriteFile(f.config, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	_, logs, err := run(t, "update", "-c", f.config)
	if err != nil {
		t.Fatalf("update should continue without a cache: %v\n%s", err, logs)
	}
	if got := readFile(t, f.doc); got == testReadme {
		t.Errorf("document was not updated")
	}
	if !strings.Contains(logs, "cache unavailable") {
		t.Errorf("logs missing cache warning:\n%s", logs)
	}
}

func TestRegions(t *testing.T) {
	readme := "<!-- ABSENT_START -->\n" + testReadme + "<!-- ABSENT_END -->\n"
	f := newFixture(t, readme)

	out, _, err := run(t, "regions", "-c", f.config)
	if err != nil {
		t.Fatalf("regions: %v", err)
	}
	for _, want := range []string{"REGION", "updated", "timestamp", "<!-- WAVE_START -->", iconSuccess} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "overlap") {
		t.Errorf("expected overlap warning:\n%s", out)
	}
}

func TestRegionsMissingDocument(t *testing.T) {
	f := newFixture(t, testReadme)
	if err := os.Remove(f.doc); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "regions", "-c", f.config)
	if err != nil {
		t.Fatalf("regions should not fail on a missing document: %v", err)
	}
	if !strings.Contains(out, iconWarning) || !strings.Contains(out, "?") {
		t.Errorf("expected warning and unknown status:\n%s", out)
	}
}

func TestSources(t *testing.T) {
	out, _, err := run(t, "sources")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"arxiv", "apod", "usgs", "swpc", "lorenz", "offline", "KIND"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPreview(t *testing.T) {
	f := newFixture(t, "# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	dest := filepath.Join(f.dir, "out.html")

	if _, _, err := run(t, "preview", "-c", f.config, "--out", dest); err != nil {
		t.Fatalf("preview: %v", err)
	}
	page := readFile(t, dest)
	for _, want := range []string{"<!DOCTYPE html>", "<title>README.md</title>", `<h1 id="title">Title</h1>`, "<table>"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}
}

func TestCache(t *testing.T) {
	f := newFixture(t, testReadme)
	t.Setenv("READMEFEED_CACHE_DIR", "")
	cacheDir := filepath.Join(f.dir, "cache")

	out, _, err := run(t, "cache", "path", "-c", f.config)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != cacheDir {
		t.Errorf("cache path = %q, want %q", strings.TrimSpace(out), cacheDir)
	}

	shard := filepath.Join(cacheDir, "ab")
	if err := os.MkdirAll(shard, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"one.json", "two.json"} {
		if err := os.WriteFile(filepath.Join(shard, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out, _, err = run(t, "cache", "clear", "-c", f.config)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Cleared 2 cached entries") {
		t.Errorf("clear output = %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "readmefeed") {
		t.Error("completion script does not mention the command")
	}
	if _, _, err := run(t, "completion", "tcsh"); err == nil {
		t.Error("expected error for unsupported shell")
	}
}
