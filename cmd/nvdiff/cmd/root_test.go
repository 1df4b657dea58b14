package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const leftDump = `[NV items]
[Complete items - 3, Items size - 2]
10 (0x000A) - OK
01 02
20 (0x0014) - Inactive item
30 (0x001E) - OK
AA BB
`

const rightDump = `[NV items]
[Complete items - 3, Items size - 2]
10 (0x000A) - OK
01 03
20 (0x0014) - Inactive item
40 (0x0028) - Access denied
`

// sandbox isolates a test from config files and dictionaries of the host
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("NVDIFF_CONFIG", "")
	t.Chdir(dir)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(args ...string) (stdout, stderr string, err error) {
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCompareModes(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	right := writeFile(t, dir, "right.txt", rightDump)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "present interleaved",
			args: []string{left, right, "--color", "never"},
			want: "Found 1 non matching items\n\n" +
				"[left.txt]: 0010 (0x000A) - OK\n01 02\n\n" +
				"[right.txt]: 0010 (0x000A) - OK\n01 03\n\n",
		},
		{
			name: "missing count",
			args: []string{left, right, "-t", "m", "-f", "c", "--color", "never"},
			want: "Found 2 non matching items\n\n",
		},
		{
			name: "both count",
			args: []string{left, right, "--type", "both", "--format", "count", "--color", "never"},
			want: "Found 3 non matching items\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v, stderr = %q", err, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout =\n%s\nwant\n%s", stdout, tt.want)
			}
		})
	}
}

func TestCompareWithDictionary(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	right := writeFile(t, dir, "right.txt", rightDump)
	writeFile(t, dir, "nv.txt", "10^\"Preferred mode\"^'Modem*\n")

	stdout, _, err := execute(left, right, "--color", "never")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "[left.txt]: 0010 (Preferred mode, Modem) - OK") {
		t.Errorf("stdout not annotated:\n%s", stdout)
	}
}

func TestCompareJSON(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	right := writeFile(t, dir, "right.txt", rightDump)

	stdout, _, err := execute(left, right, "-t", "both", "-f", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var doc struct {
		RunID string `json:"run_id"`
		Total int    `json:"total"`
	}
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if doc.Total != 3 || doc.RunID == "" {
		t.Errorf("document = %+v", doc)
	}
}

func TestCompareMissingFile(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	missing := filepath.Join(dir, "nope.txt")

	stdout, stderr, err := execute(left, missing)
	if !errors.Is(err, errReported) {
		t.Fatalf("Execute() error = %v, want reported failure", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if want := "nvdiff: " + missing + " not found\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestCompareParseErrors(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", "")
	right := writeFile(t, dir, "right.txt", "garbage\n")

	_, stderr, err := execute(left, right)
	if !errors.Is(err, errReported) {
		t.Fatalf("Execute() error = %v, want reported failure", err)
	}

	want := "left.txt: Empty input file\nright.txt: Invalid format input file\n"
	if stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestCompareArguments(t *testing.T) {
	sandbox(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no files", nil},
		{"one file", []string{"a.txt"}},
		{"three files", []string{"a.txt", "b.txt", "c.txt"}},
		{"bad type", []string{"a.txt", "b.txt", "-t", "x"}},
		{"bad format", []string{"a.txt", "b.txt", "-f", "html"}},
		{"bad log level", []string{"a.txt", "b.txt", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(tt.args...); err == nil {
				t.Error("Execute() should fail")
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	right := writeFile(t, dir, "right.txt", rightDump)
	writeFile(t, dir, "nvdiff.toml", "[compare]\nmode = \"both\"\nformat = \"count\"\ncolor = \"never\"\n")

	stdout, _, err := execute(left, right)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "Found 3 non matching items\n\n" {
		t.Errorf("stdout = %q", stdout)
	}

	// flags win over the config file
	stdout, _, err = execute(left, right, "-t", "present")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "Found 1 non matching items\n\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)
	right := writeFile(t, dir, "right.txt", rightDump)

	stdout, stderr, err := execute(left, right, "-v", "-f", "count", "--color", "never")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(stdout, "[DBG]") {
		t.Errorf("debug logs leaked into stdout:\n%s", stdout)
	}
	if !strings.Contains(stderr, "comparison done") {
		t.Errorf("stderr missing debug log:\n%s", stderr)
	}
}

func TestShow(t *testing.T) {
	dir := sandbox(t)
	left := writeFile(t, dir, "left.txt", leftDump)

	stdout, _, err := execute("show", left, "--color", "never")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "[left.txt]: 3 items, item size 2\n\n" +
		"0010 (0x000A) - OK\n01 02\n\n" +
		"0020 (0x0014) - Inactive item\n\n" +
		"0030 (0x001E) - OK\nAA BB\n\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}
}

func TestLookup(t *testing.T) {
	dir := sandbox(t)
	dict := writeFile(t, dir, "items.txt", "453^\"Feature mode\"^'Modem*\n10^\"Preferred mode\"^\"Radio\"\n")

	stdout, _, err := execute("lookup", "453", "0x000A", "7", "-l", dict)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "0453 (0x01C5) - Feature mode, Modem\n" +
		"0010 (0x000A) - Preferred mode, Radio\n" +
		"0007 (0x0007) - not found\n"
	if stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, want)
	}

	if _, _, err := execute("lookup", "abc", "-l", dict); err == nil {
		t.Error("lookup of a non numeric code should fail")
	}
	if _, _, err := execute("lookup", "1", "-l", filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("lookup without dictionary should fail")
	}
}

func TestVersion(t *testing.T) {
	sandbox(t)

	stdout, _, err := execute("version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "nvdiff v") {
		t.Errorf("stdout = %q", stdout)
	}
}
