package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := Result{OK: true, Action: "minimize", Address: "0xAA", Class: "firefox"}
	out := captureStdout(t, func() error { return PrintYAML(result) })

	var decoded Result
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || decoded.Address != "0xAA" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestPrintJSON_SingleLineNoEscaping(t *testing.T) {
	// The show command prints waybar JSON through this path; glyphs and
	// angle brackets must come through literally on one line.
	out := captureStdout(t, func() error {
		return PrintJSON(map[string]string{"text": "\U000f0638 2", "tooltip": "<2>"})
	})
	if strings.Count(out, "\n") != 1 {
		t.Errorf("JSON output should be a single line, got %q", out)
	}
	if !strings.Contains(out, "\U000f0638") || !strings.Contains(out, "<2>") {
		t.Errorf("output escaped content it should not have: %q", out)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(Result{OK: true, Action: "restore-all"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"address", "class", "title", "count", "detail"} {
		if _, ok := m[key]; ok {
			t.Errorf("empty %q should be omitted", key)
		}
	}
	if _, ok := m["ok"]; !ok {
		t.Error("ok should always be present")
	}
}
