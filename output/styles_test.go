package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesContainInput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", styles.Success},
		{"Error", styles.Error},
		{"FilePath", styles.FilePath},
		{"Account", styles.Account},
		{"Amount", styles.Amount},
		{"Keyword", styles.Keyword},
		{"Dim", styles.Dim},
		{"Warning", styles.Warning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn("sample text")
			if !strings.Contains(result, "sample text") {
				t.Errorf("%s() result should contain input, got: %s", tt.name, result)
			}
		})
	}
}
