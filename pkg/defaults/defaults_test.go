package defaults

import "testing"

func TestCardLayout(t *testing.T) {
	// frame padding takes two cells; the value column needs room for a few words
	if CardWidth-2-CardLabelWidth < 20 {
		t.Errorf("CardWidth %d leaves too little room for values", CardWidth)
	}
}

func TestOutputFileMode(t *testing.T) {
	if OutputFileMode&0o002 != 0 {
		t.Errorf("output files must not be world-writable: %v", OutputFileMode)
	}
}

func TestFormats(t *testing.T) {
	if ListFormat == "" || GetFormat == "" {
		t.Error("default formats must be set")
	}
	if ListFormat == GetFormat {
		t.Errorf("list and get are expected to default to different formats, both %q", ListFormat)
	}
}
