package format

import (
	"bytes"
	"testing"
)

type sample struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: JSON},
		{in: "JSON", want: JSON},
		{in: "edn", want: EDN},
		{in: " text ", want: Text},
		{in: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Parse(%q) err=%v wantErr=%v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q)=%q want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteEDN(t *testing.T) {
	t.Parallel()

	v := map[string]any{
		"tasks":  []sample{{ID: 2, Text: "B"}, {ID: 1, Text: "A \"q\"", Done: true}},
		"idMode": "counter",
		"empty":  []sample{},
	}

	var buf bytes.Buffer
	if err := Write(&buf, v, EDN, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:empty [] :idMode "counter" :tasks [{:done false :id 2 :text "B"} {:done true :id 1 :text "A \"q\""}]}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("edn:\n got: %s\nwant: %s", got, want)
	}
}

func TestWriteEDN_Pretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteEDN(&buf, []int{1, 2}, true); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := "[\n  1\n  2\n]\n"
	if got := buf.String(); got != want {
		t.Fatalf("pretty edn:\n got: %q\nwant: %q", got, want)
	}
}

func TestWrite_JSONAndTextRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, sample{ID: 1, Text: "A"}, JSON, false); err != nil {
		t.Fatalf("Write json: %v", err)
	}
	if got, want := buf.String(), `{"id":1,"text":"A","done":false}`+"\n"; got != want {
		t.Fatalf("json:\n got: %s\nwant: %s", got, want)
	}

	if err := Write(&buf, sample{}, Text, false); err == nil {
		t.Fatalf("expected text format to have no encoder")
	}
}
