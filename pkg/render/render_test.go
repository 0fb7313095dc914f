package render

import (
	"bytes"
	"testing"

	"github.com/RahilKothari9/difflab/pkg/differ"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncode(t *testing.T) {
	result := differ.Compute("a\nb\nc", "a\nx\nc")

	var buf bytes.Buffer
	if err := NewRenderer().Encode(result, "test.txt", &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatalf("output is not a PNG, starts with %v", buf.Bytes()[:4])
	}
}

func TestEncode_EmptyDiff(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().Encode(differ.Compute("", ""), "", &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Fatal("empty diff should still render a valid PNG")
	}
}
