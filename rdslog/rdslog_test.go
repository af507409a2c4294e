package rdslog

import (
	"io"
	"strings"
	"testing"

	"gords/rds"
)

func TestParseLineBasic(t *testing.T) {
	r := NewReader(strings.NewReader("1234 0400 0000 4142\n"))
	g, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if g.A.Value != 0x1234 || g.A.Errors != rds.BLERNone {
		t.Fatalf("A = %+v", g.A)
	}
	if g.D.Value != 0x4142 {
		t.Fatalf("D = %+v", g.D)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestParseLineWithErrorSuffix(t *testing.T) {
	r := NewReader(strings.NewReader("ABCD:0 0400:1 0000:4 FFFF:9\n"))
	g, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if g.A.Errors != rds.BLERNone {
		t.Fatalf("A.Errors = %v, want BLERNone", g.A.Errors)
	}
	if g.B.Errors != rds.BLER1To2 {
		t.Fatalf("B.Errors = %v, want BLER1To2", g.B.Errors)
	}
	if g.C.Errors != rds.BLER3To5 {
		t.Fatalf("C.Errors = %v, want BLER3To5", g.C.Errors)
	}
	if g.D.Errors != rds.BLER6Plus {
		t.Fatalf("D.Errors = %v, want BLER6Plus", g.D.Errors)
	}
}

func TestParseLineSkipsBlankLines(t *testing.T) {
	r := NewReader(strings.NewReader("\n\n1234 0000 0000 0000\n\n"))
	g, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if g.A.Value != 0x1234 {
		t.Fatalf("A.Value = %#x", g.A.Value)
	}
}

func TestParseLineRejectsMalformed(t *testing.T) {
	r := NewReader(strings.NewReader("not-hex 0000 0000 0000\n"))
	if _, err := r.Next(); err == nil {
		t.Fatal("expected error for malformed hex word")
	}
}
