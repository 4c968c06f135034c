package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWritePlain(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "plain.txt")
	content := []byte("Hello, 世界")

	if err := writeOutput(path, content); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("readInput = %q, want %q", got, content)
	}
}

func TestReadWriteXZ(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "data.txt.xz")
	content := []byte("Hello, 世界! \U0001F600")

	if err := writeOutput(path, content); err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	// The file on disk must actually be xz (magic bytes FD 37 7A 58 5A 00),
	// not the raw content.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read compressed file: %v", err)
	}
	magic := []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
	if len(raw) < len(magic) || !bytes.Equal(raw[:len(magic)], magic) {
		t.Fatalf("output is not an xz stream: % X", raw[:min(len(raw), 6)])
	}

	got, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("readInput = %q, want %q", got, content)
	}
}

func TestReadInputMissing(t *testing.T) {
	if _, err := readInput(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("readInput on a missing file should fail")
	}
}

func TestConvertCmdRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	in := filepath.Join(tempDir, "in.txt")
	mid := filepath.Join(tempDir, "mid.u16")
	out := filepath.Join(tempDir, "out.txt")
	content := []byte("Hello, 世界! \U0001F600")

	if err := os.WriteFile(in, content, 0644); err != nil {
		t.Fatal(err)
	}

	to16 := &ConvertCmd{Path: in, From: "utf8", To: "utf16", Endian: "le", Out: mid}
	if err := to16.Run(); err != nil {
		t.Fatalf("convert utf8->utf16 failed: %v", err)
	}

	to8 := &ConvertCmd{Path: mid, From: "utf16", To: "utf8", Endian: "le", Out: out}
	if err := to8.Run(); err != nil {
		t.Fatalf("convert utf16->utf8 failed: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("round trip through files = %q, want %q", got, content)
	}
}

func TestConvertCmdRejectsSameEncoding(t *testing.T) {
	cmd := &ConvertCmd{Path: "unused", From: "utf8", To: "utf8"}
	if err := cmd.Run(); err == nil {
		t.Error("convert with identical encodings should fail")
	}
}

func TestConvertCmdMalformedInput(t *testing.T) {
	tempDir := t.TempDir()
	in := filepath.Join(tempDir, "bad.txt")
	if err := os.WriteFile(in, []byte{0xC0, 0xAF}, 0644); err != nil {
		t.Fatal(err)
	}

	cmd := &ConvertCmd{Path: in, From: "utf8", To: "utf16", Endian: "le",
		Out: filepath.Join(tempDir, "out.u16")}
	if err := cmd.Run(); err == nil {
		t.Error("convert of malformed UTF-8 should fail")
	}
}

func TestValidateCmd(t *testing.T) {
	tempDir := t.TempDir()

	good := filepath.Join(tempDir, "good.txt")
	if err := os.WriteFile(good, []byte("Hello"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := (&ValidateCmd{Path: good, Quiet: true}).Run(); err != nil {
		t.Errorf("validate of valid UTF-8 failed: %v", err)
	}

	bad := filepath.Join(tempDir, "bad.txt")
	if err := os.WriteFile(bad, []byte{0xF0, 0x9F, 0x9A}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := (&ValidateCmd{Path: bad, Quiet: true}).Run(); err == nil {
		t.Error("validate of truncated UTF-8 should fail")
	}
}
