package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{"squishyid"}, args...))
	return out.String(), err
}

func TestEncodeCommand(t *testing.T) {
	out, err := run(t, "encode", "1234567890", "0")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if out != "1LY7VK\n0\n" {
		t.Errorf("output = %q, want %q", out, "1LY7VK\n0\n")
	}
}

func TestDecodeCommand(t *testing.T) {
	out, err := run(t, "decode", "1LY7VK")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != "1234567890\n" {
		t.Errorf("output = %q, want %q", out, "1234567890\n")
	}
}

func TestCustomKeyRoundTrip(t *testing.T) {
	out, err := run(t, "--key", "ab", "encode", "5")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	encoded := strings.TrimSpace(out)
	if encoded != "bab" {
		t.Errorf("encode output = %q, want %q", encoded, "bab")
	}

	out, err = run(t, "--key", "ab", "decode", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(out) != "5" {
		t.Errorf("decode output = %q, want %q", out, "5")
	}
}

func TestMaskRoundTrip(t *testing.T) {
	out, err := run(t, "--mask", "12345", "encode", "42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	encoded := strings.TrimSpace(out)

	plain, err := run(t, "encode", "42")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded == strings.TrimSpace(plain) {
		t.Fatalf("masked output %q equals plain output", encoded)
	}

	out, err = run(t, "--mask", "12345", "decode", encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if strings.TrimSpace(out) != "42" {
		t.Errorf("decode output = %q, want %q", out, "42")
	}
}

func TestErrors(t *testing.T) {
	if _, err := run(t, "encode"); err == nil {
		t.Error("encode with no args should fail")
	}
	if _, err := run(t, "encode", "not-a-number"); err == nil {
		t.Error("encode of a non-number should fail")
	}
	if _, err := run(t, "decode", "!!"); err == nil {
		t.Error("decode of characters outside the alphabet should fail")
	}
	if _, err := run(t, "--alphabet", "base99", "encode", "1"); err == nil {
		t.Error("unknown alphabet should fail")
	}
	if _, err := run(t, "--key", "aa", "encode", "1"); err == nil {
		t.Error("duplicate key characters should fail")
	}
}
