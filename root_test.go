package domainfisher

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTable = "ID,PF00001,PF00002\nP1,1,0\nP2,0,1\nP3,1,1\n"

func TestMaybeDecompressPlain(t *testing.T) {
	r, dt, err := MaybeDecompress(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeNoCompression {
		t.Fatalf("Expected %s, got %s", DataTypeNoCompression, dt)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != sampleTable {
		t.Fatalf("Plain stream was altered: %q", out)
	}
}

func TestMaybeDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sampleTable)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	r, dt, err := MaybeDecompress(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeGzip {
		t.Fatalf("Expected %s, got %s", DataTypeGzip, dt)
	}

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != sampleTable {
		t.Fatalf("Decompressed stream differs: %q", out)
	}
}

func TestMaybeDecompressShortStream(t *testing.T) {
	r, dt, err := MaybeDecompress(strings.NewReader("a"))
	if err != nil {
		t.Fatal(err)
	}
	if dt != DataTypeNoCompression {
		t.Fatalf("Expected %s, got %s", DataTypeNoCompression, dt)
	}
	if out, _ := io.ReadAll(r); string(out) != "a" {
		t.Fatalf("Short stream was altered: %q", out)
	}
}

func TestDelimiterFor(t *testing.T) {
	for _, v := range []struct {
		Path     string
		Sample   string
		Expected rune
	}{
		{"big.tsv", sampleTable, '\t'},
		{"big.tsv.gz", sampleTable, '\t'},
		{"big.CSV", "", ','},
		{"big.txt", strings.ReplaceAll(sampleTable, ",", "\t"), '\t'},
		{"big.txt", sampleTable, ','},
	} {
		if got := DelimiterFor(v.Path, []byte(v.Sample)); got != v.Expected {
			t.Fatalf("\nError with input: %+v\nGot: %q\n", v, got)
		}
	}
}

func TestSplitGoogleStoragePath(t *testing.T) {
	bucket, object, err := SplitGoogleStoragePath("gs://my-bucket/pfam/big.csv")
	if err != nil {
		t.Fatal(err)
	}
	if bucket != "my-bucket" || object != "pfam/big.csv" {
		t.Fatalf("Got bucket %q object %q", bucket, object)
	}

	for _, bad := range []string{"gs://", "gs://bucket", "gs://bucket/"} {
		if _, _, err := SplitGoogleStoragePath(bad); err == nil {
			t.Fatalf("Expected an error for %q", bad)
		}
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.csv")
	if err := os.WriteFile(path, []byte(sampleTable), 0o644); err != nil {
		t.Fatal(err)
	}

	rc, err := Open(context.Background(), path, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	if out, _ := io.ReadAll(rc); string(out) != sampleTable {
		t.Fatalf("Read back %q", out)
	}

	if _, err := Open(context.Background(), "gs://bucket/object.csv", nil); err == nil {
		t.Fatal("Expected an error opening a gs:// path without a client")
	}
}

func TestExpandHome(t *testing.T) {
	if got, err := ExpandHome("/abs/path"); err != nil || got != "/abs/path" {
		t.Fatalf("ExpandHome changed an absolute path: %q %v", got, err)
	}

	got, err := ExpandHome("~/tables/big.csv")
	if err != nil {
		t.Skip("no current user:", err)
	}
	if strings.HasPrefix(got, "~") || !strings.HasSuffix(got, filepath.Join("tables", "big.csv")) {
		t.Fatalf("ExpandHome did not expand: %q", got)
	}
}
