package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

const (
	knownDigest = "6bd5bea3e482cf4b471a2d8f4827abf6"
	forgedHash  = "6f2d481271b082873bee6d3b63e1d57d"
)

func TestLoadConfig(t *testing.T) {
	cfg, _, err := loadConfig([]string{"-l", "20", "-d", knownDigest, "-a", "&admin=true"})
	assert.NoError(t, err)
	assert.Equal(t, cfg.Length, 20)
	assert.Equal(t, cfg.Digest, knownDigest)
	assert.Equal(t, cfg.Append, "&admin=true")
	assert.Equal(t, cfg.DebugLevel, "info")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "md5ext.conf")
	ini := "[Application Options]\n" +
		"length = 5\n" +
		"digest = " + knownDigest + "\n" +
		"append = &admin=true\n"
	assert.NoError(t, os.WriteFile(path, []byte(ini), 0o600))

	// the command line wins over the file
	cfg, _, err := loadConfig([]string{"-C", path, "--length", "20"})
	assert.NoError(t, err)
	assert.Equal(t, cfg.Length, 20)
	assert.Equal(t, cfg.Digest, knownDigest)
	assert.Equal(t, cfg.Append, "&admin=true")
}

func TestRunPlain(t *testing.T) {
	cfg := &config{
		Length: 20,
		Digest: knownDigest,
		Append: "&admin=true",
		Plain:  true,
	}

	var out bytes.Buffer
	assert.NoError(t, run(&out, cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, len(lines), 5)
	assert.Equal(t, lines[2], "Extend text (Base64): "+
		"gAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAoAAAAAAAAAAmYWRtaW49dHJ1ZQ==")
	assert.Equal(t, lines[4], "Final hash: "+forgedHash)
}

func TestRunAppendHex(t *testing.T) {
	cfg := &config{
		Length:    20,
		Digest:    knownDigest,
		Append:    "ignored",
		AppendHex: "2661646d696e3d74727565",
		Plain:     true,
	}

	var out bytes.Buffer
	assert.NoError(t, run(&out, cfg))
	if !strings.Contains(out.String(), "Final hash: "+forgedHash) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	cfg.AppendHex = "zz"
	assert.Error(t, run(&out, cfg))
}

func TestRunTable(t *testing.T) {
	cfg := &config{
		Length: 20,
		Digest: knownDigest,
		Append: "&admin=true",
	}

	var out bytes.Buffer
	assert.NoError(t, run(&out, cfg))
	for _, want := range []string{"Final hash", forgedHash, "%26admin%3Dtrue"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in:\n%s", want, out.String())
		}
	}
}

func TestRunVerify(t *testing.T) {
	text := "abc"
	cfg := &config{Verify: &text, Plain: true}

	var out bytes.Buffer
	assert.NoError(t, run(&out, cfg))
	assert.Equal(t, out.String(), ""+
		"Manual: 900150983cd24fb0d6963f7d28e17f72\n"+
		"Stdlib: 900150983cd24fb0d6963f7d28e17f72\n"+
		"Match: true\n")
}

func TestRunVerifyEmpty(t *testing.T) {
	cfg, _, err := loadConfig([]string{"--verify", "", "-p"})
	assert.NoError(t, err)
	if cfg.Verify == nil {
		t.Fatal("--verify with an empty argument was not recorded")
	}
	assert.Equal(t, *cfg.Verify, "")

	var out bytes.Buffer
	assert.NoError(t, run(&out, cfg))
	assert.Equal(t, out.String(), ""+
		"Manual: d41d8cd98f00b204e9800998ecf8427e\n"+
		"Stdlib: d41d8cd98f00b204e9800998ecf8427e\n"+
		"Match: true\n")

	// without the flag the attack runs instead
	cfg, _, err = loadConfig([]string{"-d", knownDigest, "-l", "20", "-a", "&admin=true", "-p"})
	assert.NoError(t, err)
	if cfg.Verify != nil {
		t.Fatalf("unexpected verify text %q", *cfg.Verify)
	}
	out.Reset()
	assert.NoError(t, run(&out, cfg))
	if !strings.Contains(out.String(), "Final hash: "+forgedHash) {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitCode(nil), 0)

	_, _, err := loadConfig([]string{"--bogus"})
	assert.Error(t, err)
	assert.Equal(t, exitCode(err), 2)

	_, _, err = loadConfig([]string{"--length", "many"})
	assert.Error(t, err)
	assert.Equal(t, exitCode(err), 2)

	_, _, err = loadConfig([]string{"--help"})
	assert.Error(t, err)
	assert.Equal(t, exitCode(err), 0)

	_, _, err = loadConfig([]string{"-C", filepath.Join(t.TempDir(), "missing.conf")})
	assert.Error(t, err)
	assert.Equal(t, exitCode(err), 1)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	assert.Error(t, run(&out, &config{Length: -1, Digest: knownDigest}))
	assert.Error(t, run(&out, &config{Length: 1, Digest: "abc"}))
	assert.Equal(t, out.Len(), 0)
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, setupLogging(&buf, "debug"))
	assert.Error(t, setupLogging(&buf, "loud"))
}
