package selfupdate

import (
	"archive/tar"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
	ErrUnsupported   = errors.New("no release build for this platform")
)

// Update stages, reported in this order.
const (
	StageCheck    = "check"
	StageDownload = "download"
	StageVerify   = "verify"
	StageExtract  = "extract"
	StageApply    = "apply"
	StageDone     = "done"
)

type UpdateInput struct {
	CurrentVersion string

	// TargetVersion pins a release tag. Empty means the latest release.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   string
	Message string
}

type reporter func(stage, format string, args ...any)

// IsDevBuild reports whether version came from a plain `go build`.
func IsDevBuild(version string) bool {
	return version == "" || version == "(devel)" || !semver.IsValid(canonical(version))
}

// releaseArch maps GOARCH to the suffix of the Linux archives. macOS gets a
// single universal archive.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
}

// archiveFor names the release archive built for goos/goarch.
func archiveFor(goos, goarch string) (string, error) {
	switch goos {
	case "darwin":
		return binaryName + "_Darwin_all.tar.gz", nil
	case "linux":
		if arch, ok := releaseArch[goarch]; ok {
			return binaryName + "_Linux_" + arch + ".tar.gz", nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrUnsupported, goos, goarch)
}

// Update installs the release named by input over the running executable.
// The archive is checked against the release's checksums.txt before anything
// on disk changes. progress may be nil.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if IsDevBuild(input.CurrentVersion) {
		return ErrDevBuild
	}
	report := func(stage, format string, args ...any) {
		if progress != nil {
			progress(UpdateProgress{Stage: stage, Message: fmt.Sprintf(format, args...)})
		}
	}

	archive, err := archiveFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	tag, err := c.targetTag(ctx, input, report)
	if err != nil {
		return err
	}
	dir := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag)

	report(StageDownload, "Downloading %s %s...", binaryName, tag)
	data, err := c.fetch(ctx, dir+"/"+archive)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	report(StageVerify, "Verifying checksum...")
	sums, err := c.fetch(ctx, dir+"/checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, err := lookupChecksum(sums, archive)
	if err != nil {
		return err
	}
	if err := verifyChecksum(data, want); err != nil {
		return err
	}

	report(StageExtract, "Unpacking %s...", binaryName)
	bin, err := unpackBinary(data)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Replacing the installed binary...")
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := install(bin, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

// targetTag returns the pinned version or, when none is pinned, the latest
// release newer than the running one.
func (c *Checker) targetTag(ctx context.Context, input *UpdateInput, report reporter) (string, error) {
	if input.TargetVersion != "" {
		if !semver.IsValid(canonical(input.TargetVersion)) {
			return "", fmt.Errorf("invalid target version %q", input.TargetVersion)
		}
		return input.TargetVersion, nil
	}

	report(StageCheck, "Checking for a newer release...")
	res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
	if err != nil {
		return "", fmt.Errorf("check for updates: %w", err)
	}
	if !res.UpdateAvailable {
		return "", ErrAlreadyLatest
	}
	return res.LatestVersion, nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// lookupChecksum finds name in a sha256sum-style listing.
func lookupChecksum(sums []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == name {
			return fields[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read checksums: %w", err)
	}
	return "", fmt.Errorf("no checksum found for %s in checksums.txt", name)
}

func verifyChecksum(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

// unpackBinary returns the kosakata executable from a .tar.gz archive.
func unpackBinary(archive []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("binary %q not found in archive", binaryName)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == binaryName {
			return io.ReadAll(tr)
		}
	}
}

// install writes bin next to target and renames it into place, keeping
// target's permission bits.
func install(bin []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	// Fails harmlessly once the rename has happened.
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
