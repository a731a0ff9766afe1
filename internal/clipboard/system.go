// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-store/internal/logger"
)

// RestoreCommand is the hidden subcommand the detached child runs.
const RestoreCommand = "clip-restore"

// pkill exit status when no process matched.
const pkillNoMatch = 1

// ErrClipboardUnavailable is returned by [SystemBackend.Read] when no
// clipboard utility can be run.
var ErrClipboardUnavailable = errors.New("no clipboard utility available")

// SystemBackend uses the OS clipboard and re-executes the running binary
// as the detached restore process.
type SystemBackend struct {
	executable string
	pkill      string
	readAll    func() (string, error)
	logger     *logger.Logger
}

// NewSystemBackend returns a SystemBackend whose restore child is
// executable (usually os.Executable()).
func NewSystemBackend(executable string, log *logger.Logger) *SystemBackend {
	return &SystemBackend{
		executable: executable,
		pkill:      "pkill",
		readAll:    clipboard.ReadAll,
		logger:     log,
	}
}

// Read implements [Backend]. A paste utility that runs but exits non-zero
// is read as an empty clipboard: xclip and wl-paste do that when nothing
// has been copied yet in the session.
func (b *SystemBackend) Read() ([]byte, error) {
	text, err := b.readAll()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			b.logger.Debug().Int("exit_code", exitErr.ExitCode()).Msg("clipboard paste failed, treating clipboard as empty")
			return []byte{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return []byte(text), nil
}

// Write implements [Backend].
func (b *SystemBackend) Write(data []byte) error {
	return clipboard.WriteAll(string(data))
}

// Kill implements [Backend] by signalling every process whose command line
// starts with tag.
func (b *SystemBackend) Kill(ctx context.Context, tag string) (bool, error) {
	err := exec.CommandContext(ctx, b.pkill, "-f", "^"+tag).Run()
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == pkillNoMatch {
		return false, nil
	}
	return false, fmt.Errorf("%s: %w", b.pkill, err)
}

// SpawnDetached implements [Backend]. The child is started in its own
// session with argv[0] set to tag and receives req on stdin. It is not
// waited for.
func (b *SystemBackend) SpawnDetached(_ context.Context, tag string, req RestoreRequest) error {
	cmd := exec.Command(b.executable, RestoreCommand)
	cmd.Args[0] = tag
	cmd.SysProcAttr = detachedAttr()
	cmd.Env = os.Environ()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("restore stdin: %w", err)
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("start restore process: %w", err)
	}

	writeErr := WriteRestoreRequest(stdin, req)
	closeErr := stdin.Close()
	if err = errors.Join(writeErr, closeErr); err != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("hand over restore request: %w", err)
	}

	pid := cmd.Process.Pid
	if err = cmd.Process.Release(); err != nil {
		return fmt.Errorf("release restore process: %w", err)
	}

	b.logger.Debug().Int("pid", pid).Dur("delay", req.Delay).Msg("clipboard restore scheduled")
	return nil
}
