// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-store/internal/app"
	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/internal/config"
	"github.com/MKhiriev/go-pass-store/internal/logger"
	"github.com/MKhiriev/go-pass-store/internal/mock"
	"github.com/MKhiriev/go-pass-store/internal/store"
	"github.com/MKhiriev/go-pass-store/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// fakeTerminal answers prompts from queued values.
type fakeTerminal struct {
	interactive bool
	secrets     [][]byte
	confirm     bool
	prompts     []string
}

func (f *fakeTerminal) IsInteractive() bool { return f.interactive }

func (f *fakeTerminal) ReadSecret(prompt string) ([]byte, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.secrets) == 0 {
		return nil, errors.New("no more input")
	}
	next := f.secrets[0]
	f.secrets = f.secrets[1:]
	return next, nil
}

func (f *fakeTerminal) Confirm(prompt string) (bool, error) {
	f.prompts = append(f.prompts, prompt)
	return f.confirm, nil
}

type harness struct {
	app    *App
	svc    *mock.MockSecretService
	term   *fakeTerminal
	stdin  *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func testConfig(t *testing.T) *config.StructuredConfig {
	dir := t.TempDir()
	return &config.StructuredConfig{
		Store:     config.Store{Dir: dir, FileName: config.StoreFileName},
		Authority: config.Authority{AgeIdentityFile: dir + "/age.key"},
		Clipboard: config.Clipboard{Delay: 45 * time.Second, Settle: time.Millisecond, Tag: config.ClipboardTag},
	}
}

func newHarness(t *testing.T, term *fakeTerminal) *harness {
	ctrl := gomock.NewController(t)
	h := &harness{
		svc:    mock.NewMockSecretService(ctrl),
		term:   term,
		stdin:  &bytes.Buffer{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	h.app = NewApp(models.NewAppBuildInfo("v1.2.3", "", ""),
		WithService(h.svc),
		WithTerminal(term),
		WithIO(h.stdin, h.stdout, h.stderr),
		WithConfig(testConfig(t)),
		WithLogger(logger.Nop()),
	)
	return h
}

func (h *harness) run(args ...string) int {
	return h.app.Run(context.Background(), args)
}

func TestApp_Reveal(t *testing.T) {
	t.Run("named entry", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true})
		h.svc.EXPECT().Reveal(gomock.Any(), "github").
			Return(clipboard.Session{Expiry: time.Now().Add(45 * time.Second)}, nil)

		require.Equal(t, 0, h.run("github"))
		assert.Equal(t, "Copied 'github' to clipboard. Will clear in 45 seconds.\n", h.stdout.String())
	})

	t.Run("picked entry", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true})
		gomock.InOrder(
			h.svc.EXPECT().Pick(gomock.Any()).Return("mail", nil),
			h.svc.EXPECT().Reveal(gomock.Any(), "mail").Return(clipboard.Session{}, nil),
		)

		require.Equal(t, 0, h.run())
		assert.Contains(t, h.stdout.String(), "'mail'")
	})

	t.Run("unknown name", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true})
		h.svc.EXPECT().Reveal(gomock.Any(), "nope").Return(clipboard.Session{}, store.ErrNameNotFound)

		assert.Equal(t, 1, h.run("nope"))
		assert.Equal(t, "error: "+app.MsgNameNotFound+"\n", h.stderr.String())
		assert.Empty(t, h.stdout.String())
	})

	t.Run("too many args", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true})
		assert.Equal(t, 1, h.run("a", "b"))
		assert.Contains(t, h.stderr.String(), "error:")
	})
}

func TestApp_Insert(t *testing.T) {
	t.Run("prompted twice", func(t *testing.T) {
		term := &fakeTerminal{interactive: true, secrets: [][]byte{[]byte("s3cret"), []byte("s3cret")}}
		h := newHarness(t, term)
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(false, nil)
		h.svc.EXPECT().Insert(gomock.Any(), "github", models.Secret("s3cret")).Return(nil)

		require.Equal(t, 0, h.run("insert", "github"))
		assert.Len(t, term.prompts, 2)
		assert.Equal(t, "Added 'github'\n", h.stdout.String())
	})

	t.Run("mismatch", func(t *testing.T) {
		term := &fakeTerminal{interactive: true, secrets: [][]byte{[]byte("one"), []byte("two")}}
		h := newHarness(t, term)
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(false, nil)

		assert.Equal(t, 1, h.run("insert", "github"))
		assert.Contains(t, h.stderr.String(), errSecretsDiffer.Error())
	})

	t.Run("existing name rejected before prompting", func(t *testing.T) {
		term := &fakeTerminal{interactive: true}
		h := newHarness(t, term)
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(true, nil)

		assert.Equal(t, 1, h.run("insert", "github"))
		assert.Empty(t, term.prompts)
		assert.Equal(t, "error: "+app.MsgNameExists+"\n", h.stderr.String())
	})

	t.Run("piped stdin keeps the first line", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.stdin.WriteString("hunter2\nuser: me\n")
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(false, nil)
		h.svc.EXPECT().Insert(gomock.Any(), "github", models.Secret("hunter2")).Return(nil)

		require.Equal(t, 0, h.run("insert", "github"))
	})

	t.Run("multiline reads everything", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.stdin.WriteString("hunter2\nuser: me\n")
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(false, nil)
		h.svc.EXPECT().Insert(gomock.Any(), "github", models.Secret("hunter2\nuser: me\n")).Return(nil)

		require.Equal(t, 0, h.run("insert", "--multiline", "github"))
	})
}

func TestApp_Update(t *testing.T) {
	t.Run("overwrites", func(t *testing.T) {
		term := &fakeTerminal{interactive: true, secrets: [][]byte{[]byte("new"), []byte("new")}}
		h := newHarness(t, term)
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(true, nil)
		h.svc.EXPECT().Update(gomock.Any(), "github", models.Secret("new")).Return(nil)

		require.Equal(t, 0, h.run("update", "github"))
		assert.Equal(t, "Updated 'github'\n", h.stdout.String())
	})

	t.Run("missing name", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true})
		h.svc.EXPECT().Exists(gomock.Any(), "github").Return(false, nil)

		assert.Equal(t, 1, h.run("update", "github"))
		assert.Equal(t, "error: "+app.MsgNameNotFound+"\n", h.stderr.String())
	})
}

func TestApp_Remove(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		term := &fakeTerminal{interactive: true, confirm: false}
		h := newHarness(t, term)

		require.Equal(t, 0, h.run("rm", "github"))
		assert.Equal(t, []string{"Remove github?"}, term.prompts)
		assert.Contains(t, h.stdout.String(), "Nothing removed")
	})

	t.Run("confirmed", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{interactive: true, confirm: true})
		h.svc.EXPECT().Remove(gomock.Any(), "github").Return(nil)

		require.Equal(t, 0, h.run("remove", "github"))
		assert.Equal(t, "Removed 'github'\n", h.stdout.String())
	})

	t.Run("forced", func(t *testing.T) {
		term := &fakeTerminal{interactive: true}
		h := newHarness(t, term)
		h.svc.EXPECT().Remove(gomock.Any(), "github").Return(nil)

		require.Equal(t, 0, h.run("rm", "-f", "github"))
		assert.Empty(t, term.prompts)
	})
}

func TestApp_ListShowEdit(t *testing.T) {
	t.Run("ls", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().List(gomock.Any()).Return([]string{"bank", "github"}, nil)

		require.Equal(t, 0, h.run("ls"))
		assert.Equal(t, "bank\ngithub\n", h.stdout.String())
	})

	t.Run("show appends a newline", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Show(gomock.Any(), "github").Return(models.Secret("pw\nuser: me"), nil)

		require.Equal(t, 0, h.run("show", "github"))
		assert.Equal(t, "pw\nuser: me\n", h.stdout.String())
	})

	t.Run("show metadata only", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Show(gomock.Any(), "github").Return(models.Secret("pw\nuser: me\nurl: example.com"), nil)

		require.Equal(t, 0, h.run("show", "--meta", "github"))
		assert.Equal(t, "user: me\nurl: example.com\n", h.stdout.String())
	})

	t.Run("show metadata of a single line secret", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Show(gomock.Any(), "github").Return(models.Secret("pw"), nil)

		require.Equal(t, 0, h.run("show", "--meta", "github"))
		assert.Empty(t, h.stdout.String())
	})

	t.Run("edit without changes", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Edit(gomock.Any(), "github").Return(false, nil)

		require.Equal(t, 0, h.run("edit", "github"))
		assert.Equal(t, "No changes to 'github'\n", h.stdout.String())
	})

	t.Run("edit saved", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Edit(gomock.Any(), "github").Return(true, nil)

		require.Equal(t, 0, h.run("edit", "github"))
		assert.Equal(t, "Updated 'github'\n", h.stdout.String())
	})
}

func TestApp_Init(t *testing.T) {
	t.Run("explicit recipient", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.svc.EXPECT().Init(gomock.Any(), "age1xyz").Return(3, nil)

		require.Equal(t, 0, h.run("init", "age1xyz"))
		assert.Contains(t, h.stdout.String(), "Encrypted 3 secrets to 'age1xyz'")
	})

	t.Run("configured recipient", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		h.app.cfg.Authority.Recipient = "alice@example.com"
		h.svc.EXPECT().Init(gomock.Any(), "alice@example.com").Return(0, nil)

		require.Equal(t, 0, h.run("init"))
	})

	t.Run("no recipient", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})

		assert.Equal(t, 1, h.run("init"))
		assert.Equal(t, "error: "+app.MsgNoRecipient+"\n", h.stderr.String())
	})

	t.Run("generated age identity", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		var gotPath string
		h.app.newAgeIdentity = func(path string) (string, error) {
			gotPath = path
			return "age1generated", nil
		}
		h.svc.EXPECT().Init(gomock.Any(), "age1generated").Return(0, nil)

		require.Equal(t, 0, h.run("init", "--generate-age"))
		assert.Equal(t, h.app.cfg.Authority.AgeIdentityFile, gotPath)
		assert.Contains(t, h.stdout.String(), "Wrote age identity to")
	})

	t.Run("generate age with recipient", func(t *testing.T) {
		h := newHarness(t, &fakeTerminal{})
		assert.Equal(t, 1, h.run("init", "--generate-age", "age1xyz"))
	})
}

func TestApp_ClipRestore(t *testing.T) {
	backend := clipboard.NewMemoryBackend([]byte("secret"))
	fp, err := clipboard.NewFingerprint([]byte("secret"))
	require.NoError(t, err)

	stdin := &bytes.Buffer{}
	require.NoError(t, clipboard.WriteRestoreRequest(stdin, clipboard.RestoreRequest{
		Previous: []byte("before"),
		Expected: fp,
	}))

	a := NewApp(models.NewAppBuildInfo("", "", ""),
		WithClipboardBackend(backend),
		WithTerminal(&fakeTerminal{}),
		WithIO(stdin, &bytes.Buffer{}, &bytes.Buffer{}),
		WithConfig(testConfig(t)),
		WithLogger(logger.Nop()),
	)

	require.Equal(t, 0, a.Run(context.Background(), []string{clipboard.RestoreCommand}))
	current, err := backend.Read()
	require.NoError(t, err)
	assert.Equal(t, "before", string(current))
}

func TestApp_Version(t *testing.T) {
	h := newHarness(t, &fakeTerminal{})

	require.Equal(t, 0, h.run("--version"))
	assert.True(t, strings.HasPrefix(h.stdout.String(), "pass version v1.2.3 (built N/A, commit N/A)"))
}
