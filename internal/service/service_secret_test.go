// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-store/internal/clipboard"
	"github.com/MKhiriev/go-pass-store/internal/logger"
	"github.com/MKhiriev/go-pass-store/internal/mock"
	"github.com/MKhiriev/go-pass-store/internal/store"
	"github.com/MKhiriev/go-pass-store/internal/validators"
	"github.com/MKhiriev/go-pass-store/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo     *mock.MockRepository
	revealer *mock.MockRevealer
	picker   *mock.MockPicker
	editor   *mock.MockEditor
}

// newTestSecretSvc is a helper building the service on top of mocks.
func newTestSecretSvc(t *testing.T, ctrl *gomock.Controller) (SecretService, testDeps) {
	t.Helper()
	deps := testDeps{
		repo:     mock.NewMockRepository(ctrl),
		revealer: mock.NewMockRevealer(ctrl),
		picker:   mock.NewMockPicker(ctrl),
		editor:   mock.NewMockEditor(ctrl),
	}
	svc := NewSecretService(deps.repo, deps.revealer, deps.picker, deps.editor, logger.Nop())
	return svc, deps
}

func storeWith(t *testing.T, pairs map[string]models.Secret) *store.Store {
	t.Helper()
	s := store.New()
	s.SetRecipient("me")
	for name, secret := range pairs {
		require.NoError(t, s.Insert(name, secret))
	}
	return s
}

// ── Insert ───────────────────────────────────────────────────────────────────

func TestSecretService_Insert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, nil)

	deps.repo.EXPECT().Load(ctx).Return(st, nil)
	deps.repo.EXPECT().Save(ctx, st).Return(nil)

	require.NoError(t, svc.Insert(ctx, "mail", "pw"))
	got, err := st.Get("mail")
	require.NoError(t, err)
	assert.Equal(t, models.Secret("pw"), got)
}

func TestSecretService_Insert_DuplicateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"mail": "old"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil)

	err := svc.Insert(ctx, "mail", "new")
	require.ErrorIs(t, err, store.ErrNameExists)

	got, _ := st.Get("mail")
	assert.Equal(t, models.Secret("old"), got)
}

func TestSecretService_Insert_EmptySecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSecretSvc(t, ctrl)

	err := svc.Insert(context.Background(), "mail", "  ")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSecretService_Insert_InvalidName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSecretSvc(t, ctrl)

	err := svc.Insert(context.Background(), "two\nlines", "pw")
	assert.ErrorIs(t, err, validators.ErrInvalidName)

	err = svc.Update(context.Background(), " ", "pw")
	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestSecretService_Insert_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(nil, store.ErrPayloadDecode)

	err := svc.Insert(ctx, "mail", "pw")
	require.ErrorIs(t, err, store.ErrPayloadDecode)
	assert.Contains(t, err.Error(), "load store")
}

func TestSecretService_Insert_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, nil), nil)
	deps.repo.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrNoRecipient)

	err := svc.Insert(ctx, "mail", "pw")
	require.ErrorIs(t, err, store.ErrNoRecipient)
	assert.Contains(t, err.Error(), "save store")
}

// ── Update / Remove ──────────────────────────────────────────────────────────

func TestSecretService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"mail": "old"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil)
	deps.repo.EXPECT().Save(ctx, st).Return(nil)

	require.NoError(t, svc.Update(ctx, "mail", "new\nuser: me"))
	got, _ := st.Get("mail")
	assert.Equal(t, models.Secret("new\nuser: me"), got)
}

func TestSecretService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, nil), nil)

	assert.ErrorIs(t, svc.Update(ctx, "mail", "pw"), store.ErrNameNotFound)
}

func TestSecretService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"mail": "pw", "bank": "1234"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil)
	deps.repo.EXPECT().Save(ctx, st).Return(nil)

	require.NoError(t, svc.Remove(ctx, "mail"))
	assert.Equal(t, []string{"bank"}, st.Names())
}

func TestSecretService_Remove_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, nil), nil)

	assert.ErrorIs(t, svc.Remove(ctx, "mail"), store.ErrNameNotFound)
}

// ── Show / List / Exists ─────────────────────────────────────────────────────

func TestSecretService_ShowListExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"mail": "pw\nuser: me", "bank": "1234"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil).Times(4)

	secret, err := svc.Show(ctx, "mail")
	require.NoError(t, err)
	assert.Equal(t, models.Secret("pw\nuser: me"), secret)

	names, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bank", "mail"}, names)

	ok, err := svc.Exists(ctx, "bank")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── Reveal / Pick ────────────────────────────────────────────────────────────

func TestSecretService_Reveal_FirstLineOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	expiry := time.Now().Add(45 * time.Second)

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"mail": "pw\nuser: me"}), nil)
	deps.revealer.EXPECT().Reveal(ctx, []byte("pw")).Return(clipboard.Session{Expiry: expiry}, nil)

	session, err := svc.Reveal(ctx, "mail")
	require.NoError(t, err)
	assert.Equal(t, expiry, session.Expiry)
}

func TestSecretService_Reveal_EmptyFirstLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"notes": "\nonly metadata"}), nil)

	_, err := svc.Reveal(ctx, "notes")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSecretService_Reveal_ClipboardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"mail": "pw"}), nil)
	deps.revealer.EXPECT().Reveal(ctx, gomock.Any()).Return(clipboard.Session{}, errors.New("no xclip"))

	_, err := svc.Reveal(ctx, "mail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `reveal "mail"`)
}

func TestSecretService_Reveal_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, nil), nil)

	_, err := svc.Reveal(ctx, "mail")
	assert.ErrorIs(t, err, store.ErrNameNotFound)
}

func TestSecretService_Pick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"b": "1", "a": "2"}), nil)
	deps.picker.EXPECT().Pick(ctx, []string{"a", "b"}).Return("b", nil)

	name, err := svc.Pick(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", name)
}

func TestSecretService_NilCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockRepository(ctrl)
	svc := NewSecretService(repo, nil, nil, nil, logger.Nop())
	ctx := context.Background()

	_, err := svc.Reveal(ctx, "x")
	assert.ErrorIs(t, err, ErrNoRevealer)
	_, err = svc.Pick(ctx)
	assert.ErrorIs(t, err, ErrNoPicker)
	_, err = svc.Edit(ctx, "x")
	assert.ErrorIs(t, err, ErrNoEditor)
}

// ── Edit ─────────────────────────────────────────────────────────────────────

func TestSecretService_Edit_Saves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"mail": "pw"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil)
	deps.editor.EXPECT().Edit(ctx, "mail", []byte("pw")).Return([]byte("pw\nuser: me\n"), nil)
	deps.repo.EXPECT().Save(ctx, st).Return(nil)

	changed, err := svc.Edit(ctx, "mail")
	require.NoError(t, err)
	assert.True(t, changed)

	got, _ := st.Get("mail")
	assert.Equal(t, models.Secret("pw\nuser: me"), got)
}

func TestSecretService_Edit_Unchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"mail": "pw"}), nil)
	// the editor added the customary final newline only
	deps.editor.EXPECT().Edit(ctx, "mail", []byte("pw")).Return([]byte("pw\n"), nil)

	changed, err := svc.Edit(ctx, "mail")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSecretService_Edit_EmptiedRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"mail": "pw"}), nil)
	deps.editor.EXPECT().Edit(ctx, "mail", gomock.Any()).Return([]byte("\n"), nil)

	_, err := svc.Edit(ctx, "mail")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestSecretService_Edit_EditorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()

	deps.repo.EXPECT().Load(ctx).Return(storeWith(t, map[string]models.Secret{"mail": "pw"}), nil)
	deps.editor.EXPECT().Edit(ctx, "mail", gomock.Any()).Return(nil, errors.New("vi crashed"))

	_, err := svc.Edit(ctx, "mail")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `edit "mail"`)
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestSecretService_Init_Reencrypts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestSecretSvc(t, ctrl)
	ctx := context.Background()
	st := storeWith(t, map[string]models.Secret{"a": "1", "b": "2"})

	deps.repo.EXPECT().Load(ctx).Return(st, nil)
	deps.repo.EXPECT().Save(ctx, st).DoAndReturn(func(_ context.Context, s *store.Store) error {
		assert.Equal(t, "age1new", s.Recipient())
		return nil
	})

	n, err := svc.Init(ctx, " age1new ")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSecretService_Init_EmptyRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestSecretSvc(t, ctrl)

	_, err := svc.Init(context.Background(), "  ")
	assert.ErrorIs(t, err, store.ErrNoRecipient)
}
