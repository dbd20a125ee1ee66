package business

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/storage"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type memRepo struct {
	current *Profile
}

func (r *memRepo) Get(context.Context) (*Profile, error) {
	if r.current == nil {
		return nil, ErrNotFound
	}
	cp := *r.current
	return &cp, nil
}

func (r *memRepo) Save(_ context.Context, p *Profile) error {
	if r.current != nil {
		p.LogoPath = r.current.LogoPath
	}
	p.UpdatedAt = time.Now()
	cp := *p
	r.current = &cp
	return nil
}

func (r *memRepo) SetLogo(_ context.Context, path string) (*Profile, error) {
	if r.current == nil {
		return nil, ErrNotFound
	}
	r.current.LogoPath = path
	cp := *r.current
	return &cp, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		img.Set(x, 0, color.NRGBA{B: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestService(t *testing.T) (Service, *memRepo, *storage.LocalStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	repo := &memRepo{}
	return NewService(repo, store, zap.NewNop()), repo, store
}

func validProfile() UpdateRequest {
	return UpdateRequest{
		Name:         " Arena Central ",
		Address:      "Rua das Quadras, 100",
		Phone:        "(11) 3333-4444",
		Email:        "contato@arena.com.br",
		OpeningHours: "Seg a Sex 08h-22h, Sáb e Dom 09h-18h",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *UpdateRequest)
		want   []validation.Code
	}{
		{"valid", func(r *UpdateRequest) {}, []validation.Code{}},
		{"optional contact left blank", func(r *UpdateRequest) { r.Phone, r.Email, r.Address = "", "", "" }, []validation.Code{}},
		{"blank name", func(r *UpdateRequest) { r.Name = "  " }, []validation.Code{validation.CodeRequired}},
		{"missing opening hours", func(r *UpdateRequest) { r.OpeningHours = "" }, []validation.Code{validation.CodeRequired}},
		{"short phone", func(r *UpdateRequest) { r.Phone = "3333" }, []validation.Code{validation.CodeInvalidContact}},
		{"bad email", func(r *UpdateRequest) { r.Email = "contato@arena" }, []validation.Code{validation.CodeInvalidEmail}},
		{"name too long", func(r *UpdateRequest) { r.Name = strings.Repeat("a", 121) }, []validation.Code{validation.CodeInvalidValue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validProfile()
			tt.mutate(&req)
			assert.Equal(t, tt.want, Validate(req).Codes())
		})
	}
}

func TestBusinessService(t *testing.T) {
	ctx := context.Background()
	svc, repo, store := newTestService(t)

	t.Run("Get before configuration", func(t *testing.T) {
		_, err := svc.Get(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Logo upload before configuration", func(t *testing.T) {
		_, err := svc.UploadLogo(ctx, bytes.NewReader(pngBytes(t, 10, 10)), "image/png")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Update trims and normalizes", func(t *testing.T) {
		p, err := svc.Update(ctx, validProfile())
		require.NoError(t, err)
		assert.Equal(t, "Arena Central", p.Name)
		assert.Equal(t, "1133334444", p.Phone)
		assert.False(t, p.HasLogo())
	})

	t.Run("Update rejects invalid profile", func(t *testing.T) {
		req := validProfile()
		req.Name = ""
		_, err := svc.Update(ctx, req)
		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "name", vErr.Result.Issues[0].Field)
	})

	var firstLogo string
	t.Run("UploadLogo shrinks and stores PNG", func(t *testing.T) {
		p, err := svc.UploadLogo(ctx, bytes.NewReader(pngBytes(t, 2048, 1024)), "image/png")
		require.NoError(t, err)
		require.True(t, p.HasLogo())
		firstLogo = p.LogoPath

		rc, err := svc.Logo(ctx)
		require.NoError(t, err)
		defer rc.Close()
		cfg, format, err := image.DecodeConfig(rc)
		require.NoError(t, err)
		assert.Equal(t, "png", format)
		assert.Equal(t, LogoMaxSide, cfg.Width)
		assert.Equal(t, LogoMaxSide/2, cfg.Height)
	})

	t.Run("second upload replaces the first", func(t *testing.T) {
		p, err := svc.UploadLogo(ctx, bytes.NewReader(pngBytes(t, 64, 64)), "image/png; charset=binary")
		require.NoError(t, err)
		assert.NotEqual(t, firstLogo, p.LogoPath)

		_, err = store.Get(ctx, firstLogo)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("profile update keeps the logo", func(t *testing.T) {
		p, err := svc.Update(ctx, validProfile())
		require.NoError(t, err)
		assert.Equal(t, repo.current.LogoPath, p.LogoPath)
		assert.True(t, p.HasLogo())
	})

	t.Run("UploadLogo rejections", func(t *testing.T) {
		tests := []struct {
			name        string
			content     io.Reader
			contentType string
			want        error
		}{
			{"unsupported type", bytes.NewReader(pngBytes(t, 8, 8)), "image/gif", ErrUnsupportedLogo},
			{"not an image", strings.NewReader("hello"), "image/png", ErrUnsupportedLogo},
			{"too large", io.LimitReader(zeroReader{}, MaxLogoBytes+10), "image/jpeg", ErrLogoTooLarge},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				before := repo.current.LogoPath
				_, err := svc.UploadLogo(ctx, tt.content, tt.contentType)
				assert.ErrorIs(t, err, tt.want)
				assert.Equal(t, before, repo.current.LogoPath)
			})
		}
	})

	t.Run("Logo missing from storage", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, repo.current.LogoPath))
		_, err := svc.Logo(ctx)
		assert.ErrorIs(t, err, ErrNoLogo)
	})
}

func TestLogoNotUploaded(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Update(context.Background(), validProfile())
	require.NoError(t, err)

	_, err = svc.Logo(context.Background())
	assert.ErrorIs(t, err, ErrNoLogo)
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
