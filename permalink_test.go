package permalink_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/permalink"
	"github.com/dmitrymomot/permalink/pkg/hook"
	"github.com/dmitrymomot/permalink/pkg/slug"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("defaults to display", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "it%e2%80%99s", permalink.Filter(ctx, "It’s"))
		assert.Equal(t, "it%e2%80%99s", permalink.Filter(ctx, "It’s", "It’s"))
	})

	t.Run("reads context from the third argument", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "its", permalink.Filter(ctx, "It’s", "It’s", "save"))
		assert.Equal(t, "it%e2%80%99s", permalink.Filter(ctx, "It’s", "It’s", "display"))
	})

	t.Run("ignores the raw title", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "hello_world", permalink.Filter(ctx, "Hello World", "Completely Different", "save"))
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	r := hook.New()
	require.NoError(t, permalink.Register(r))

	assert.True(t, r.HasFilter(permalink.HookSanitizeTitle, permalink.FilterID))
	assert.Equal(t, "foo___bar", r.Apply(context.Background(), permalink.HookSanitizeTitle, "Foo – Bar", "Foo – Bar", "save"))
	assert.Equal(t, "foo_%e2%80%93_bar", r.Apply(context.Background(), permalink.HookSanitizeTitle, "Foo – Bar", "Foo – Bar", "display"))
}

func TestRegister_Priority(t *testing.T) {
	t.Parallel()

	r := hook.New()
	require.NoError(t, r.AddFilter(permalink.HookSanitizeTitle, "shout", func(_ context.Context, v string, _ ...string) string {
		return strings.ToUpper(v)
	}, hook.Priority(10)))
	require.NoError(t, permalink.Register(r, permalink.WithPriority(5)))

	assert.Equal(t, []string{permalink.FilterID, "shout"}, r.Filters(permalink.HookSanitizeTitle))
	assert.Equal(t, "HELLO_WORLD", r.Apply(context.Background(), permalink.HookSanitizeTitle, "Hello World"))
}

func TestPermalinks_SanitizeTitle(t *testing.T) {
	t.Parallel()

	p, err := permalink.New()
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name     string
		title    string
		fallback string
		sctx     slug.Context
		expected string
	}{
		{"display", "Hello   World", "", slug.Display, "hello_world"},
		{"save strips quotes", "Don’t Panic", "", slug.Save, "dont_panic"},
		{"display keeps quotes encoded", "Don’t Panic", "", slug.Display, "don%e2%80%99t_panic"},
		{"entity", "Tom &amp; Jerry", "", slug.Display, "tom_jerry"},
		{"fallback on empty", "!!!", "untitled", slug.Save, "untitled"},
		{"fallback on blank", "___---   ", "post_1", slug.Display, "post_1"},
		{"empty without fallback", "", "", slug.Save, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, p.SanitizeTitle(ctx, tt.title, tt.fallback, tt.sctx))
		})
	}
}

func TestPermalinks_Slug(t *testing.T) {
	t.Parallel()

	p, err := permalink.New()
	require.NoError(t, err)

	assert.Equal(t, "5_x_3", p.Slug(context.Background(), "5 × 3"))
}

func TestPermalinks_Chaining(t *testing.T) {
	t.Parallel()

	p, err := permalink.New()
	require.NoError(t, err)

	require.NoError(t, p.Registry().AddFilter(permalink.HookSanitizeTitle, "trim-prefix",
		func(_ context.Context, v string, _ ...string) string {
			return strings.TrimPrefix(v, "Draft: ")
		},
		hook.Priority(1),
	))
	require.NoError(t, p.Registry().AddFilter(permalink.HookSanitizeTitle, "prefix",
		func(_ context.Context, v string, _ ...string) string {
			return "post_" + v
		},
		hook.Priority(20),
	))

	assert.Equal(t, "post_hello_world", p.Slug(context.Background(), "Draft: Hello World"))
}

func TestNew_WithRegistry(t *testing.T) {
	t.Parallel()

	r := hook.New()
	p, err := permalink.New(permalink.WithRegistry(r))
	require.NoError(t, err)

	assert.Same(t, r, p.Registry())
	assert.True(t, r.HasFilter(permalink.HookSanitizeTitle, permalink.FilterID))
}

func TestNew_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := permalink.New(permalink.WithLogger(log))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "filter added")

	assert.Equal(t, "fallback", p.SanitizeTitle(context.Background(), "", "fallback", slug.Save))
	assert.Contains(t, buf.String(), "empty slug, using fallback")
}

func TestPermalinks_SanitizeAll(t *testing.T) {
	t.Parallel()

	p, err := permalink.New(permalink.WithConcurrency(2))
	require.NoError(t, err)

	t.Run("keeps order", func(t *testing.T) {
		t.Parallel()

		titles := make([]string, 50)
		expected := make([]string, 50)
		for i := range titles {
			titles[i] = fmt.Sprintf("Post #%d – Draft", i)
			expected[i] = fmt.Sprintf("post_%d___draft", i)
		}

		got, err := p.SanitizeAll(context.Background(), titles, "", slug.Save)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("applies fallback", func(t *testing.T) {
		t.Parallel()

		got, err := p.SanitizeAll(context.Background(), []string{"ok", "???"}, "untitled", slug.Display)
		require.NoError(t, err)
		assert.Equal(t, []string{"ok", "untitled"}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		got, err := p.SanitizeAll(context.Background(), nil, "", slug.Display)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		got, err := p.SanitizeAll(ctx, []string{"a", "b"}, "", slug.Display)
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, got)
	})
}
