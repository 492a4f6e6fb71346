package markup_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arthur-debert/chalker/pkg/backend"
	"github.com/arthur-debert/chalker/pkg/backend/ansi"
	"github.com/arthur-debert/chalker/pkg/errors"
	"github.com/arthur-debert/chalker/pkg/markup"
	"github.com/arthur-debert/chalker/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	b := trueColor()
	opt := markup.WithBackend(b)

	t.Run("empty input", func(t *testing.T) {
		out, err := markup.Format("", opt)
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})

	t.Run("no tags is identity", func(t *testing.T) {
		out, err := markup.Format("plain text", opt)
		require.NoError(t, err)
		assert.Equal(t, "plain text", out)
	})

	t.Run("entities decoded without tags", func(t *testing.T) {
		out, err := markup.Format("&quot;hello world&quot;", opt)
		require.NoError(t, err)
		assert.Equal(t, `"hello world"`, out)
	})

	t.Run("single span equals direct application", func(t *testing.T) {
		spans := []struct {
			chain string
			steps []step
		}{
			{"red.bold", []step{basic("red"), basic("bold")}},
			{"bgBlue.green.bold", []step{basic("bgBlue"), basic("green"), basic("bold")}},
			{"#FFA010.bg#1f9020", []step{op("hex", str("#FFA010")), op("bgHex", str("#1f9020"))}},
			{"orange.bgKeyword(`green`)", []step{op("keyword", str("orange")), op("bgKeyword", str("green"))}},
			{"hsl(32,100,50)", []step{op("hsl", ints(32, 100, 50))}},
		}
		for _, sp := range spans {
			out, err := markup.Format("<"+sp.chain+">text</>", opt)
			require.NoError(t, err, sp.chain)
			assert.Equal(t, direct(t, b, "text", sp.steps...), out, sp.chain)
		}
	})

	t.Run("anonymous tuple equals rgb", func(t *testing.T) {
		a, err := markup.Format("<(255,10,20)>x</>", opt)
		require.NoError(t, err)
		c, err := markup.Format("<rgb(255,10,20)>x</>", opt)
		require.NoError(t, err)
		assert.Equal(t, c, a)

		a, err = markup.Format("<(255, 10, 20).bg(20,10,255)>rgb red on blue</>", opt)
		require.NoError(t, err)
		c, err = markup.Format("<rgb(255, 10, 20).bgRgb(20,10,255)>rgb red on blue</>", opt)
		require.NoError(t, err)
		assert.Equal(t, c, a)
	})

	t.Run("keyword spellings agree", func(t *testing.T) {
		a, err := markup.Format("<orange.bgKeyword(`green`)>orange on green</><'green'.bg gold>green on gold</>", opt)
		require.NoError(t, err)
		c, err := markup.Format(`<'orange'.bg("green")>orange on green</><(green).bg(gold)>green on gold</>`, opt)
		require.NoError(t, err)
		assert.Equal(t, a, c)
	})

	t.Run("entities are decoded after styling", func(t *testing.T) {
		out, err := markup.Format("<red>&lt;tag&gt; &amp; &xyz;</red>", opt)
		require.NoError(t, err)
		assert.Equal(t, direct(t, b, "<tag> & &xyz;", basic("red")), out)
	})

	t.Run("errors surface", func(t *testing.T) {
		_, err := markup.Format("<blah(red)>x</>", opt)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBackendInvocation))
		assert.Contains(t, err.Error(), "blah is not a ansi function")

		_, err = markup.Format("<blah>x</blah>", opt)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDirective))
		assert.Contains(t, err.Error(), "blah is not found and invalid as a keyword")

		_, err = markup.Format("<(10,20,30>bad</>", opt)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
		assert.Contains(t, err.Error(), "missing matching ()")

		_, err = markup.Format("<red>", opt)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNesting))
		assert.Contains(t, err.Error(), "[<red>]")
	})

	t.Run("backend errors surface", func(t *testing.T) {
		_, err := markup.Format("<blah(foo)>bar</>", markup.WithBackend(failingBackend{Backend: b}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "calling fake.blah failed with: fake")
	})
}

func TestFormatDefaultBackend(t *testing.T) {
	prev := backend.SetDefault(ansi.New(termenv.TrueColor))
	defer backend.SetDefault(prev)

	out, err := markup.Format("<red>x</>")
	require.NoError(t, err)
	assert.Equal(t, "\x1b[31mx\x1b[0m", out)

	f := markup.New()
	assert.Equal(t, ansi.Name, f.Backend().Name())

	t.Run("nil backend option keeps default", func(t *testing.T) {
		assert.Equal(t, ansi.Name, markup.New(markup.WithBackend(nil)).Backend().Name())
	})
}

func TestFormatAsciiProfile(t *testing.T) {
	out, err := markup.Format("<red.bold>plain</> <#ff0000>text</>", markup.WithBackend(ansi.New(termenv.Ascii)))
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestFormatThemeBackend(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	theme := style.NewBackend(r)

	out, err := markup.Format("<success>done</> <path.bold>/tmp</>", markup.WithBackend(theme))
	require.NoError(t, err)

	success, _ := markup.Resolve("success", theme)
	path, _ := markup.Resolve("path.bold", theme)
	assert.Equal(t, success.Render("done")+" "+path.Render("/tmp"), out)

	_, err = markup.Format("<blah(x)>y</>", markup.WithBackend(theme))
	assert.Contains(t, err.Error(), "blah is not a theme function")
}

func TestFormatPaletteIndex(t *testing.T) {
	out, err := markup.Format("<ansi256(196)>x</>", markup.WithBackend(trueColor()))
	require.NoError(t, err)
	assert.Equal(t, "\x1b[38;5;196mx\x1b[0m", out)

	out, err = markup.Format("<bgAnsi256(21)>x</>", markup.WithBackend(trueColor()))
	require.NoError(t, err)
	assert.Equal(t, "\x1b[48;5;21mx\x1b[0m", out)

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	theme := style.NewBackend(r)

	out, err = markup.Format("<ansi256(196).bgAnsi256(21)>x</>", markup.WithBackend(theme))
	require.NoError(t, err)
	assert.Equal(t, direct(t, theme, "x", op("ansi256", ints(196)), op("bgAnsi256", ints(21))), out)
}

func TestFormatterLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prevLevel)

	f := markup.New(markup.WithBackend(trueColor()), markup.WithLogger(logger))

	_, err := f.Format("<red>x</>")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"tokens":3`)

	_, err = f.Format("<red>")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Markup rejected")
}

func TestMustFormat(t *testing.T) {
	opt := markup.WithBackend(trueColor())
	assert.Equal(t, "x", markup.MustFormat("x", opt))
	assert.Panics(t, func() { markup.MustFormat("<red>", opt) })
}

func TestRemove(t *testing.T) {
	input := "<red.bold>red bold text &#xD83D;&#xDC69;</red.bold><bgBlue.green.bold>green on blue bold</>"

	t.Run("decodes entities", func(t *testing.T) {
		assert.Equal(t, "red bold text \U0001F469green on blue bold", markup.Remove(input, false))
	})

	t.Run("keeps entities", func(t *testing.T) {
		assert.Equal(t, "red bold text &#xD83D;&#xDC69;green on blue bold", markup.Remove(input, true))
	})

	t.Run("trims and ignores nesting", func(t *testing.T) {
		assert.Equal(t, "a b", markup.Remove("  <red>a</blue> b<green>  ", false))
	})

	samples := []string{
		input,
		"plain &lt;x&gt;",
		"<a><b>nested</b></a> &amp;amp;",
		"<<red>>odd<</>>",
	}
	for _, s := range samples {
		t.Run("round trip "+s, func(t *testing.T) {
			assert.Equal(t, markup.Remove(s, false), markup.DecodeHTML(markup.Remove(s, true)))
		})
		t.Run("idempotent "+s, func(t *testing.T) {
			once := markup.Remove(s, true)
			assert.Equal(t, once, markup.Remove(once, true))
			assert.False(t, strings.Contains(once, "<") && strings.Contains(once[strings.Index(once, "<"):], ">"))
		})
	}
}

func TestDecodeHTML(t *testing.T) {
	assert.Equal(t, "<>&\"'\u00a0\u00a9\u00ae", markup.DecodeHTML("&lt;&gt;&amp;&quot;&apos;&nbsp;&copy;&reg;"))
	assert.Equal(t, "♥", markup.DecodeHTML("&#x2665;"))
	assert.Equal(t, "&xyz;", markup.DecodeHTML("&xyz;"))
}
