package treetable_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bjaus/treetable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRead = errors.New("read failed")

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errRead }

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    treetable.Format
		wantErr require.ErrorAssertionFunc
	}{
		"json":    {input: "json", want: treetable.JSON, wantErr: require.NoError},
		"yaml":    {input: "yaml", want: treetable.YAML, wantErr: require.NoError},
		"yml":     {input: "yml", want: treetable.YAML, wantErr: require.NoError},
		"toml":    {input: "TOML", want: treetable.TOML, wantErr: require.NoError},
		"unknown": {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := treetable.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := treetable.Formats()
	assert.Equal(t, []treetable.Format{treetable.JSON, treetable.YAML, treetable.TOML}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, treetable.JSON, treetable.Formats()[0])
	assert.Equal(t, "json", treetable.JSON.String())
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()
	f, err := treetable.FormatFromPath("conf/app.yml")
	require.NoError(t, err)
	assert.Equal(t, treetable.YAML, f)

	_, err = treetable.FormatFromPath("Makefile")
	assert.ErrorIs(t, err, treetable.ErrUnsupportedFormat)
	_, err = treetable.FormatFromPath("notes.txt")
	assert.ErrorIs(t, err, treetable.ErrUnsupportedFormat)
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format treetable.Format
		input  string
		want   string
	}{
		"json order": {
			format: treetable.JSON,
			input:  `{"b": 1, "a": [true, null, "x\ty"], "c": {"z": 1.50, "y": {}}}`,
			want:   "{b: 1, a: [true, null, x\ty], c: {z: 1.50, y: {}}}",
		},
		"json scalar": {
			format: treetable.JSON,
			input:  `"hi"`,
			want:   "hi",
		},
		"yaml order": {
			format: treetable.YAML,
			input:  "b: 1\na:\n  - x\n  - y\nc: ~\n",
			want:   "{b: 1, a: [x, y], c: ~}",
		},
		"yaml alias": {
			format: treetable.YAML,
			input:  "base: &b\n  x: 1\nother: *b\n",
			want:   "{base: {x: 1}, other: {x: 1}}",
		},
		"yaml block scalar": {
			format: treetable.YAML,
			input:  "text: |\n  one\n  two\n",
			want:   "{text: one\ntwo\n}",
		},
		"toml order": {
			format: treetable.TOML,
			input: strings.Join([]string{
				`title = "x"`,
				`zeta = 1`,
				`pi = 3.5`,
				`whole = 2.0`,
				`[owner]`,
				`name = "n"`,
				`alpha = true`,
				`[[items]]`,
				`id = 2`,
				`name = "b"`,
				`[[items]]`,
				`id = 3`,
			}, "\n"),
			want: "{title: x, zeta: 1, pi: 3.5, whole: 2.0, owner: {name: n, alpha: true}, items: [{id: 2, name: b}, {id: 3}]}",
		},
		"toml empty": {
			format: treetable.TOML,
			input:  "",
			want:   "{}",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v, err := treetable.Parse(tt.format, []byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format treetable.Format
		input  string
		want   error
	}{
		"json syntax": {format: treetable.JSON, input: `{"a": `, want: treetable.ErrInvalidDocument},
		"json empty":  {format: treetable.JSON, input: "", want: treetable.ErrInvalidDocument},
		"yaml syntax": {format: treetable.YAML, input: "a: [1, 2", want: treetable.ErrInvalidDocument},
		"yaml empty":  {format: treetable.YAML, input: "", want: treetable.ErrInvalidDocument},
		"toml syntax": {format: treetable.TOML, input: "a = ", want: treetable.ErrInvalidDocument},
		"unsupported": {format: treetable.Format("xml"), input: "<a/>", want: treetable.ErrUnsupportedFormat},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := treetable.Parse(tt.format, []byte(tt.input))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// aliasBomb builds a document where each level repeats the previous
// anchor ten times, expanding to 10^levels scalars.
func aliasBomb(levels int) string {
	var sb strings.Builder
	sb.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		ref := fmt.Sprintf("*l%d", i-1)
		fmt.Fprintf(&sb, "l%d: &l%d [%s]\n", i, i, strings.Repeat(ref+", ", 9)+ref)
	}
	return sb.String()
}

func TestParseYAMLAliasExpansion(t *testing.T) {
	t.Parallel()

	t.Run("bounded fan-out", func(t *testing.T) {
		t.Parallel()
		v, err := treetable.Parse(treetable.YAML, []byte(aliasBomb(2)))
		require.NoError(t, err)
		l2, ok := v.Get("l2")
		require.True(t, ok)
		assert.Equal(t, 10, l2.Len())
		assert.Equal(t, 10, l2.Items()[0].Len())
	})
	t.Run("excessive fan-out", func(t *testing.T) {
		t.Parallel()
		_, err := treetable.Parse(treetable.YAML, []byte(aliasBomb(7)))
		assert.ErrorIs(t, err, treetable.ErrInvalidDocument)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()
	v, err := treetable.Decode(strings.NewReader(`{"Hello Key": "World Value", "Hello Key 2": ["Hello", "World"]}`), treetable.JSON)
	require.NoError(t, err)
	assert.Equal(t, treetable.New(helloMap()).String(), treetable.New(v).String())

	_, err = treetable.Decode(errReader{}, treetable.JSON)
	assert.ErrorIs(t, err, errRead)
}

func TestDocuments(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format treetable.Format
		input  string
		want   []string
	}{
		"yaml stream": {format: treetable.YAML, input: "a: 1\n---\nb: 2\n---\n- x\n", want: []string{"{a: 1}", "{b: 2}", "[x]"}},
		"json lines":  {format: treetable.JSON, input: "{\"a\":1}\n{\"b\":2}\n", want: []string{"{a: 1}", "{b: 2}"}},
		"json concat": {format: treetable.JSON, input: `[1][2]"x"`, want: []string{"[1]", "[2]", "x"}},
		"toml single": {format: treetable.TOML, input: "a = 1\n", want: []string{"{a: 1}"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var got []string
			for v, err := range treetable.Documents(strings.NewReader(tt.input), tt.format) {
				require.NoError(t, err)
				got = append(got, v.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocumentsStopsAtError(t *testing.T) {
	t.Parallel()
	var got []string
	var errs []error
	for v, err := range treetable.Documents(strings.NewReader("{\"a\":1}\n{bad"), treetable.JSON) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"{a: 1}"}, got)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], treetable.ErrInvalidDocument)
}

func TestDocumentsReadError(t *testing.T) {
	t.Parallel()
	for _, err := range treetable.Documents(errReader{}, treetable.YAML) {
		assert.ErrorIs(t, err, errRead)
	}
}
