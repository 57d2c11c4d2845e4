package filename_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyname/pkg/filename"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "hyperlink with colon and slashes",
			input:    "Read: http://blog.getreu.net/projects/tp-note/",
			expected: "Read_ http_blog.getreu.net_projects_tp-note",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "leading and trailing spaces",
			input:    "   leading and trailing   ",
			expected: "leading and trailing",
		},
		{
			name:     "consecutive newlines collapse to one dash",
			input:    "a\n\nb",
			expected: "a-b",
		},
		{
			name:     "only forbidden characters",
			input:    "***",
			expected: "",
		},
		{
			name:     "repeated slashes",
			input:    "file///name",
			expected: "file_name",
		},
		{
			name:     "tabs become spaces",
			input:    "\tabc\tefg\t",
			expected: "abc efg",
		},
		{
			name:     "control character becomes space",
			input:    "abc\u0019efg",
			expected: "abc efg",
		},
		{
			name:     "null character becomes space",
			input:    "hello\u0000world",
			expected: "hello world",
		},
		{
			name:     "DEL becomes space",
			input:    "test\x7ffile",
			expected: "test file",
		},
		{
			name:     "run of forbidden characters",
			input:    `abc:\/|?~=efg`,
			expected: "abc_~=efg",
		},
		{
			name:     "URL-unsafe characters are kept by default",
			input:    "abc<>\"*<>#%{}^[]+[]`efg",
			expected: "abc_#%{}^[]+[]`efg",
		},
		{
			name:     "unix newline",
			input:    "abc\nefg",
			expected: "abc-efg",
		},
		{
			name:     "windows newline",
			input:    "abc\r\nefg",
			expected: "abc-efg",
		},
		{
			name:     "next line, line and paragraph separators",
			input:    "a\u0085b\u2028c\u2029d",
			expected: "a-b-c-d",
		},
		{
			name:     "different adjacent runs are kept",
			input:    "a__ __b",
			expected: "a_ _b",
		},
		{
			name:     "mixed underscore and space runs",
			input:    "abc_ __  efg __hij",
			expected: "abc_ _ efg _hij",
		},
		{
			name:     "trailing slash is trimmed",
			input:    "https://blog.getreu.net/projects/",
			expected: "https_blog.getreu.net_projects",
		},
		{
			name:     "dashes at the edges are kept",
			input:    "\nabc\n",
			expected: "-abc-",
		},
		{
			name:     "trimming stops at a dash",
			input:    "-_ \tabc \t >_-\n   efg \t_-",
			expected: "-_ abc _- efg _-",
		},
		{
			name:     "literal dashes collapse",
			input:    "---",
			expected: "-",
		},
		{
			name:     "literal underscores are trimmed",
			input:    "___",
			expected: "",
		},
		{
			name:     "dash space dash survives",
			input:    "- -",
			expected: "- -",
		},
		{
			name:     "zero width space becomes underscore",
			input:    "foo\u200bbar",
			expected: "foo_bar",
		},
		{
			name:     "no-break space becomes space",
			input:    "test\u00a0file",
			expected: "test file",
		},
		{
			name:     "ideographic space next to space collapses",
			input:    "test \u3000file",
			expected: "test file",
		},
		{
			name:     "invalid UTF-8 becomes space",
			input:    "a\xffb",
			expected: "a b",
		},
		{
			name:     "only invalid UTF-8",
			input:    "\xff\xfe",
			expected: "",
		},
		{
			name:     "private use character becomes space",
			input:    "a\ue000b",
			expected: "a b",
		},
		{
			name:     "relative path",
			input:    "relative/path/to/some/dir",
			expected: "relative_path_to_some_dir",
		},
		{
			name:     "absolute path",
			input:    "/abs/path/to/some/dir",
			expected: "abs_path_to_some_dir",
		},
		{
			name:     "dots are not trimmed",
			input:    "./foobar",
			expected: "._foobar",
		},
		{
			name:     "author with colon",
			input:    "author: title",
			expected: "author_ title",
		},
		{
			name:     "french spacing around colon",
			input:    "auteur : titre",
			expected: "auteur _ titre",
		},
		{
			name:     "pipe between spaces",
			input:    "author | title",
			expected: "author _ title",
		},
		{
			name:     "question marks",
			input:    "Any questions? Or not?",
			expected: "Any questions_ Or not",
		},
		{
			name:     "angle brackets",
			input:    "brack<e>ts",
			expected: "brack_e_ts",
		},
		{
			name:     "file system safe punctuation is kept",
			input:    "semi;colon com,ma equals= plus+ 'quoted' Hello! filename(1).ext",
			expected: "semi;colon com,ma equals= plus+ 'quoted' Hello! filename(1).ext",
		},
		{
			name:     "accented letters are kept",
			input:    "résumé",
			expected: "résumé",
		},
		{
			name:     "non latin scripts and emoji are kept",
			input:    "测试-тест-😀.txt",
			expected: "测试-тест-😀.txt",
		},
		{
			name:     "clean name is unchanged",
			input:    "normal-file_123.txt",
			expected: "normal-file_123.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, filename.Sanitize(tt.input))
		})
	}
}

func TestSanitizer_Policies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []filename.Option
		input    string
		expected string
	}{
		{
			name:     "no options matches Sanitize",
			input:    "Read: http://blog.getreu.net/projects/tp-note/",
			expected: "Read_ http_blog.getreu.net_projects_tp-note",
		},
		{
			name:     "trim dashes removes edge dashes",
			opts:     []filename.Option{filename.TrimDashes(true)},
			input:    "\nabc\n",
			expected: "abc",
		},
		{
			name:     "trim dashes keeps inner dashes",
			opts:     []filename.Option{filename.TrimDashes(true)},
			input:    "-_ \tabc \t >_-\n   efg \t_-",
			expected: "abc _- efg",
		},
		{
			name:     "trim dashes disabled explicitly",
			opts:     []filename.Option{filename.TrimDashes(false)},
			input:    "\nabc\n",
			expected: "-abc-",
		},
		{
			name:     "url safe replaces url-unsafe characters",
			opts:     []filename.Option{filename.URLSafe(true)},
			input:    "abc<>\"*<>#%{}^[]+[]`efg",
			expected: "abc_[]+[]_efg",
		},
		{
			name:     "url safe replaces tilde",
			opts:     []filename.Option{filename.URLSafe(true)},
			input:    `abc:\/|?~=efg`,
			expected: "abc_=efg",
		},
		{
			name:     "url safe with trim dashes",
			opts:     []filename.Option{filename.URLSafe(true), filename.TrimDashes(true)},
			input:    "~/notes\n",
			expected: "notes",
		},
		{
			name:     "drop invisible removes zero width space",
			opts:     []filename.Option{filename.DropInvisible(true)},
			input:    "foo\u200bbar",
			expected: "foobar",
		},
		{
			name:     "drop invisible removes bidi marks and BOM",
			opts:     []filename.Option{filename.DropInvisible(true)},
			input:    "\ufefftest\u200e\u200ffile",
			expected: "testfile",
		},
		{
			name:     "drop invisible lets neighbours collapse",
			opts:     []filename.Option{filename.DropInvisible(true)},
			input:    "a_\u00ad_b",
			expected: "a_b",
		},
		{
			name:     "normalize composes accents",
			opts:     []filename.Option{filename.Normalize(true)},
			input:    "re\u0301sume\u0301",
			expected: "r\u00e9sum\u00e9",
		},
		{
			name:     "without normalize accents stay decomposed",
			input:    "re\u0301sume\u0301",
			expected: "re\u0301sume\u0301",
		},
		{
			name:     "normalize after dropping invisible characters",
			opts:     []filename.Option{filename.Normalize(true), filename.DropInvisible(true)},
			input:    "e\u200b\u0301",
			expected: "\u00e9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := filename.New(tt.opts...)
			assert.Equal(t, tt.expected, s.Sanitize(tt.input))
		})
	}
}

func TestSanitizer_FixedPoint(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Read: http://blog.getreu.net/projects/tp-note/",
		"-_ \tabc \t >_-\n   efg \t_-",
		"e\u200b\u0301 \u00a0 x",
		"\r\n\r\n",
		"a\xffb\xfe",
	}
	policies := map[string][]filename.Option{
		"default":     nil,
		"trim dashes": {filename.TrimDashes(true)},
		"everything": {
			filename.TrimDashes(true),
			filename.URLSafe(true),
			filename.DropInvisible(true),
			filename.Normalize(true),
		},
	}

	for name, opts := range policies {
		s := filename.New(opts...)
		for _, in := range inputs {
			once := s.Sanitize(in)
			assert.Equal(t, once, s.Sanitize(once), "policy %q, input %q", name, in)
		}
	}
}

func TestSanitizer_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := filename.New(filename.URLSafe(true), filename.Normalize(true))
	const input = "Read: http://blog.getreu.net/projects/#tp-note/"
	want := s.Sanitize(input)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Sanitize(input)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
