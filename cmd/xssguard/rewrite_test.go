package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/xssguard/pkg/defuse"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRewriteCmd(t *testing.T) {
	t.Parallel()

	const input = `<script>x()</script><a href=javascript:x()>a</a><base href="/">`

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "html by default",
			args: []string{"rewrite"},
			want: `&lt;script>x()</script><a href&#61;javascript:x()>a</a><base href="/">`,
		},
		{
			name: "text mode",
			args: []string{"rewrite", "--mode", "text"},
			want: "<" + defuse.Joiner + "script>x()</script><a href" + defuse.Joiner + `=javascript:x()>a</a><base href="/">`,
		},
		{
			name: "scriptless",
			args: []string{"rewrite", "--scriptless"},
			want: `&lt;script>x()</script><a href&#61;javascript:x()>a</a>&lt;base href="/">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := runCLI(t, input, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRewriteCmd_Report(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCLI(t, `<script><SCRIPT>`, "rewrite", "--report", "-m", "plain")
	require.NoError(t, err)
	assert.Equal(t, "mode=text script=2 href=0 total=2\n", stderr)
}

func TestRewriteCmd_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<Script>`), 0o600))

	out, _, err := runCLI(t, "", "rewrite", path)
	require.NoError(t, err)
	assert.Equal(t, "&lt;Script>", out)

	_, _, err = runCLI(t, "", "rewrite", filepath.Join(t.TempDir(), "missing.html"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRewriteCmd_BadMode(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "", "rewrite", "--mode", "pdf")
	assert.ErrorIs(t, err, defuse.ErrUnknownMode)
}
