package replay

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/unionfind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioScript = `# 10 个元素
connected 1 3
union 1 2
union 2 3
connected 1 3
union 4 5
connected 1 5
union 3 4   # 1-2-3-4-5
connected 1 5
union 1 2
count
size 5
`

func outputs(results []Result) []string {
	var out []string
	for _, r := range results {
		out = append(out, r.Output)
	}
	return out
}

func TestRunScenario(t *testing.T) {
	ops, err := ParseScript(strings.Split(scenarioScript, "\n"))
	require.NoError(t, err)
	require.Len(t, ops, 11)
	assert.Equal(t, Op{Line: 8, Kind: OpUnion, Args: []int{3, 4}}, ops[6])

	ds := unionfind.MustNew(10)
	results, err := Run(ds, ops, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"false", "true", "true", "true", "true", "false", "true", "true", "false", "6", "5",
	}, outputs(results))
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		line   int
	}{
		{"unknown op", "union 1 2\nsplit 1", 2},
		{"missing arg", "\n\nfind", 3},
		{"extra arg", "count 1", 1},
		{"not int", "union a 2", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.Split(tt.script, "\n"))
			require.Error(t, err)
			var exitErr *errorutil.ExitErrorWithCode
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, errorutil.CodeInvalidData, exitErr.Code)
			assert.Equal(t, tt.line, exitErr.CmdExitCode)
		})
	}

	ops, err := ParseScript([]string{"UNION 0 1", "# c", "   "})
	require.NoError(t, err)
	assert.Equal(t, "union 0 1", ops[0].String())
}

func TestRunStopsAtFirstError(t *testing.T) {
	ops, err := ParseScript([]string{"union 0 1", "find 10", "union 2 3"})
	require.NoError(t, err)

	ds := unionfind.MustNew(10)
	results, err := Run(ds, ops, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, unionfind.ErrOutOfRange)
	assert.Contains(t, err.Error(), "第 2 行 find 10")
	assert.Equal(t, errorutil.CodeOutOfRange, errorutil.ExitCodeFromError(err))

	assert.Len(t, results, 1)
	assert.Equal(t, 9, ds.Count(), "第三行不应执行")
}

func TestRunTrace(t *testing.T) {
	ops, err := ParseScript([]string{"union 1 2", "union 2 1"})
	require.NoError(t, err)

	results, err := Run(unionfind.MustNew(3), ops, Options{Trace: true})
	require.NoError(t, err)
	t.Log("\n" + results[0].Trace)
	assert.Contains(t, results[0].Trace, "合并前")
	assert.Contains(t, results[0].Trace, "1(r=1)")
	assert.Contains(t, results[0].Trace, "'-- 2(r=0)")
	assert.Empty(t, results[1].Trace, "没有合并时不输出对照")
}

func TestReplayCmd(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ops.txt")
	state := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(script, []byte(scenarioScript), 0644))

	var out bytes.Buffer
	cmd := ReplayCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-n", "10", "-o", state, "--summary", script})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "union 3 4 => true")
	assert.Contains(t, out.String(), "集合: 6")

	// 从快照继续执行
	require.NoError(t, os.WriteFile(script, []byte("connected 1 5\nunion 0 9\ncount\n"), 0644))
	out.Reset()
	cmd = ReplayCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-f", state, script})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "connected 1 5 => true\nunion 0 9 => true\ncount => 5\n", out.String())

	out.Reset()
	show := ShowCmd()
	show.SetOut(&out)
	show.SetArgs([]string{"-f", state})
	require.NoError(t, show.Execute())
	assert.Contains(t, out.String(), "1(r=2)")
}

func TestReplayCmdErrors(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(script, []byte("union 1 20\n"), 0644))

	cmd := ReplayCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-n", "10", script})
	err := cmd.Execute()
	assert.Equal(t, errorutil.CodeOutOfRange, errorutil.ExitCodeFromError(err))

	cmd = ReplayCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--size=-1", script})
	err = cmd.Execute()
	assert.Equal(t, errorutil.CodeInvalidSize, errorutil.ExitCodeFromError(err))

	cmd = ReplayCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{filepath.Join(dir, "missing.txt")})
	err = cmd.Execute()
	assert.Equal(t, errorutil.CodeMissingInput, errorutil.ExitCodeFromError(err))

	cmd = ReplayCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"-n", "10", "--grep", "(", script})
	err = cmd.Execute()
	assert.Equal(t, errorutil.CodeInvalidUsage, errorutil.ExitCodeFromError(err))
}

func TestReplayCmdGrep(t *testing.T) {
	script := filepath.Join(t.TempDir(), "ops.txt")
	require.NoError(t, os.WriteFile(script, []byte("union 1 2\nunion 2 1\ncount\n"), 0644))

	var out bytes.Buffer
	cmd := ReplayCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-n", "4", "-g", "=> false", script})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "union 2 1 => false\n", out.String())
}
