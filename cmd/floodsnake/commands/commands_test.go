package commands

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const moveRequest = `{
  "game": {"id": "game-1"},
  "turn": 3,
  "board": {
    "height": 5,
    "width": 5,
    "food": [{"x": 2, "y": 0}],
    "snakes": [
      {"id": "me", "name": "floodsnake", "health": 90, "body": [{"x": 2, "y": 2}, {"x": 1, "y": 2}]}
    ]
  },
  "you": {"id": "me", "name": "floodsnake", "health": 90, "body": [{"x": 2, "y": 2}, {"x": 1, "y": 2}]}
}`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	region, path = "", ""
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMoveFromStdin(t *testing.T) {
	out, err := run(t, moveRequest, "move", "--log-level", "warn")
	require.NoError(t, err)
	require.Equal(t, "up\n", out)
}

func TestMoveFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(moveRequest), 0644))

	out, err := run(t, "", "move", "--log-level", "warn", file)
	require.NoError(t, err)
	require.Equal(t, "up\n", out)
}

func TestMoveRejectsUnknownFallback(t *testing.T) {
	_, err := run(t, moveRequest, "move", "--log-level", "warn", "--fallback", "circle")
	require.Error(t, err)
	fallback = "tail"
}

func TestRender(t *testing.T) {
	out, err := run(t, moveRequest, "render", "--log-level", "warn")
	require.NoError(t, err)
	require.Equal(t, "..*..\n.....\n.mM..\n.....\n.....\n", out)
}

func TestRenderRegionAndPath(t *testing.T) {
	out, err := run(t, moveRequest, "render", "--log-level", "warn", "--region", "0,0", "--path", "2,0")
	require.NoError(t, err)
	require.Contains(t, out, "region 0,0: area 23, heads 0, tails 1\n")
	require.Contains(t, out, "path to 2,0: 2 steps\n")
	require.True(t, strings.HasSuffix(out, "oo*oo\nooooo\nomMoo\nooooo\nooooo\n"), out)
}

func TestParsePoint(t *testing.T) {
	p, err := parsePoint("3,4")
	require.NoError(t, err)
	require.Equal(t, 3, p.X)
	require.Equal(t, 4, p.Y)

	_, err = parsePoint("x")
	require.Error(t, err)
}
