package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "█████ 100%", ProgressBar(9, 9, 5))
}

func TestPanel_PadsToWidestLine(t *testing.T) {
	require.NoError(t, SetTheme("mono"))
	defer SetTheme("classic")

	out := Panel([]string{"ab", "abcd"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
	assert.Equal(t, "+------+", lines[3])
}

func TestPanel_IgnoresEscapeSequences(t *testing.T) {
	require.NoError(t, SetTheme("mono"))
	defer SetTheme("classic")

	out := Panel([]string{"\x1b[32mok\x1b[0m", "xx"})
	lines := strings.Split(Plain(out), "\n")
	assert.Equal(t, "| ok |", lines[1])
}

func TestThemeByName(t *testing.T) {
	for _, name := range Themes {
		th, err := ThemeByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
	}
	th, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, "classic", th.Name)

	_, err = ThemeByName("sparkly")
	assert.Error(t, err)
}

func TestOKAndFail(t *testing.T) {
	var out, errOut bytes.Buffer
	prevOut, prevErr := Out, Err
	Out, Err = &out, &errOut
	defer func() { Out, Err = prevOut, prevErr }()

	OK("added")
	Fail("boom")

	assert.Contains(t, Plain(out.String()), "added")
	assert.Contains(t, Plain(errOut.String()), "✖ boom")
}
