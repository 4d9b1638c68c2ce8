package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-fresnel/pkg/core"
	"github.com/df07/go-fresnel/pkg/imagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_List(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &stdout))

	for _, id := range []string{"hex-sphere", "four-spheres", "outline-material"} {
		assert.Contains(t, stdout.String(), id)
	}
}

func TestRun_Help(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-help"}, &stdout))
	assert.Contains(t, stdout.String(), "Usage: fresnel")
}

func TestRun_Render(t *testing.T) {
	tests := []struct {
		name  string
		scene string
	}{
		{"hex sphere", "hex-sphere"},
		{"four spheres", "four-spheres"},
		{"outline material", "outline-material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var stdout bytes.Buffer
			err := run([]string{
				"-scene", tt.scene,
				"-width", "40", "-height", "30",
				"-limit", "1",
				"-output", dir,
			}, &stdout)
			require.NoError(t, err)

			matches, err := filepath.Glob(filepath.Join(dir, tt.scene, "render_*.png"))
			require.NoError(t, err)
			require.Len(t, matches, 1)

			img, err := imagetest.Open(matches[0])
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 40, 30), img.Rect)
			assert.Contains(t, stdout.String(), "Render saved as")
		})
	}
}

func TestRun_ConfigFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "render.toml")
	content := strings.Join([]string{
		`scene = "four-spheres"`,
		`width = 20`,
		`height = 20`,
		`output = "` + filepath.ToSlash(filepath.Join(dir, "out")) + `"`,
		`[preview]`,
		`scale = 2.0`,
	}, "\n")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-config", configPath, "-width", "10"}, &stdout))

	renders, _ := filepath.Glob(filepath.Join(dir, "out", "four-spheres", "render_*.png"))
	require.Len(t, renders, 1)
	img, err := imagetest.Open(renders[0])
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 20), img.Rect)

	previews, _ := filepath.Glob(filepath.Join(dir, "out", "four-spheres", "preview_*.png"))
	require.Len(t, previews, 1)
	preview, err := imagetest.Open(previews[0])
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 40), preview.Rect)
}

func TestRun_PrintConfig(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run([]string{"-print-config", "-scene", "four-spheres", "-device", "gpu"}, &stdout))
	assert.Regexp(t, `scene = ['"]four-spheres['"]`, stdout.String())
	assert.Regexp(t, `mode = ['"]gpu['"]`, stdout.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "cornell", "-output", t.TempDir()}},
		{"bad size", []string{"-width", "0"}},
		{"bad device", []string{"-device", "tpu"}},
		{"bad antialiasing", []string{"-aa", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run(tt.args, &stdout)
			assert.ErrorIs(t, err, core.ErrInvalidArgument)
		})
	}

	var stdout bytes.Buffer
	assert.Error(t, run([]string{"-no-such-flag"}, &stdout))
}
