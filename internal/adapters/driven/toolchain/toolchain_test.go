package toolchain

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeevmm/eq/internal/core/domain"
)

func TestEditor_Edit(t *testing.T) {
	runner := &fakeRunner{}
	tool := domain.Tool{Capability: domain.CapabilityEditor, Command: []string{"/usr/bin/code", "--wait"}}
	editor := NewEditor(tool, runner)

	err := editor.Edit(context.Background(), "/w/eq.tex")

	require.NoError(t, err)
	cmd := runner.last()
	assert.Equal(t, "/usr/bin/code", cmd.Name)
	assert.Equal(t, []string{"--wait", "/w/eq.tex"}, cmd.Args)
	assert.True(t, cmd.Interactive)
}

func TestEditor_Edit_DoesNotMutateTool(t *testing.T) {
	runner := &fakeRunner{}
	command := make([]string, 2, 8)
	command[0], command[1] = "vim", "-n"
	editor := NewEditor(domain.Tool{Command: command}, runner)

	require.NoError(t, editor.Edit(context.Background(), "a.tex"))
	require.NoError(t, editor.Edit(context.Background(), "b.tex"))

	assert.Equal(t, []string{"-n", "a.tex"}, runner.commands[0].Args)
	assert.Equal(t, []string{"-n", "b.tex"}, runner.commands[1].Args)
}

func TestEditor_Edit_IgnoresExitStatus(t *testing.T) {
	runner := &fakeRunner{err: &exec.ExitError{}}
	editor := NewEditor(domain.Tool{Command: []string{"vim"}}, runner)

	err := editor.Edit(context.Background(), "/w/eq.tex")

	assert.NoError(t, err)
}

func TestEditor_Edit_StartFailure(t *testing.T) {
	runner := &fakeRunner{err: exec.ErrNotFound}
	editor := NewEditor(domain.Tool{Command: []string{"vim"}}, runner)

	err := editor.Edit(context.Background(), "/w/eq.tex")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEditorFailed))
	assert.True(t, errors.Is(err, exec.ErrNotFound))
}

func TestLatexmk_Compile(t *testing.T) {
	runner := &fakeRunner{}
	compiler := NewLatexmk(domain.Tool{Command: []string{"/usr/bin/latexmk"}}, runner)
	source := filepath.Join("work", "eq.tex")

	err := compiler.Compile(context.Background(), source, "work")

	require.NoError(t, err)
	cmd := runner.last()
	assert.Equal(t, "/usr/bin/latexmk", cmd.Name)
	assert.Equal(t, "work", cmd.Dir)
	assert.Equal(t, []string{
		"-pdf",
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory=work",
		"eq.tex",
	}, cmd.Args)
	assert.False(t, cmd.Interactive)
}

func TestLatexmk_Compile_Failure(t *testing.T) {
	runner := &fakeRunner{err: &exec.ExitError{}}
	compiler := NewLatexmk(domain.Tool{Command: []string{"latexmk"}}, runner)

	err := compiler.Compile(context.Background(), "eq.tex", ".")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompileFailed))
}

func TestMagick_Rasterize(t *testing.T) {
	tests := []struct {
		name     string
		command  []string
		wantName string
		wantHead []string
	}{
		{"imagemagick 7", []string{"/usr/bin/magick", "convert"}, "/usr/bin/magick", []string{"convert"}},
		{"legacy convert", []string{"/usr/bin/convert"}, "/usr/bin/convert", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			rasterizer := NewMagick(domain.Tool{Command: tt.command}, runner)

			err := rasterizer.Rasterize(context.Background(), "/w/eq.pdf", "/w/eq.png", 600)

			require.NoError(t, err)
			cmd := runner.last()
			assert.Equal(t, tt.wantName, cmd.Name)
			want := append(append([]string{}, tt.wantHead...),
				"-density", "600",
				"/w/eq.pdf",
				"-background", "white",
				"-alpha", "remove",
				"-flatten",
				"-colorspace", "sRGB",
				"/w/eq.png",
			)
			assert.Equal(t, want, cmd.Args)
		})
	}
}

func TestMagick_Rasterize_Failure(t *testing.T) {
	runner := &fakeRunner{err: &exec.ExitError{}}
	rasterizer := NewMagick(domain.Tool{Command: []string{"convert"}}, runner)

	err := rasterizer.Rasterize(context.Background(), "eq.pdf", "eq.png", 300)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRasterizeFailed))
}

func TestMagick_Rasterize_InvalidDensity(t *testing.T) {
	runner := &fakeRunner{}
	rasterizer := NewMagick(domain.Tool{Command: []string{"convert"}}, runner)

	err := rasterizer.Rasterize(context.Background(), "eq.pdf", "eq.png", 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, runner.commands)
}

func TestOSFinder(t *testing.T) {
	t.Setenv("EQ_FINDER_TEST", "value")

	finder := OSFinder{}

	assert.Equal(t, "value", finder.Getenv("EQ_FINDER_TEST"))
	assert.NotEmpty(t, finder.GOOS())
	_, err := finder.LookPath("eq-definitely-not-installed")
	assert.Error(t, err)
}
