package main

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tesserakit/tessera/internal/logger"
	"github.com/tesserakit/tessera/pkg/kiterrors"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return log
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cmd := newVersionCmd()
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Tessera")
	assert.Contains(t, buf.String(), "commit:")
}

func TestThemesCommand(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	cmd := newThemesCmd()
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "default")
	assert.Contains(t, buf.String(), "dark")
	assert.Contains(t, buf.String(), "primary")
}

func TestGalleryRejectsMissingThemeFile(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd(testLogger(t))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"gallery", "--theme", filepath.Join(t.TempDir(), "absent.yaml")})

	err := cmd.Execute()
	require.Error(t, err)

	var parseErr *kiterrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
