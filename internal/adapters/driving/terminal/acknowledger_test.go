package terminal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errReader fails every read.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestAcknowledge_ReadsLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\nleftover")
	a := &Acknowledger{in: in, out: &out, fd: -1}

	err := a.Acknowledge(context.Background(), "Press any key to go back to edition.")

	require.NoError(t, err)
	assert.Equal(t, "Press any key to go back to edition.\n", out.String())
}

// onceReader hands out data on the first read and fails every read after it.
type onceReader struct {
	data string
	err  error
	read bool
}

func (r *onceReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, r.err
	}
	r.read = true
	return copy(p, r.data), nil
}

func TestAcknowledge_KeepsBufferedLines(t *testing.T) {
	readErr := errors.New("stdin closed")
	a := &Acknowledger{in: &onceReader{data: "\n\n", err: readErr}, out: &bytes.Buffer{}, fd: -1}

	require.NoError(t, a.Acknowledge(context.Background(), "first"))
	require.NoError(t, a.Acknowledge(context.Background(), "second"))
	assert.ErrorIs(t, a.Acknowledge(context.Background(), "third"), readErr)
}

func TestAcknowledge_EOF(t *testing.T) {
	var out bytes.Buffer
	a := &Acknowledger{in: strings.NewReader(""), out: &out, fd: -1}

	err := a.Acknowledge(context.Background(), "prompt")

	assert.NoError(t, err)
}

func TestAcknowledge_ReadError(t *testing.T) {
	readErr := errors.New("boom")
	a := &Acknowledger{in: errReader{readErr}, out: &bytes.Buffer{}, fd: -1}

	err := a.Acknowledge(context.Background(), "prompt")

	assert.ErrorIs(t, err, readErr)
}

func TestAcknowledge_CancelledContext(t *testing.T) {
	var out bytes.Buffer
	a := &Acknowledger{in: strings.NewReader("\n"), out: &out, fd: -1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Acknowledge(ctx, "prompt")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestNewAcknowledger_NonTerminalFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()
	_, err = f.WriteString("y\n")
	require.NoError(t, err)
	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	a := NewAcknowledger(f, &out)

	assert.NoError(t, a.Acknowledge(context.Background(), "prompt"))
	assert.Equal(t, "prompt\n", out.String())
}
