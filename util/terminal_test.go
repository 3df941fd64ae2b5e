package util

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Width            int
	Err              error
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsTerminalResult
}

func (m *MockTerminal) GetSize(fd int) (int, int, error) {
	return m.Width, 24, m.Err
}

type fakeFile struct {
	bytes.Buffer
}

func (f *fakeFile) Fd() uintptr {
	return 42
}

func TestTerminalWidth(t *testing.T) {
	tests := []struct {
		name   string
		file   bool
		mock   *MockTerminal
		want   int
		isTerm bool
	}{
		{
			name: "plain writer",
			mock: &MockTerminal{IsTerminalResult: true, Width: 120},
			want: DefaultWidth,
		},
		{
			name: "file not attached to a terminal",
			file: true,
			mock: &MockTerminal{Width: 120},
			want: DefaultWidth,
		},
		{
			name:   "terminal",
			file:   true,
			mock:   &MockTerminal{IsTerminalResult: true, Width: 120},
			want:   120,
			isTerm: true,
		},
		{
			name:   "size query fails",
			file:   true,
			mock:   &MockTerminal{IsTerminalResult: true, Err: errors.New("no tty")},
			want:   DefaultWidth,
			isTerm: true,
		},
		{
			name:   "zero width",
			file:   true,
			mock:   &MockTerminal{IsTerminalResult: true},
			want:   DefaultWidth,
			isTerm: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w io.Writer = &bytes.Buffer{}
			if tt.file {
				w = &fakeFile{}
			}
			assert.Equal(t, tt.want, TerminalWidth(w, tt.mock))
			assert.Equal(t, tt.isTerm, IsTerminal(w, tt.mock))
		})
	}
}
