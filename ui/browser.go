// Package ui is an interactive browser over a directory of files, showing
// for each one whether it starts with a Cryptdatum header and whether that
// header is valid.
package ui

import (
	"io"
	"os"
	"path/filepath"

	"cryptdatum/cdt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	FileStateDir        = "dir"
	FileStateNoHeader   = "no header"
	FileStateHeader     = "header"
	FileStateValid      = "valid header"
	FileStateUnreadable = "unreadable"
)

type (
	Entry struct {
		Name  string
		State string
	}
	Browser struct {
		cwd     string
		entries []Entry
		cursor  int
	}
)

// ProbeFile classifies the file at path by its first header's worth of
// bytes. Directories and unreadable files get their own states so the
// browser can still list them.
func ProbeFile(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return FileStateUnreadable
	}
	if info.IsDir() {
		return FileStateDir
	}

	f, err := os.Open(path)
	if err != nil {
		return FileStateUnreadable
	}
	defer f.Close()

	bs := make([]byte, cdt.HeaderSize)
	n, err := io.ReadFull(f, bs)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileStateUnreadable
	}
	bs = bs[:n]

	if !cdt.HasHeader(bs) {
		return FileStateNoHeader
	}
	if cdt.HasValidHeader(bs) {
		return FileStateValid
	}
	return FileStateHeader
}

func ReadDirectory(path string) ([]Entry, error) {
	files, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	entries := lo.Map(
		files,
		func(file os.DirEntry, _ int) Entry {
			return Entry{
				Name:  file.Name(),
				State: ProbeFile(filepath.Join(path, file.Name())),
			}
		},
	)
	return entries, nil
}

func CreateBrowser(cwd string) (Browser, error) {
	entries, err := ReadDirectory(cwd)
	if err != nil {
		return Browser{}, err
	}
	return Browser{
		cwd:     cwd,
		entries: entries,
	}, nil
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.entries)-1 {
				b.cursor++
			}
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		}
	}
	return b, nil
}

func (b Browser) View() string {
	output := "CRYPTDATUM BROWSER\n\n"
	output += "Current directory: " + b.cwd + "\n\n"
	for i, entry := range b.entries {
		marker := "  "
		if i == b.cursor {
			marker = "> "
		}
		output += marker + entry.Name + " [" + entry.State + "]\n"
	}
	output += "\nup/down to move, q to quit\n"
	return output
}
