package use

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/write/pkg/store"
)

// PromptPicker asks for a directory on the terminal.
type PromptPicker struct {
	In  io.Reader
	Out io.Writer
}

func (p PromptPicker) SelectDirectory(start string) (string, bool, error) {
	prompt := promptui.Prompt{
		Label:     "Journal folder",
		Default:   start,
		AllowEdit: true,
		Validate:  validateDirectory,
	}
	if p.In != nil {
		prompt.Stdin = io.NopCloser(p.In)
	}
	if p.Out != nil {
		prompt.Stdout = nopWriteCloser{p.Out}
	}

	dir, err := prompt.Run()
	switch {
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF), errors.Is(err, promptui.ErrAbort):
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	return strings.TrimSpace(dir), true, nil
}

func validateDirectory(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return errors.New("a folder is required")
	}
	dir, err := store.Expand(input)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.New("folder does not exist")
	}
	if !info.IsDir() {
		return errors.New("not a folder")
	}
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
