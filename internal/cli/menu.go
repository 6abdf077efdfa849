package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/oxidamotion/Tikauto/internal/model"
	"github.com/oxidamotion/Tikauto/internal/pipeline"
)

// Menu choices
const (
	ChoiceSinglePair = "1"
	ChoicePlaylists  = "2"
	ChoiceExit       = "3"
)

// Driver is the run-mode surface the menu dispatches to.
type Driver interface {
	SingleRun(ctx context.Context, topURL, bottomURL string) (*model.PairTask, error)
	PlaylistRun(ctx context.Context, topPlaylistURL, bottomPlaylistURL string) (pipeline.RunStats, error)
}

// Menu is the interactive top-level loop: {Menu, SinglePair, Playlists,
// Exit}, with SinglePair and Playlists returning to the menu when done.
type Menu struct {
	in     *bufio.Scanner
	out    io.Writer
	driver Driver

	heading *color.Color
	success *color.Color
	failure *color.Color
}

// NewMenu creates a menu reading choices and URLs from in and writing
// prompts to out.
func NewMenu(in io.Reader, out io.Writer, driver Driver) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		out:     out,
		driver:  driver,
		heading: color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}
}

// Run loops the menu until the user chooses exit or input ends. Pair
// failures are reported and return control to the menu; they never end the
// loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.heading.Fprintln(m.out, "\n--- Video Pair Processor ---")
		fmt.Fprintln(m.out, "1. Process a single pair of videos")
		fmt.Fprintln(m.out, "2. Process playlists")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Select an option (1/2/3): ")
		if !ok {
			return nil
		}

		switch choice {
		case ChoiceSinglePair:
			m.runSinglePair(ctx)
		case ChoicePlaylists:
			m.runPlaylists(ctx)
		case ChoiceExit:
			fmt.Fprintln(m.out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

// runSinglePair prompts for two video URLs and processes them as one pair.
func (m *Menu) runSinglePair(ctx context.Context) {
	topURL, ok := m.prompt("Enter the URL for the top video: ")
	if !ok {
		return
	}
	bottomURL, ok := m.prompt("Enter the URL for the bottom video: ")
	if !ok {
		return
	}

	task, err := m.driver.SingleRun(ctx, topURL, bottomURL)
	if err != nil {
		m.failure.Fprintf(m.out, "Run failed: %v\n", err)
		return
	}

	if task.Status == model.PairStatusCompleted {
		m.success.Fprintf(m.out, "Done: %d chunks written.\n", len(task.ChunkPaths))
	} else {
		m.failure.Fprintf(m.out, "Pair skipped: %s\n", task.LastError)
	}
}

// runPlaylists prompts for two playlist URLs and processes their videos as
// positional pairs.
func (m *Menu) runPlaylists(ctx context.Context) {
	topURL, ok := m.prompt("Enter the URL for the top playlist: ")
	if !ok {
		return
	}
	bottomURL, ok := m.prompt("Enter the URL for the bottom playlist: ")
	if !ok {
		return
	}

	stats, err := m.driver.PlaylistRun(ctx, topURL, bottomURL)
	if err != nil {
		m.failure.Fprintf(m.out, "Run failed: %v\n", err)
		return
	}

	if stats.Failed > 0 {
		m.failure.Fprintln(m.out, stats.Summary())
	} else {
		m.success.Fprintln(m.out, stats.Summary())
	}
}

// prompt prints the prompt text and reads one trimmed line. The second
// return value is false when input is exhausted.
func (m *Menu) prompt(text string) (string, bool) {
	fmt.Fprint(m.out, text)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
