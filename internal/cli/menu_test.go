package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/oxidamotion/Tikauto/internal/model"
	"github.com/oxidamotion/Tikauto/internal/pipeline"
)

type scriptedDriver struct {
	singleCalls   [][2]string
	playlistCalls [][2]string
	singleTask    *model.PairTask
	playlistStats pipeline.RunStats
	playlistErr   error
}

func (d *scriptedDriver) SingleRun(_ context.Context, topURL, bottomURL string) (*model.PairTask, error) {
	d.singleCalls = append(d.singleCalls, [2]string{topURL, bottomURL})
	task := d.singleTask
	if task == nil {
		task = &model.PairTask{Status: model.PairStatusCompleted}
	}
	return task, nil
}

func (d *scriptedDriver) PlaylistRun(_ context.Context, topURL, bottomURL string) (pipeline.RunStats, error) {
	d.playlistCalls = append(d.playlistCalls, [2]string{topURL, bottomURL})
	return d.playlistStats, d.playlistErr
}

func runMenu(t *testing.T, input string, driver Driver) string {
	t.Helper()
	var out bytes.Buffer
	menu := NewMenu(strings.NewReader(input), &out, driver)
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("expected no error from menu, got %v", err)
	}
	return out.String()
}

func TestMenu_ExitChoice(t *testing.T) {
	driver := &scriptedDriver{}
	out := runMenu(t, "3\n", driver)

	if !strings.Contains(out, "Exiting.") {
		t.Errorf("expected exit message, got: %s", out)
	}
	if len(driver.singleCalls) != 0 || len(driver.playlistCalls) != 0 {
		t.Error("expected no driver calls on immediate exit")
	}
}

func TestMenu_InvalidChoiceReprompts(t *testing.T) {
	out := runMenu(t, "9\nbanana\n3\n", &scriptedDriver{})

	if strings.Count(out, "Invalid choice") != 2 {
		t.Errorf("expected two invalid-choice messages, got: %s", out)
	}
	if strings.Count(out, "--- Video Pair Processor ---") != 3 {
		t.Errorf("expected the menu to be printed three times, got: %s", out)
	}
}

func TestMenu_SinglePairDispatch(t *testing.T) {
	driver := &scriptedDriver{
		singleTask: &model.PairTask{
			Status:     model.PairStatusCompleted,
			ChunkPaths: []string{"chunk_1.mp4", "chunk_2.mp4"},
		},
	}
	input := "1\n https://youtube.com/watch?v=top \nhttps://youtube.com/watch?v=bot\n3\n"
	out := runMenu(t, input, driver)

	if len(driver.singleCalls) != 1 {
		t.Fatalf("expected 1 single run, got %d", len(driver.singleCalls))
	}

	// URLs are whitespace-trimmed before dispatch.
	call := driver.singleCalls[0]
	if call[0] != "https://youtube.com/watch?v=top" || call[1] != "https://youtube.com/watch?v=bot" {
		t.Errorf("unexpected URLs: %v", call)
	}

	if !strings.Contains(out, "2 chunks written") {
		t.Errorf("expected chunk count report, got: %s", out)
	}
}

func TestMenu_SinglePairFailureReturnsToMenu(t *testing.T) {
	driver := &scriptedDriver{
		singleTask: &model.PairTask{
			Status:    model.PairStatusFailed,
			LastError: "download: unreachable",
		},
	}
	out := runMenu(t, "1\ntop-url\nbot-url\n3\n", driver)

	if !strings.Contains(out, "Pair skipped: download: unreachable") {
		t.Errorf("expected skip report, got: %s", out)
	}
	if !strings.Contains(out, "Exiting.") {
		t.Errorf("expected to return to menu and exit, got: %s", out)
	}
}

func TestMenu_PlaylistDispatch(t *testing.T) {
	driver := &scriptedDriver{
		playlistStats: pipeline.RunStats{Total: 3, Succeeded: 3, Chunks: 9},
	}
	out := runMenu(t, "2\ntop-playlist\nbottom-playlist\n3\n", driver)

	if len(driver.playlistCalls) != 1 {
		t.Fatalf("expected 1 playlist run, got %d", len(driver.playlistCalls))
	}
	if !strings.Contains(out, "3 pairs processed") {
		t.Errorf("expected run summary, got: %s", out)
	}
}

func TestMenu_PlaylistErrorReturnsToMenu(t *testing.T) {
	driver := &scriptedDriver{playlistErr: errors.New("invalid playlist URL format")}
	out := runMenu(t, "2\nnot-a-playlist\nalso-not\n3\n", driver)

	if !strings.Contains(out, "Run failed") {
		t.Errorf("expected failure report, got: %s", out)
	}
	if !strings.Contains(out, "Exiting.") {
		t.Errorf("expected to return to menu and exit, got: %s", out)
	}
}

func TestMenu_EOFExitsCleanly(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"EOF at menu", ""},
		{"EOF mid-prompt", "1\ntop-url\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must terminate without error even when input ends early.
			runMenu(t, tt.input, &scriptedDriver{})
		})
	}
}
