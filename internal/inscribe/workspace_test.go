package inscribe

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/schedule"
)

func newTestWorkspace(t *testing.T) (*Workspace, *clockwork.FakeClock, events.Chan) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	ch := make(events.Chan, 1024)
	w := New("0xabc", schedule.New(clock), rand.New(rand.NewPCG(5, 6)), ch)
	t.Cleanup(w.Close)
	return w, clock, ch
}

func waitKind(t *testing.T, ch events.Chan, kind events.Kind) events.Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case e := <-ch:
			if e.Kind == kind {
				return e
			}
		case <-deadline:
			t.Fatalf("no %s event", kind)
		}
	}
}

func TestFileTypeAndSize(t *testing.T) {
	assert.Equal(t, "PDF", FileType("paper.PDF"))
	assert.Equal(t, "AAC", FileType("song.mp3"))
	assert.Equal(t, "IMG", FileType("cat.jpeg"))
	assert.Equal(t, "VID", FileType("clip.mov"))
	assert.Equal(t, "TXT", FileType("notes.docx"))
	assert.Equal(t, "FILE", FileType("archive"))

	assert.Equal(t, "0 Bytes", FormatSize(0))
	assert.Equal(t, "512 Bytes", FormatSize(512))
	assert.Equal(t, "1.5 KB", FormatSize(1536))
	assert.Equal(t, "2 MB", FormatSize(2*1024*1024))
}

func TestUploadReachesCompletion(t *testing.T) {
	w, clock, ch := newTestWorkspace(t)
	f := w.AddFile("cat.png", 2048)
	assert.Equal(t, Uploading, f.Status)
	assert.Equal(t, "IMG", f.Type)
	assert.Equal(t, "2 KB", f.Size)

	last := 0.0
	for i := 0; i < 500 && last < 100; i++ {
		clock.Advance(uploadTick)
		p := waitKind(t, ch, events.UploadProgress).Payload.(Progress)
		assert.GreaterOrEqual(t, p.Progress, last)
		last = p.Progress
	}
	require.Equal(t, 100.0, last)
	files := w.Files()
	require.Len(t, files, 1)
	assert.Equal(t, Uploaded, files[0].Status)
}

func TestInscribeRunsStepsAndRecordsResult(t *testing.T) {
	w, clock, ch := newTestWorkspace(t)
	assert.ErrorIs(t, w.Inscribe("x"), ErrNoFiles)

	w.AddFile("notes.txt", 460)
	require.NoError(t, w.Inscribe("my note"))
	assert.ErrorIs(t, w.Inscribe("again"), ErrBusy)

	for i := range Steps {
		clock.Advance(stepDelay)
		p := waitKind(t, ch, events.InscribeProgress).Payload.(Progress)
		assert.Equal(t, Steps[i], p.Step)
		assert.Equal(t, float64(i+1)*25, p.Progress)
	}
	ins := waitKind(t, ch, events.InscribeDone).Payload.(Inscription)
	assert.Equal(t, "my note", ins.Name)
	assert.Equal(t, "txt", ins.Type)
	assert.Equal(t, "460 Bytes", ins.Size)
	assert.Regexp(t, `^i[0-9a-z]{13}$`, ins.InscriptionID)
	assert.Regexp(t, `^0x[0-9a-f]{64}$`, ins.TxHash)

	recent := w.Recent()
	require.Len(t, recent, 6)
	assert.Equal(t, ins.InscriptionID, recent[0].InscriptionID)
	busy, _ := w.Status()
	assert.False(t, busy)

	assert.Eventually(t, func() bool {
		clock.Advance(resetDelay)
		return len(w.Files()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRemoveFileStopsUpload(t *testing.T) {
	w, clock, ch := newTestWorkspace(t)
	f := w.AddFile("a.pdf", 10)
	assert.True(t, w.RemoveFile(f.ID))
	assert.False(t, w.RemoveFile(f.ID))

	clock.Advance(time.Second)
	select {
	case e := <-ch:
		t.Fatalf("unexpected %s", e.Kind)
	case <-time.After(30 * time.Millisecond):
	}
	assert.Empty(t, w.Files())
}

func runInscription(t *testing.T, w *Workspace, clock *clockwork.FakeClock, ch events.Chan, name string) Inscription {
	t.Helper()
	require.NoError(t, w.Inscribe(name))
	for range Steps {
		clock.Advance(stepDelay)
		waitKind(t, ch, events.InscribeProgress)
	}
	return waitKind(t, ch, events.InscribeDone).Payload.(Inscription)
}

func TestResetKeepsFilesAddedAfterInscription(t *testing.T) {
	w, clock, ch := newTestWorkspace(t)
	w.AddFile("first.pdf", 100)
	runInscription(t, w, clock, ch, "")

	late := w.AddFile("late.mp4", 100)
	clock.Advance(resetDelay)
	assert.Eventually(t, func() bool {
		files := w.Files()
		return len(files) == 1 && files[0].ID == late.ID
	}, time.Second, 10*time.Millisecond)
}

func TestSecondInscriptionBeforeResetKeepsItsFiles(t *testing.T) {
	w, clock, ch := newTestWorkspace(t)
	w.AddFile("first.pdf", 100)
	runInscription(t, w, clock, ch, "")

	w.AddFile("second.txt", 100)
	clock.Advance(resetDelay / 2)
	ins := runInscription(t, w, clock, ch, "")
	assert.Equal(t, "first.pdf", ins.Name)
	assert.Equal(t, "pdf", ins.Type)

	assert.Eventually(t, func() bool {
		clock.Advance(resetDelay)
		return len(w.Files()) == 0
	}, time.Second, 10*time.Millisecond)
}
