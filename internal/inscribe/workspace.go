// Package inscribe simulates uploading files and inscribing them on chain.
package inscribe

import (
	"encoding/hex"
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/schedule"
)

const (
	uploadTick   = 200 * time.Millisecond
	uploadStep   = 20.0 // max progress per tick, percent
	stepDelay    = 750 * time.Millisecond
	resetDelay   = 2 * time.Second
	inscribeTask = "inscribe"
	resetTask    = "inscribe/reset"
)

// Steps are the phases an inscription goes through, one stepDelay each.
var Steps = []string{
	"Preparing files...",
	"Creating transaction...",
	"Writing to blockchain...",
	"Finalizing...",
}

var (
	ErrNoFiles = errors.New("no files to inscribe")
	ErrBusy    = errors.New("an inscription is already in progress")
)

// Progress is the payload of upload.progress and inscribe.progress events.
type Progress struct {
	ID       string  `json:"id,omitempty"`
	Step     string  `json:"step,omitempty"`
	Progress float64 `json:"progress"`
}

type Workspace struct {
	mu sync.Mutex

	files      []*File
	recent     []Inscription // newest first
	inscribing bool
	progress   float64

	viewer string
	sched  *schedule.Scheduler
	rng    *rand.Rand
	pub    events.Publisher
}

func New(viewer string, sched *schedule.Scheduler, rng *rand.Rand, pub events.Publisher) *Workspace {
	if sched == nil {
		sched = schedule.New(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if pub == nil {
		pub = events.Discard
	}
	return &Workspace{
		recent: SeedRecent(sched.Now()),
		viewer: viewer,
		sched:  sched,
		rng:    rng,
		pub:    pub,
	}
}

func uploadOwner(id string) string { return "upload/" + id }

// AddFile registers a file and starts its simulated upload.
func (w *Workspace) AddFile(name string, size int64) File {
	f := &File{
		ID:     uuid.NewString(),
		Name:   name,
		Size:   FormatSize(size),
		Type:   FileType(name),
		Status: Uploading,
	}
	w.mu.Lock()
	w.files = append(w.files, f)
	cp := *f
	w.mu.Unlock()

	w.sched.After(uploadOwner(f.ID), uploadTick, func() { w.tick(f.ID) })
	return cp
}

func (w *Workspace) tick(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f := w.find(id)
	if f == nil {
		return
	}
	f.Progress += w.rng.Float64() * uploadStep
	if f.Progress >= 100 {
		f.Progress = 100
		f.Status = Uploaded
	} else {
		w.sched.After(uploadOwner(id), uploadTick, func() { w.tick(id) })
	}
	w.publish(events.UploadProgress, Progress{ID: id, Progress: f.Progress})
}

// find must be called with w.mu held.
func (w *Workspace) find(id string) *File {
	for _, f := range w.files {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (w *Workspace) RemoveFile(id string) bool {
	w.sched.Cancel(uploadOwner(id))
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, f := range w.files {
		if f.ID == id {
			w.files = append(w.files[:i], w.files[i+1:]...)
			return true
		}
	}
	return false
}

func (w *Workspace) Files() []File {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]File, 0, len(w.files))
	for _, f := range w.files {
		out = append(out, *f)
	}
	return out
}

func (w *Workspace) Recent() []Inscription {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Inscription(nil), w.recent...)
}

// Status reports whether an inscription is running and how far along it is.
func (w *Workspace) Status() (bool, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inscribing, w.progress
}

// Inscribe starts inscribing the current files under name. It returns at once;
// progress and the result arrive as events.
func (w *Workspace) Inscribe(name string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.files) == 0 {
		return ErrNoFiles
	}
	if w.inscribing {
		return ErrBusy
	}
	// a pending reset would pull these files out from under the new run
	w.sched.Cancel(resetTask)
	w.inscribing = true
	w.progress = 0
	w.sched.After(inscribeTask, stepDelay, func() { w.step(0, strings.TrimSpace(name)) })
	return nil
}

func (w *Workspace) step(i int, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.inscribing {
		return
	}
	w.progress = float64(i+1) / float64(len(Steps)) * 100
	if i+1 < len(Steps) {
		w.sched.After(inscribeTask, stepDelay, func() { w.step(i+1, name) })
		w.publish(events.InscribeProgress, Progress{Step: Steps[i], Progress: w.progress})
		return
	}
	w.publish(events.InscribeProgress, Progress{Step: Steps[i], Progress: w.progress})
	w.finish(name)
}

// finish must be called with w.mu held.
func (w *Workspace) finish(name string) {
	first := File{Name: "Unknown", Type: "file", Size: "0 Bytes"}
	if len(w.files) > 0 {
		first = *w.files[0]
	}
	if name == "" {
		name = first.Name
	}
	ins := Inscription{
		ID:            strconv.FormatInt(w.sched.Now().UnixMilli(), 10),
		Name:          name,
		Type:          strings.ToLower(first.Type),
		Size:          first.Size,
		InscriptionID: "i" + w.randomBase36(13),
		TxHash:        "0x" + w.randomHex(32),
		CreatedAt:     w.sched.Now(),
	}
	w.recent = append([]Inscription{ins}, w.recent...)
	w.inscribing = false

	done := make(map[string]bool, len(w.files))
	for _, f := range w.files {
		done[f.ID] = true
	}
	w.sched.After(resetTask, resetDelay, func() { w.reset(done) })
	w.publish(events.InscribeDone, ins)
}

// reset drops the files of a finished inscription. Files added since stay.
func (w *Workspace) reset(done map[string]bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.files[:0]
	for _, f := range w.files {
		if done[f.ID] {
			w.sched.Cancel(uploadOwner(f.ID))
			continue
		}
		kept = append(kept, f)
	}
	w.files = kept
	if !w.inscribing {
		w.progress = 0
	}
}

func (w *Workspace) randomHex(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(w.rng.UintN(256))
	}
	return hex.EncodeToString(b)
}

func (w *Workspace) randomBase36(n int) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[w.rng.IntN(len(alphabet))]
	}
	return string(b)
}

func (w *Workspace) publish(kind events.Kind, payload interface{}) {
	w.pub.Publish(events.Event{Kind: kind, Viewer: w.viewer, At: w.sched.Now(), Payload: payload})
}

// Close stops uploads and any running inscription.
func (w *Workspace) Close() {
	w.mu.Lock()
	ids := make([]string, 0, len(w.files))
	for _, f := range w.files {
		ids = append(ids, f.ID)
	}
	w.inscribing = false
	w.mu.Unlock()

	for _, id := range ids {
		w.sched.Cancel(uploadOwner(id))
	}
	w.sched.Cancel(inscribeTask)
	w.sched.Cancel(resetTask)
}
