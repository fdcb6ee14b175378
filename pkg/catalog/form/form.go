// Package form holds the add-comic form state: three text fields and a
// pending cover image slot, gated submission, and clearing on success.
package form

import (
	"sync"

	"github.com/google/uuid"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
)

// Adder receives a newly built record. store.CatalogStore satisfies it.
type Adder interface {
	Add(record comic.Record) error
}

// Fields is a point-in-time copy of the form inputs.
type Fields struct {
	Title     string
	Issue     string
	Publisher string
	ImageURL  string
}

// Complete reports whether every input, the image included, is present.
func (f Fields) Complete() bool {
	return f.Title != "" && f.Issue != "" && f.Publisher != "" && f.ImageURL != ""
}

// Form is safe for concurrent use. Image conversions write into a single
// pending slot; overlapping conversions are not ordered and the last one to
// finish wins.
type Form struct {
	mu     sync.Mutex
	fields Fields
	newID  func() string
}

type Option func(*Form)

// WithIDGenerator replaces the UUID v4 generator.
func WithIDGenerator(gen func() string) Option {
	return func(f *Form) {
		f.newID = gen
	}
}

func New(opts ...Option) *Form {
	f := &Form{
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) SetTitle(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Title = v
}

func (f *Form) SetIssue(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Issue = v
}

func (f *Form) SetPublisher(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.Publisher = v
}

func (f *Form) setImage(dataURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.ImageURL = dataURL
}

func (f *Form) Snapshot() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Complete() bool {
	return f.Snapshot().Complete()
}

// Clear resets all four inputs, the pending image included.
func (f *Form) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = Fields{}
}

// Submit appends a new record through adder when the form is complete.
// An incomplete form is a no-op: it returns ok=false and a nil error.
// On success the inputs are cleared; on adder failure they are kept.
func (f *Form) Submit(adder Adder) (comic.Record, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.fields.Complete() {
		return comic.Record{}, false, nil
	}

	record := comic.Record{
		ID:        f.newID(),
		Title:     f.fields.Title,
		Issue:     f.fields.Issue,
		Publisher: f.fields.Publisher,
		ImageURL:  f.fields.ImageURL,
	}
	if err := adder.Add(record); err != nil {
		return comic.Record{}, false, err
	}

	f.fields = Fields{}
	return record, true, nil
}
