// Package todo owns the ordered item list. Every mutation is followed, in
// the same call, by a best-effort write of the full list to storage and a
// notification to subscribers.
//
// A Store is used from a single goroutine (the UI event loop or a CLI
// command); it has no locks.
package todo

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/model"
)

// KV is the storage port the Store reads and writes through.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Options tune a Store. Zero values pick the defaults.
type Options struct {
	Key    string           // storage key, default "todos"
	Logger *log.Logger      // diagnostic sink, default discards
	Now    func() time.Time // clock used for ids, default time.Now
}

// Store is the in-memory owner of the item list plus its persistence.
type Store struct {
	kv     KV
	key    string
	logger *log.Logger
	now    func() time.Time

	items  []model.Item
	lastID int64

	subs    map[int]func([]model.Item)
	nextSub int
}

// New hydrates a Store from kv. A missing key yields an empty list; an
// unreadable or malformed value yields an empty list and a diagnostic.
func New(kv KV, opt Options) *Store {
	s := &Store{
		kv:     kv,
		key:    opt.Key,
		logger: opt.Logger,
		now:    opt.Now,
		subs:   map[int]func([]model.Item){},
	}
	if s.key == "" {
		s.key = "todos"
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.items = s.load()
	for _, it := range s.items {
		if it.ID > s.lastID {
			s.lastID = it.ID
		}
	}
	return s
}

func (s *Store) load() []model.Item {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.logger.Error("error loading state", "key", s.key, "err", err)
		return []model.Item{}
	}
	if !ok {
		return []model.Item{}
	}
	items, err := Decode(raw)
	if err != nil {
		s.logger.Error("error loading state", "key", s.key, "err", err)
		return []model.Item{}
	}
	return items
}

// save writes the full list. Failures are reported and otherwise ignored:
// the in-memory list stays authoritative for the rest of the session.
func (s *Store) save() {
	raw, err := Encode(s.items)
	if err != nil {
		s.logger.Error("error saving state", "key", s.key, "err", err)
		return
	}
	if err := s.kv.Set(s.key, raw); err != nil {
		s.logger.Error("error saving state", "key", s.key, "err", err)
	}
}

// commit persists then notifies; every operation ends here, no-ops included.
func (s *Store) commit() {
	s.save()
	s.notify()
}

// nextID returns the current Unix millisecond time, bumped past the last
// issued id when the clock has not advanced (or went backwards). Ids are
// therefore strictly increasing for the life of the Store.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Add appends a new, not completed item and returns its id. The text is
// stored as given; callers trim and reject empty input.
func (s *Store) Add(text string) int64 {
	it := model.Item{ID: s.nextID(), Text: text}
	s.items = append(s.items, it)
	s.commit()
	return it.ID
}

// Toggle flips the completed flag of the item with id. It reports whether
// the item existed.
func (s *Store) Toggle(id int64) bool {
	i := s.indexOf(id)
	if i >= 0 {
		s.items[i].Completed = !s.items[i].Completed
	}
	s.commit()
	return i >= 0
}

// Delete removes the item with id, keeping the order of the rest.
func (s *Store) Delete(id int64) bool {
	i := s.indexOf(id)
	if i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	s.commit()
	return i >= 0
}

// Edit replaces the text of the item with id.
func (s *Store) Edit(id int64, text string) bool {
	i := s.indexOf(id)
	if i >= 0 {
		s.items[i].Text = text
	}
	s.commit()
	return i >= 0
}

// Items returns a copy of the current list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Find looks up an item by id.
func (s *Store) Find(id int64) (model.Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return model.Item{}, false
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.items) }

// Subscribe registers fn to receive a copy of the list after every
// operation. The returned func removes the subscription.
func (s *Store) Subscribe(fn func([]model.Item)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn(s.Items())
	}
}
