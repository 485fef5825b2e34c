// Package catalog holds the question records and the engine that keeps a
// filtered, paginated view over them consistent with the user's choices.
package catalog

import (
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/gravitrone/qbank/internal/prefs"
)

// Persister saves and restores the persisted subset of engine state.
type Persister interface {
	Load() prefs.Snapshot
	Save(prefs.Snapshot) error
}

// --- Events ---

// ResultsEvent carries the current page slice to the view.
type ResultsEvent struct {
	Visible []Record
	HasMore bool
	Total   int
	Page    int
}

// FavoriteEvent reports a favorite toggle.
type FavoriteEvent struct {
	ID string
	On bool
}

// Listener receives engine events.
type Listener interface {
	ResultsChanged(ResultsEvent)
	FavoriteChanged(FavoriteEvent)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnResults  func(ResultsEvent)
	OnFavorite func(FavoriteEvent)
}

func (f ListenerFuncs) ResultsChanged(ev ResultsEvent) {
	if f.OnResults != nil {
		f.OnResults(ev)
	}
}

func (f ListenerFuncs) FavoriteChanged(ev FavoriteEvent) {
	if f.OnFavorite != nil {
		f.OnFavorite(ev)
	}
}

// --- Options ---

// Option configures an Engine.
type Option func(*Engine)

// WithPageSize sets the pagination page size.
func WithPageSize(n int) Option {
	return func(e *Engine) { e.pager = NewPaginator(n) }
}

// WithLogger sets the logger used for persistence failures and coercions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand sets the random source used by PickRandom.
func WithRand(r Intn) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithListener subscribes l before the initial filter runs.
func WithListener(l Listener) Option {
	return func(e *Engine) {
		if l != nil {
			e.listeners = append(e.listeners, l)
		}
	}
}

// --- Engine ---

// Engine owns the filter state, favorites, pagination and the derived
// result set. Every mutation goes through a named command that rebuilds
// the result set from scratch when it affects filtering.
//
// Engine is not safe for concurrent use; commands are expected to run one
// at a time from a single event loop.
type Engine struct {
	store     *Store
	prefs     Persister
	logger    *slog.Logger
	rng       Intn
	listeners []Listener

	state     FilterState
	favorites *Favorites
	darkMode  bool
	pager     *Paginator
	results   []Record
}

// NewEngine restores persisted preferences, repairs selections that are not
// legal for store, and computes the initial result set.
func NewEngine(store *Store, persister Persister, opts ...Option) *Engine {
	if store == nil {
		store = NewStore(nil)
	}
	e := &Engine{
		store:  store,
		prefs:  persister,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		pager:  NewPaginator(DefaultPageSize),
	}
	for _, opt := range opts {
		opt(e)
	}

	snap := prefs.Defaults()
	if persister != nil {
		snap = persister.Load()
	}
	e.restore(snap)
	e.refilter()
	return e
}

func (e *Engine) restore(snap prefs.Snapshot) {
	records := e.store.Records()
	state := DefaultFilterState()
	state.Topic = SelectorOrAll(snap.Topic)
	state.Subtopic = SelectorOrAll(snap.Subtopic)
	state.Difficulty = SelectorOrAll(snap.Difficulty)
	state.Tags = NewTagSet(snap.Tags...)
	state.FavoritesOnly = snap.FavoritesOnly

	if !ValidTopic(records, state.Topic) {
		e.logger.Debug("restored topic not in catalog, using all", slog.String("topic", state.Topic))
		state.Topic = All
	}
	if !ValidSubtopic(records, state.Topic, state.Subtopic) {
		e.logger.Debug("restored subtopic not under topic, using all",
			slog.String("topic", state.Topic), slog.String("subtopic", state.Subtopic))
		state.Subtopic = All
	}

	e.state = state
	e.favorites = NewFavorites(snap.Favorites...)
	e.darkMode = snap.DarkMode
}

// Subscribe adds a listener for subsequent events.
func (e *Engine) Subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

// --- Commands ---

// ApplySearch sets the search term and re-filters.
func (e *Engine) ApplySearch(term string) {
	e.state.Search = term
	e.refilter()
}

// ApplyTopic selects a topic. The subtopic always resets to "all";
// unknown topics are coerced to "all".
func (e *Engine) ApplyTopic(topic string) {
	topic = SelectorOrAll(topic)
	if !ValidTopic(e.store.Records(), topic) {
		topic = All
	}
	e.state.Topic = topic
	e.state.Subtopic = All
	e.refilter()
}

// ApplySubtopic selects a subtopic of the current topic. Subtopics that do
// not belong to the current topic are coerced to "all".
func (e *Engine) ApplySubtopic(subtopic string) {
	subtopic = SelectorOrAll(subtopic)
	if !ValidSubtopic(e.store.Records(), e.state.Topic, subtopic) {
		subtopic = All
	}
	e.state.Subtopic = subtopic
	e.refilter()
}

// ApplyDifficulty selects a difficulty.
func (e *Engine) ApplyDifficulty(difficulty string) {
	e.state.Difficulty = SelectorOrAll(difficulty)
	e.refilter()
}

// ToggleTag adds or removes tag from the tag filter.
func (e *Engine) ToggleTag(tag string) {
	if tag == "" {
		return
	}
	e.state.Tags.Toggle(tag)
	e.refilter()
}

// SetTags replaces the tag filter.
func (e *Engine) SetTags(tags []string) {
	e.state.Tags = NewTagSet(tags...)
	e.refilter()
}

// ToggleFavoritesOnly flips the favorites-only view.
func (e *Engine) ToggleFavoritesOnly() {
	e.state.FavoritesOnly = !e.state.FavoritesOnly
	e.refilter()
}

// SetFavoritesOnly sets the favorites-only view.
func (e *Engine) SetFavoritesOnly(on bool) {
	e.state.FavoritesOnly = on
	e.refilter()
}

// ClearFilters resets every criterion, the search term included.
func (e *Engine) ClearFilters() {
	e.state = DefaultFilterState()
	e.refilter()
}

// ToggleFavorite stars or unstars id and returns the new state. While the
// favorites-only view is active the result set is rebuilt on both paths.
func (e *Engine) ToggleFavorite(id string) bool {
	on := e.favorites.Toggle(id)
	for _, l := range e.listeners {
		l.FavoriteChanged(FavoriteEvent{ID: id, On: on})
	}
	if e.state.FavoritesOnly {
		e.refilter()
	} else {
		e.persist()
	}
	return on
}

// AdvancePage reveals the next page. It is a no-op returning false when the
// whole result set is already visible.
func (e *Engine) AdvancePage() bool {
	if !e.pager.HasMore(len(e.results)) {
		return false
	}
	e.pager.Advance()
	e.emitResults()
	return true
}

// ToggleDarkMode flips the theme flag and persists it.
func (e *Engine) ToggleDarkMode() bool {
	e.darkMode = !e.darkMode
	e.persist()
	return e.darkMode
}

// PickRandom chooses a random record from the result set and advances the
// pagination until it is visible. ok is false on an empty result set.
func (e *Engine) PickRandom() (rec Record, index int, ok bool) {
	rec, index, ok = PickRandom(e.results, e.rng)
	if !ok {
		return Record{}, -1, false
	}
	if e.pager.RevealIndex(index, len(e.results)) {
		e.emitResults()
	}
	return rec, index, true
}

// --- Queries ---

// State returns a copy of the filter state.
func (e *Engine) State() FilterState {
	return e.state.Clone()
}

// Results returns the full result set. Callers must not mutate it.
func (e *Engine) Results() []Record {
	return e.results
}

// Visible returns the revealed prefix of the result set.
func (e *Engine) Visible() []Record {
	return e.pager.VisibleSlice(e.results)
}

// HasMore reports whether part of the result set is still hidden.
func (e *Engine) HasMore() bool {
	return e.pager.HasMore(len(e.results))
}

// Page returns the current page.
func (e *Engine) Page() int {
	return e.pager.Page()
}

// PageSize returns the configured page size.
func (e *Engine) PageSize() int {
	return e.pager.Size()
}

// IsFavorite reports whether id is starred.
func (e *Engine) IsFavorite(id string) bool {
	return e.favorites.Has(id)
}

// Favorites returns the starred ids, sorted.
func (e *Engine) Favorites() []string {
	return e.favorites.IDs()
}

// DarkMode returns the theme flag.
func (e *Engine) DarkMode() bool {
	return e.darkMode
}

// Store returns the record store.
func (e *Engine) Store() *Store {
	return e.store
}

// Subtopics returns the subtopic domain of the current topic.
func (e *Engine) Subtopics() []string {
	return e.store.Subtopics(e.state.Topic)
}

// Snapshot returns the persisted subset of engine state.
func (e *Engine) Snapshot() prefs.Snapshot {
	return prefs.Snapshot{
		Topic:         e.state.Topic,
		Subtopic:      e.state.Subtopic,
		Difficulty:    e.state.Difficulty,
		Tags:          e.state.Tags.Sorted(),
		FavoritesOnly: e.state.FavoritesOnly,
		Favorites:     e.favorites.IDs(),
		DarkMode:      e.darkMode,
	}
}

// --- internals ---

// refilter rebuilds the result set, resets pagination, persists and emits.
func (e *Engine) refilter() {
	e.pager.Reset()
	e.results = Filter(e.store.Records(), e.state, e.favorites)
	e.persist()
	e.emitResults()
}

func (e *Engine) persist() {
	if e.prefs == nil {
		return
	}
	if err := e.prefs.Save(e.Snapshot()); err != nil {
		e.logger.Warn("save preferences failed", slog.String("error", err.Error()))
	}
}

func (e *Engine) emitResults() {
	if len(e.listeners) == 0 {
		return
	}
	ev := ResultsEvent{
		Visible: e.Visible(),
		HasMore: e.HasMore(),
		Total:   len(e.results),
		Page:    e.pager.Page(),
	}
	for _, l := range e.listeners {
		l.ResultsChanged(ev)
	}
}

// SelectorOrAll maps a blank selector to All.
func SelectorOrAll(v string) string {
	if strings.TrimSpace(v) == "" {
		return All
	}
	return v
}
