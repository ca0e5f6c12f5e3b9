package tradecal

import (
	"github.com/etnz/tradecal/date"
	"github.com/rs/zerolog"
)

// Notifier is told about the new state after every change, so that views can be redrawn.
type Notifier interface {
	Notify(stats []MonthlyStats, s *Store)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(stats []MonthlyStats, s *Store)

// Notify calls f(stats, s).
func (f NotifierFunc) Notify(stats []MonthlyStats, s *Store) { f(stats, s) }

// Tracker owns the records of a trading calendar and applies the commands that change them.
//
// Each command is applied completely, then the statistics are recomputed and the
// notifier is called.
type Tracker struct {
	cal      *Calendar
	store    *Store
	notifier Notifier
	log      zerolog.Logger
	today    func() date.Date
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithNotifier sets the notifier called after each change.
func WithNotifier(n Notifier) Option { return func(t *Tracker) { t.notifier = n } }

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option { return func(t *Tracker) { t.log = l } }

// WithClock sets the function returning today's date, date.Today by default.
func WithClock(today func() date.Date) Option { return func(t *Tracker) { t.today = today } }

// NewTracker returns a Tracker with an empty store.
func NewTracker(cal *Calendar, opts ...Option) *Tracker {
	t := &Tracker{
		cal:   cal,
		store: NewStore(),
		log:   zerolog.Nop(),
		today: date.Today,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.With().Str("component", "tracker").Logger()
	return t
}

// Calendar returns the tracker's calendar.
func (t *Tracker) Calendar() *Calendar { return t.cal }

// Store returns the records. Callers must not modify it directly.
func (t *Tracker) Store() *Store { return t.store }

// Today returns the date the statistics are computed on.
func (t *Tracker) Today() date.Date { return t.today() }

// Stats returns the statistics of every month of the year.
func (t *Tracker) Stats() []MonthlyStats { return t.cal.AggregateYear(t.store, t.today()) }

// CommitField sets a single field of the record at 'day'.
func (t *Tracker) CommitField(day date.Date, f Field, value string) {
	t.store.Set(day, f, value)
	t.log.Debug().Stringer("date", day).Stringer("field", f).Str("value", value).Msg("field committed")
	t.notify()
}

// LoadCSV replaces all the records with the content of the CSV text.
func (t *Tracker) LoadCSV(text string) {
	s, rejected := ParseCSV(text)
	for _, line := range rejected {
		t.log.Warn().Str("line", line).Msg("skipping row with an invalid date")
	}
	t.store.ReplaceAll(s)
	t.log.Debug().Int("entries", t.store.Len()).Int("rejected", len(rejected)).Msg("csv loaded")
	t.notify()
}

// CSV returns the records encoded as CSV text.
func (t *Tracker) CSV() string { return FormatCSV(t.store) }

func (t *Tracker) notify() {
	if t.notifier == nil {
		return
	}
	t.notifier.Notify(t.Stats(), t.store)
}
