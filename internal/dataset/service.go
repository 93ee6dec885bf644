package dataset

import (
	"log"
	"sync"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/calendar"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/classifier"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/target"
)

// SnapshotStore durable home of the three canonical blobs. The service treats
// it as load-at-startup, save-on-every-mutation; a failed save is logged and
// the in-memory state stands, so the user keeps their change for the session.
type SnapshotStore interface {
	LoadRecords() ([]model.Record, bool, error)
	SaveRecords([]model.Record) error
	LoadHolidays() (model.HolidaysMap, bool, error)
	SaveHolidays(model.HolidaysMap) error
	LoadLocks() (model.LocksMap, bool, error)
	SaveLocks(model.LocksMap) error
}

// Service owner of the in-memory canonical snapshot: records, holiday map,
// lock map and the admin-override session flag.
type Service struct {
	mu       sync.RWMutex
	records  []model.Record
	holidays model.HolidaysMap
	locks    model.LocksMap
	override bool

	store SnapshotStore // nil disables persistence (tests)
}

// SeedRecords the dataset shipped on first start, before any upload.
func SeedRecords() []model.Record {
	return []model.Record{
		{
			Department: "Production",
			Metric:     "Sample Tablet Compression",
			Plan:       5000000,
			Actual:     4200000,
			Variance:   -800000,
			Unit:       "Tabs",
			Status:     model.StatusCritical,
			Reasoning:  "Initial system load. Use Data Entry to upload Excel files.",
		},
	}
}

// NewService loads the snapshot from the store. Load failures fall back to
// the seed dataset; they never prevent startup.
func NewService(st SnapshotStore) *Service {
	s := &Service{
		records:  SeedRecords(),
		holidays: model.HolidaysMap{},
		locks:    model.LocksMap{},
		store:    st,
	}
	if st == nil {
		return s
	}

	if recs, ok, err := st.LoadRecords(); err != nil {
		log.Printf("snapshot load (records) failed, using seed data: %v", err)
	} else if ok {
		s.records = recs
	}
	if hols, ok, err := st.LoadHolidays(); err != nil {
		log.Printf("snapshot load (holidays) failed: %v", err)
	} else if ok {
		s.holidays = hols
	}
	if locks, ok, err := st.LoadLocks(); err != nil {
		log.Printf("snapshot load (locks) failed: %v", err)
	} else if ok {
		s.locks = locks
	}
	return s
}

// Records copy of the canonical record list.
func (s *Service) Records() []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Count total canonical records.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// SalesCount canonical records in the Sales department.
func (s *Service) SalesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.Department == model.DepartmentSales {
			n++
		}
	}
	return n
}

// ApplyUpload merges a classified upload into the canonical set and persists.
// Returns the number of entries applied.
func (s *Service) ApplyUpload(res *classifier.Result) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = Merge(s.records, res.Entries, res.Kind, res.ReportDate)
	s.persistRecords()
	return len(res.Entries)
}

// Reset clears the snapshot back to the seed dataset.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = SeedRecords()
	s.persistRecords()
}

// EffectiveHolidays configured holiday set or the Sunday default.
func (s *Service) EffectiveHolidays(year, month int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calendar.Effective(s.holidays, year, month)
}

// StoredHolidays explicitly configured set only (month-trend semantics).
func (s *Service) StoredHolidays(year, month int) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return calendar.Stored(s.holidays, year, month)
}

// ToggleHoliday flips a day's holiday membership. When the month is locked
// and override is off the call is a no-op and ok is false.
func (s *Service) ToggleHoliday(year, month, day int) (days []int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locks[calendar.MonthKey(year, month)] && !s.override {
		return calendar.Effective(s.holidays, year, month), false
	}

	days = calendar.Toggle(s.holidays, year, month, day)
	s.persistHolidays()
	return days, true
}

// Finalize locks the month's holiday configuration. Irreversible for
// ordinary users; override mode bypasses the lock without clearing it.
func (s *Service) Finalize(year, month int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.locks[calendar.MonthKey(year, month)] = true
	s.persistLocks()
}

// Locked lock state of the month.
func (s *Service) Locked(year, month int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locks[calendar.MonthKey(year, month)]
}

// SetOverride switches the global admin-override session flag. The flag is
// session state, never persisted.
func (s *Service) SetOverride(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = on
}

// Override current override flag.
func (s *Service) Override() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override
}

// WorkingDays working-day count of the month under its effective holidays.
func (s *Service) WorkingDays(year, month int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return target.WorkingDays(year, month, calendar.Effective(s.holidays, year, month))
}

// PersistAll writes every blob; used on shutdown.
func (s *Service) PersistAll() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.SaveRecords(s.records); err != nil {
		return err
	}
	if err := s.store.SaveHolidays(s.holidays); err != nil {
		return err
	}
	return s.store.SaveLocks(s.locks)
}

func (s *Service) persistRecords() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveRecords(s.records); err != nil {
		log.Printf("failed to persist records: %v", err)
	}
}

func (s *Service) persistHolidays() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveHolidays(s.holidays); err != nil {
		log.Printf("failed to persist holidays: %v", err)
	}
}

func (s *Service) persistLocks() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveLocks(s.locks); err != nil {
		log.Printf("failed to persist locks: %v", err)
	}
}
