// Package memory holds the API's volatile session state: the current entry
// list and the configuration structs the calculation endpoints read. There
// is deliberately no database behind it; the engines are pure functions and
// the session is rebuilt by the caller.
package memory

import (
	"sync"

	"github.com/warp/payroll-engine/payroll"
)

// Session is a mutex-guarded holder of entries and configs. All getters
// return copies; nothing hands out shared mutable state.
type Session struct {
	mu       sync.RWMutex
	entries  []payroll.WorkEntry
	internal payroll.InternalConfig
	legal    payroll.LegalConfig
	payment  payroll.PaymentConfig
	payroll  payroll.PayrollConfig
}

// NewSession starts with the shipped defaults and a small demo entry set:
// two day shifts and one night shift crossing midnight.
func NewSession() *Session {
	return &Session{
		entries: []payroll.WorkEntry{
			payroll.NewWorkEntry("2025-01-20", "08:00", "17:00", 60),
			payroll.NewWorkEntry("2025-01-21", "08:00", "18:30", 60),
			nightDemo(),
		},
		internal: payroll.DefaultInternalConfig(),
		legal:    payroll.DefaultLegalConfig(),
		payment:  payroll.DefaultPaymentConfig(),
		payroll:  payroll.DefaultPayrollConfig(),
	}
}

func nightDemo() payroll.WorkEntry {
	e := payroll.NewWorkEntry("2025-01-22", "22:00", "06:00", 30)
	e.Notes = "Turno nocturno"
	return e
}

// =============================================================================
// ENTRIES
// =============================================================================

func (s *Session) ListEntries() []payroll.WorkEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]payroll.WorkEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Session) GetEntry(id string) (payroll.WorkEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return payroll.WorkEntry{}, false
}

func (s *Session) AddEntry(e payroll.WorkEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

// UpdateEntry replaces the entry with the same ID; it reports whether the
// ID existed.
func (s *Session) UpdateEntry(id string, e payroll.WorkEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			e.ID = id
			s.entries[i] = e
			return true
		}
	}
	return false
}

func (s *Session) DeleteEntry(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceEntries swaps the whole entry list, e.g. when loading a scenario.
func (s *Session) ReplaceEntries(entries []payroll.WorkEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make([]payroll.WorkEntry, len(entries))
	copy(s.entries, entries)
}

func (s *Session) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// =============================================================================
// CONFIGS
// =============================================================================

func (s *Session) InternalConfig() payroll.InternalConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.internal
}

func (s *Session) SetInternalConfig(c payroll.InternalConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.internal = c
}

func (s *Session) LegalConfig() payroll.LegalConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.legal
}

func (s *Session) SetLegalConfig(c payroll.LegalConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.legal = c
}

func (s *Session) PaymentConfig() payroll.PaymentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payment
}

func (s *Session) SetPaymentConfig(c payroll.PaymentConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payment = c
}

func (s *Session) PayrollConfig() payroll.PayrollConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payroll
}

func (s *Session) SetPayrollConfig(c payroll.PayrollConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payroll = c
}
