/*
store.go - Persistence interface

PURPOSE:
  Defines what the engine needs from storage without depending on any
  database. Implementations live under store/ (SQLite for the server,
  memory for tests). The engine itself never persists anything: the
  weekly tracker is batch-local and the holiday cache is in-process.

SEE ALSO:
  - store/sqlite: Production implementation
  - store/memory: Test implementation
*/
package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one persisted shift calculation.
type Entry struct {
	ID        string      `json:"id"`
	Date      time.Time   `json:"-"`
	Shift     ShiftType   `json:"shift"`
	Novelty   NoveltyType `json:"novelty"`
	Breakdown Breakdown   `json:"breakdown"`
	CreatedAt time.Time   `json:"-"`
}

// Settings is the persisted payroll configuration: the salary and
// contribution parameters collaborators edit and the month summarizer
// consumes.
type Settings struct {
	BaseSalary              int64           `json:"baseSalaryCop"`
	MinimumWage             int64           `json:"smmlvCop"`
	TransportAllowance      int64           `json:"transportAllowanceCop"`
	TransportSalaryCapSMMLV decimal.Decimal `json:"transportSalaryCapSmmlv"`
	ApplyStandardDeductions bool            `json:"applyStandardDeductions"`
	HealthPct               decimal.Decimal `json:"healthPct"`
	PensionPct              decimal.Decimal `json:"pensionPct"`
	ApplySolidarityFund     bool            `json:"applySolidarityFund"`
	IBCMinSMMLV             decimal.Decimal `json:"ibcMinSmmlv"`
	IBCMaxSMMLV             decimal.Decimal `json:"ibcMaxSmmlv"`
	WeeklyOrdinaryLimit     int             `json:"weeklyOrdinaryLimit"`
}

// DefaultSettings returns the statutory defaults: 4% health, 4% pension,
// IBC bounds of 1 and 25 minimum wages, transport allowance capped at
// salaries up to 2 minimum wages, 44-hour ordinary week.
func DefaultSettings() Settings {
	return Settings{
		TransportSalaryCapSMMLV: decimal.NewFromInt(2),
		ApplyStandardDeductions: true,
		HealthPct:               decimal.NewFromFloat(0.04),
		PensionPct:              decimal.NewFromFloat(0.04),
		IBCMinSMMLV:             decimal.NewFromInt(1),
		IBCMaxSMMLV:             decimal.NewFromInt(25),
		WeeklyOrdinaryLimit:     DefaultWeeklyOrdinaryLimit,
	}
}

// MonthConfig assembles a summarizer configuration from the persisted
// settings plus the per-call month and line items.
func (s Settings) MonthConfig(month string, earnings []EarningItem, deductions []DeductionItem) MonthConfig {
	return MonthConfig{
		Month:                   month,
		BaseSalary:              s.BaseSalary,
		MinimumWage:             s.MinimumWage,
		TransportAllowance:      s.TransportAllowance,
		TransportSalaryCapSMMLV: s.TransportSalaryCapSMMLV,
		Earnings:                earnings,
		Deductions:              deductions,
		ApplyStandardDeductions: s.ApplyStandardDeductions,
		HealthPct:               s.HealthPct,
		PensionPct:              s.PensionPct,
		ApplySolidarityFund:     s.ApplySolidarityFund,
		IBCMinSMMLV:             s.IBCMinSMMLV,
		IBCMaxSMMLV:             s.IBCMaxSMMLV,
	}
}

// Store persists shift entries and payroll settings.
type Store interface {
	// SaveEntries inserts entries; entries without an ID are assigned one.
	SaveEntries(ctx context.Context, entries []Entry) ([]Entry, error)

	// ListEntries returns entries with from <= date <= to, date ascending.
	ListEntries(ctx context.Context, from, to time.Time) ([]Entry, error)

	// DeleteEntry removes an entry by ID; deleting a missing ID is a no-op.
	DeleteEntry(ctx context.Context, id string) error

	// GetSettings returns the persisted settings, or DefaultSettings when
	// none have been stored yet.
	GetSettings(ctx context.Context) (Settings, error)

	// PutSettings replaces the persisted settings.
	PutSettings(ctx context.Context, s Settings) error

	Close() error
}
