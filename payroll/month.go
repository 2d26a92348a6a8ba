/*
month.go - Monthly payroll aggregation

PURPOSE:
  Folds a month's daily shift calculations plus the salary configuration
  into one summary: hour totals, gross pay, transport allowance,
  contribution base (IBC), statutory deductions and net pay.

RULES IMPLEMENTED:
  - Transport allowance: eligible while the salary does not exceed the
    configured multiple of the minimum wage; prorated over worked days
    capped at 30.
  - IBC: shift pay plus salaried earnings, clamped to floor/ceiling
    multiples of the minimum wage, both scaled by contribution-day
    proration. A zero minimum-wage reference leaves the ceiling open.
  - Solidarity fund: bracketed on IBC expressed in minimum wages.

  A day may carry several entries; per-day indicators take the
  highest-entitlement novelty seen that day.

ROUNDING:
  Entry pay totals arrive already rounded and are summed as-is, so the
  summary's shift pay equals the exact sum of its inputs. Every derived
  money field is rounded exactly once.
*/
package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// EarningItem is an extra earning line. Salaried items count toward the
// contribution base; non-salaried items only raise gross pay.
type EarningItem struct {
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amountCop"`
	IsSalary bool            `json:"isSalary"`
}

// DeductionItem is an extra deduction line.
type DeductionItem struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amountCop"`
}

// MonthConfig carries the salary configuration for one month's summary.
// SMMLV is the legal monthly minimum wage used as the reference unit for
// allowance eligibility and IBC bounds.
type MonthConfig struct {
	Month                   string          `json:"monthISO"`
	BaseSalary              int64           `json:"baseSalaryCop"`
	MinimumWage             int64           `json:"smmlvCop"`
	TransportAllowance      int64           `json:"transportAllowanceCop"`
	TransportSalaryCapSMMLV decimal.Decimal `json:"transportSalaryCapSmmlv"`
	Earnings                []EarningItem   `json:"earningsItems"`
	Deductions              []DeductionItem `json:"deductionItems"`
	ApplyStandardDeductions bool            `json:"applyStandardDeductions"`
	HealthPct               decimal.Decimal `json:"healthPct"`
	PensionPct              decimal.Decimal `json:"pensionPct"`
	ApplySolidarityFund     bool            `json:"applySolidarityFund"`
	IBCMinSMMLV             decimal.Decimal `json:"ibcMinSmmlv"`
	IBCMaxSMMLV             decimal.Decimal `json:"ibcMaxSmmlv"`
}

// MonthEntry is one daily result fed into the summary. Only the fields
// the aggregation reads are required.
type MonthEntry struct {
	Date      time.Time
	Novelty   NoveltyType
	TotalPay  int64
	Breakdown Breakdown
}

// MonthSummary is the aggregated month.
type MonthSummary struct {
	Month      string `json:"monthISO"`
	ShiftCount int    `json:"shiftsCount"`
	UniqueDays int    `json:"uniqueDays"`

	ShiftPay     int64 `json:"shiftPayCop"`
	BasePay      int64 `json:"basePayCop"`
	SurchargePay int64 `json:"surchargePayCop"`

	TransportEligible      bool  `json:"transportEligible"`
	TransportProrationDays int   `json:"transportProrationDays"`
	TransportAllowance     int64 `json:"transportAllowanceCop"`

	SalaryEarnings    int64 `json:"salaryEarningsCop"`
	NonSalaryEarnings int64 `json:"nonSalaryEarningsCop"`
	GrossPay          int64 `json:"grossPayCop"`

	IBC             int64 `json:"ibcCop"`
	Health          int64 `json:"healthCop"`
	Pension         int64 `json:"pensionCop"`
	SolidarityFund  int64 `json:"solidarityFundCop"`
	OtherDeductions int64 `json:"otherDeductionsCop"`
	TotalDeductions int64 `json:"totalDeductionsCop"`
	NetPay          int64 `json:"netPayCop"`

	HoursDay                     float64 `json:"hoursDay"`
	HoursNight                   float64 `json:"hoursNight"`
	HoursSundayOrHolidayDay      float64 `json:"hoursSundayOrHolidayDay"`
	HoursSundayOrHolidayNight    float64 `json:"hoursSundayOrHolidayNight"`
	OvertimeHoursTotal           float64 `json:"overtimeHoursTotal"`
	OvertimeDay                  float64 `json:"overtimeDay"`
	OvertimeNight                float64 `json:"overtimeNight"`
	OvertimeSundayOrHolidayDay   float64 `json:"overtimeSundayOrHolidayDay"`
	OvertimeSundayOrHolidayNight float64 `json:"overtimeSundayOrHolidayNight"`
}

// =============================================================================
// SUMMARIZATION
// =============================================================================

// SummarizeMonth aggregates daily entries (any order) under the given
// configuration. An empty entry list still yields the configuration-only
// fields (eligibility flag, zero aggregates).
func SummarizeMonth(entries []MonthEntry, cfg MonthConfig) MonthSummary {
	s := MonthSummary{Month: cfg.Month, ShiftCount: len(entries)}

	// Per-day maxima: a day keeps the highest-entitlement novelty seen.
	payDay := make(map[string]decimal.Decimal)
	allowanceDay := make(map[string]int)
	contributionDay := make(map[string]int)

	for _, e := range entries {
		s.ShiftPay += e.TotalPay
		s.BasePay += e.Breakdown.BasePay
		s.SurchargePay += e.Breakdown.SurchargePay

		s.HoursDay += e.Breakdown.HoursDay
		s.HoursNight += e.Breakdown.HoursNight
		s.HoursSundayOrHolidayDay += e.Breakdown.HoursSundayOrHolidayDay
		s.HoursSundayOrHolidayNight += e.Breakdown.HoursSundayOrHolidayNight
		s.OvertimeHoursTotal += e.Breakdown.OvertimeHoursTotal
		s.OvertimeDay += e.Breakdown.OvertimeDay
		s.OvertimeNight += e.Breakdown.OvertimeNight
		s.OvertimeSundayOrHolidayDay += e.Breakdown.OvertimeSundayOrHolidayDay
		s.OvertimeSundayOrHolidayNight += e.Breakdown.OvertimeSundayOrHolidayNight

		day := FormatDate(e.Date)
		if mult := e.Novelty.PayMultiplier(); mult.GreaterThan(payDay[day]) {
			payDay[day] = mult
		}
		if v := e.Novelty.AllowanceDay(); v > allowanceDay[day] {
			allowanceDay[day] = v
		}
		if v := e.Novelty.ContributionDay(); v > contributionDay[day] {
			contributionDay[day] = v
		}
	}
	s.UniqueDays = len(payDay)

	smmlv := decimal.NewFromInt(cfg.MinimumWage)
	salary := decimal.NewFromInt(cfg.BaseSalary)

	// Transport allowance: eligibility from configuration, proration from
	// the days actually entitled to it.
	s.TransportEligible = cfg.MinimumWage > 0 &&
		cfg.TransportAllowance > 0 &&
		cfg.BaseSalary > 0 &&
		salary.LessThanOrEqual(smmlv.Mul(cfg.TransportSalaryCapSMMLV))

	s.TransportProrationDays = capDays(sumDays(allowanceDay))
	if s.TransportEligible {
		s.TransportAllowance = RoundCOP(decimal.NewFromInt(cfg.TransportAllowance).
			Mul(decimal.NewFromInt(int64(s.TransportProrationDays))).
			Div(decimal.NewFromInt(30)))
	}

	var salarySum, nonSalarySum, deductionSum decimal.Decimal
	for _, item := range cfg.Earnings {
		if item.IsSalary {
			salarySum = salarySum.Add(item.Amount)
		} else {
			nonSalarySum = nonSalarySum.Add(item.Amount)
		}
	}
	for _, item := range cfg.Deductions {
		deductionSum = deductionSum.Add(item.Amount)
	}
	s.SalaryEarnings = RoundCOP(salarySum)
	s.NonSalaryEarnings = RoundCOP(nonSalarySum)

	s.GrossPay = s.ShiftPay + s.TransportAllowance + s.SalaryEarnings + s.NonSalaryEarnings

	// Contribution base (IBC), clamped to proration-scaled bounds.
	contributionDays := capDays(sumDays(contributionDay))
	proration := decimal.NewFromInt(int64(contributionDays)).Div(decimal.NewFromInt(30))

	ibcBase := s.ShiftPay + s.SalaryEarnings
	if ibcBase < 0 {
		ibcBase = 0
	}

	ibc := ibcBase
	if cfg.MinimumWage > 0 {
		floor := RoundCOP(smmlv.Mul(cfg.IBCMinSMMLV).Mul(proration))
		ceiling := RoundCOP(smmlv.Mul(cfg.IBCMaxSMMLV).Mul(proration))
		if ibc < floor {
			ibc = floor
		}
		if ibc > ceiling {
			ibc = ceiling
		}
	}
	s.IBC = ibc

	ibcDec := decimal.NewFromInt(ibc)
	if cfg.ApplyStandardDeductions {
		s.Health = RoundCOP(ibcDec.Mul(cfg.HealthPct))
		s.Pension = RoundCOP(ibcDec.Mul(cfg.PensionPct))
		if cfg.ApplySolidarityFund && cfg.MinimumWage > 0 {
			s.SolidarityFund = RoundCOP(ibcDec.Mul(solidarityFundRate(ibcDec.Div(smmlv))))
		}
	}

	s.OtherDeductions = RoundCOP(deductionSum)
	s.TotalDeductions = s.Health + s.Pension + s.SolidarityFund + s.OtherDeductions
	s.NetPay = s.GrossPay - s.TotalDeductions
	return s
}

// solidarityFundRate brackets the pension solidarity fund on IBC
// expressed in minimum wages.
func solidarityFundRate(ibcSMMLV decimal.Decimal) decimal.Decimal {
	switch {
	case ibcSMMLV.LessThan(decimal.NewFromInt(4)):
		return decimal.Zero
	case ibcSMMLV.LessThan(decimal.NewFromInt(16)):
		return decimal.NewFromFloat(0.01)
	case ibcSMMLV.LessThan(decimal.NewFromInt(17)):
		return decimal.NewFromFloat(0.012)
	case ibcSMMLV.LessThan(decimal.NewFromInt(18)):
		return decimal.NewFromFloat(0.014)
	case ibcSMMLV.LessThan(decimal.NewFromInt(19)):
		return decimal.NewFromFloat(0.016)
	case ibcSMMLV.LessThan(decimal.NewFromInt(20)):
		return decimal.NewFromFloat(0.018)
	default:
		return decimal.NewFromFloat(0.02)
	}
}

func sumDays(days map[string]int) int {
	total := 0
	for _, v := range days {
		total += v
	}
	return total
}

func capDays(n int) int {
	if n > 30 {
		return 30
	}
	return n
}
