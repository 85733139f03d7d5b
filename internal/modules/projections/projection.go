package projections

import (
	"fmt"
	"math"
)

// Compounding frequencies.
const (
	CompoundMonthly  = "monthly"
	CompoundAnnually = "annually"
)

// Iteration cap for the general simulation: 100 years of months. Reaching it
// is treated as unreachable.
const maxSimulationMonths = 1200

// DefaultTraceMonths caps the projection trace at 50 years.
const DefaultTraceMonths = 600

// Point is one month of the projection trace, decomposing the balance into
// the constant starting principal, cumulative contributions, and growth.
type Point struct {
	Month         int     `json:"month"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Growth        float64 `json:"growth"`
}

// monthlyRate converts an annual percentage rate to a per-month rate.
// Monthly compounding divides the annual rate by 12; annual compounding uses
// the rate whose 12 monthly applications compound to the stated annual rate.
func monthlyRate(annualRatePct float64, compounding string) float64 {
	annualRate := annualRatePct / 100
	if compounding == CompoundAnnually {
		return math.Pow(1+annualRate, 1.0/12) - 1
	}
	return annualRate / 12
}

// MonthsToGoal computes how many months of compound growth plus monthly
// contributions are needed to reach goal from current. Returns nil when the
// goal is unreachable: flat balance with no deposits, non-positive principal
// with growth only, or a simulation exceeding 100 years.
func MonthsToGoal(current, goal, contribution, annualRatePct float64, compounding string) *float64 {
	if goal <= current {
		zero := 0.0
		return &zero
	}

	if annualRatePct == 0 && contribution == 0 {
		return nil
	}

	rate := monthlyRate(annualRatePct, compounding)

	if rate == 0 {
		if contribution > 0 {
			months := (goal - current) / contribution
			return &months
		}
		return nil
	}

	if contribution == 0 {
		if current <= 0 {
			return nil
		}
		months := math.Log(goal/current) / math.Log(1+rate)
		return &months
	}

	months := 0.0
	balance := current
	for balance < goal && months < maxSimulationMonths {
		balance = balance*(1+rate) + contribution
		months++
	}
	if months >= maxSimulationMonths {
		return nil
	}

	return &months
}

// Trace generates the month-by-month projection up to maxMonths, stopping the
// first month the balance reaches the goal. Growth is whatever part of the
// balance is neither starting principal nor contributions.
func Trace(current, goal, contribution, annualRatePct float64, compounding string, maxMonths int) []Point {
	if maxMonths <= 0 {
		maxMonths = DefaultTraceMonths
	}

	rate := monthlyRate(annualRatePct, compounding)

	points := make([]Point, 0, maxMonths+1)
	balance := current
	contributions := 0.0

	for month := 0; month <= maxMonths; month++ {
		points = append(points, Point{
			Month:         month,
			Balance:       balance,
			Contributions: contributions,
			Growth:        balance - current - contributions,
		})

		if balance >= goal {
			break
		}

		balance = balance*(1+rate) + contribution
		contributions += contribution
	}

	return points
}

// FormatTimeToGoal renders a month count as a human string
// ("3 years and 2 months"). A nil count means the goal is unreachable.
func FormatTimeToGoal(months *float64) string {
	if months == nil {
		return "Goal unreachable"
	}
	if *months == 0 {
		return "Goal achieved!"
	}

	years := int(*months) / 12
	remaining := int(*months) % 12

	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", remaining, plural("month", remaining))
	case remaining == 0:
		return fmt.Sprintf("%d %s", years, plural("year", years))
	default:
		return fmt.Sprintf("%d %s and %d %s",
			years, plural("year", years), remaining, plural("month", remaining))
	}
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
