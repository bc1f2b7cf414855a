package risk

import "math"

// unset reports whether a required input is missing. Zero and NaN both
// count, matching what a half-filled form hands over.
func unset(x float64) bool {
	return x == 0 || math.IsNaN(x)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// RiskAmount is the cash lost if the stop is hit.
func RiskAmount(balance, riskPct float64) float64 {
	return balance * riskPct / 100
}

// StopLossDistance is signed: it is positive only when the stop sits on
// the losing side of entry for the given direction.
func StopLossDistance(entry, stop float64, pos PositionType) float64 {
	if pos == Long {
		return entry - stop
	}
	return stop - entry
}

// TakeProfitDistance is 0 when there is no target.
func TakeProfitDistance(entry, takeProfit float64, pos PositionType) float64 {
	if unset(takeProfit) {
		return 0
	}
	if pos == Long {
		return takeProfit - entry
	}
	return entry - takeProfit
}

func PositionSize(riskAmount, stopDistance float64) float64 {
	if stopDistance > 0 {
		return riskAmount / stopDistance
	}
	return 0
}

func PotentialProfit(size, takeProfitDistance float64) float64 {
	if takeProfitDistance > 0 {
		return size * takeProfitDistance
	}
	return 0
}

// RR returns reward per unit of risk, or 0 when either side is not positive.
func RR(potentialProfit, riskAmount float64) float64 {
	if riskAmount > 0 && potentialProfit > 0 {
		return potentialProfit / riskAmount
	}
	return 0
}

// RiskPct expresses loss as a percentage of capital.
func RiskPct(loss, capital float64) float64 {
	if capital <= 0 {
		return 0
	}
	return loss / capital * 100
}
