package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Jar is a named savings sub-goal. Lower priority values are more urgent.
type Jar struct {
	Name     string
	Color    string
	Target   decimal.Decimal
	Current  decimal.Decimal
	Priority int
}

// Shortfall returns how much is still missing to reach the target, never negative.
func (j Jar) Shortfall() decimal.Decimal {
	missing := j.Target.Sub(j.Current)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// Funded reports whether the jar has reached its target.
func (j Jar) Funded() bool {
	return j.Current.GreaterThanOrEqual(j.Target)
}

// Clamped returns a copy of the jar with Current limited to [0, Target].
func (j Jar) Clamped() Jar {
	if j.Current.IsNegative() {
		j.Current = decimal.Zero
	}
	if j.Current.GreaterThan(j.Target) {
		j.Current = j.Target
	}
	return j
}

// Validate checks the jar invariants.
func (j Jar) Validate() error {
	if j.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidJar)
	}
	if !j.Target.IsPositive() {
		return fmt.Errorf("%w: target must be positive, got %s", ErrInvalidJar, j.Target)
	}
	if j.Priority <= 0 {
		return fmt.Errorf("%w: priority must be positive, got %d", ErrInvalidJar, j.Priority)
	}
	return nil
}

// TotalShortfall sums the clamped shortfall of every jar.
func TotalShortfall(jars []Jar) decimal.Decimal {
	total := decimal.Zero
	for _, jar := range jars {
		total = total.Add(jar.Shortfall())
	}
	return total
}

// TotalTargets sums the target of every jar.
func TotalTargets(jars []Jar) decimal.Decimal {
	total := decimal.Zero
	for _, jar := range jars {
		total = total.Add(jar.Target)
	}
	return total
}

// FindJar returns the first jar with the given name.
func FindJar(jars []Jar, name string) (Jar, bool) {
	for _, jar := range jars {
		if jar.Name == name {
			return jar, true
		}
	}
	return Jar{}, false
}
