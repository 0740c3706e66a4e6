package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Threshold records that from Trigger on, the library requires compile SDK Floor.
type Threshold struct {
	Trigger string
	Floor   int
}

// ThresholdTable is an append-only list of thresholds ordered by trigger.
type ThresholdTable struct {
	entries []thresholdEntry
}

type thresholdEntry struct {
	Threshold
	trigger Version
}

// NewThresholdTable builds a table from thresholds given in ascending trigger order.
func NewThresholdTable(thresholds ...Threshold) (ThresholdTable, error) {
	var t ThresholdTable
	for _, th := range thresholds {
		if err := t.Add(th); err != nil {
			return ThresholdTable{}, err
		}
	}
	return t, nil
}

// Add appends a threshold. Its trigger must sort after every existing trigger.
func (t *ThresholdTable) Add(th Threshold) error {
	if th.Floor <= 0 {
		return zerr.With(ErrInvalidFloor, "floor", strconv.Itoa(th.Floor))
	}
	v, err := ParseVersion(th.Trigger)
	if err != nil {
		return zerr.Wrap(err, "invalid threshold trigger")
	}
	if n := len(t.entries); n > 0 && !t.entries[n-1].trigger.LessThan(v) {
		err := zerr.With(ErrThresholdOrder, "trigger", th.Trigger)
		return zerr.With(err, "previous", t.entries[n-1].Trigger)
	}
	t.entries = append(t.entries, thresholdEntry{Threshold: th, trigger: v})
	return nil
}

// Lookup returns the first threshold whose trigger the candidate version
// predates. A candidate at or after every trigger matches nothing.
func (t ThresholdTable) Lookup(candidate Version) (Threshold, bool) {
	for _, e := range t.entries {
		if candidate.LessThan(e.trigger) {
			return e.Threshold, true
		}
	}
	return Threshold{}, false
}

// Thresholds returns the entries in trigger order.
func (t ThresholdTable) Thresholds() []Threshold {
	out := make([]Threshold, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Threshold
	}
	return out
}

// Len returns the number of entries.
func (t ThresholdTable) Len() int {
	return len(t.entries)
}
