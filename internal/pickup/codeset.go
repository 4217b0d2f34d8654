package pickup

import "strings"

// legacySeparator splits the old "<code>|<location>" key format.
const legacySeparator = "|"

// CodeRecord is one entry of the processed-code set.
type CodeRecord struct {
	Code         string
	LegacySuffix string // location carried by a legacy key, empty for exact keys
}

// CodeSet is the working copy of the persisted processed codes.
// Keys are normalized to the exact-code form on load; membership is by code only.
type CodeSet struct {
	records  []CodeRecord
	index    map[string]int
	migrated int
}

// ParseCodeSet builds a CodeSet from persisted keys, normalizing legacy
// "<code>|<location>" entries. Empty and repeated codes are dropped.
func ParseCodeSet(keys []string) *CodeSet {
	s := &CodeSet{
		records: make([]CodeRecord, 0, len(keys)),
		index:   make(map[string]int, len(keys)),
	}
	for _, key := range keys {
		rec := CodeRecord{Code: key}
		if code, suffix, ok := strings.Cut(key, legacySeparator); ok {
			rec = CodeRecord{Code: code, LegacySuffix: suffix}
			s.migrated++
		}
		if rec.Code == "" {
			continue
		}
		if _, exists := s.index[rec.Code]; exists {
			continue
		}
		s.index[rec.Code] = len(s.records)
		s.records = append(s.records, rec)
	}
	return s
}

// Contains reports whether code was already processed.
func (s *CodeSet) Contains(code string) bool {
	_, ok := s.index[code]
	return ok
}

// Add inserts code and reports whether the set changed.
func (s *CodeSet) Add(code string) bool {
	if code == "" || s.Contains(code) {
		return false
	}
	s.index[code] = len(s.records)
	s.records = append(s.records, CodeRecord{Code: code})
	return true
}

// Keys returns the exact-code keys in insertion order, ready to persist.
func (s *CodeSet) Keys() []string {
	keys := make([]string, len(s.records))
	for i, rec := range s.records {
		keys[i] = rec.Code
	}
	return keys
}

// Records returns a copy of the underlying records.
func (s *CodeSet) Records() []CodeRecord {
	out := make([]CodeRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *CodeSet) Len() int { return len(s.records) }

// Migrated is the number of legacy keys normalized during ParseCodeSet.
func (s *CodeSet) Migrated() int { return s.migrated }
