package store

// AddSeconds adds secs to the daily total for day. Totals never decrease, so
// non-positive amounts are ignored.
func (s *Store) AddSeconds(day string, secs float64) {
	if secs <= 0 {
		return
	}
	s.data.DailyTime[day] += secs
}

// DailySeconds returns the accumulated productive seconds for day, 0 when the
// day has no entry.
func (s *Store) DailySeconds(day string) float64 {
	return s.data.DailyTime[day]
}

// DailyTime returns a copy of the day → seconds map.
func (s *Store) DailyTime() map[string]float64 {
	out := make(map[string]float64, len(s.data.DailyTime))
	for k, v := range s.data.DailyTime {
		out[k] = v
	}
	return out
}
