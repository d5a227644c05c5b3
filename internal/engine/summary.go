package engine

// Summary is the score shown on the completion surface and published to
// observers: fixed points per catalog entry plus the hearts that survived.
type Summary struct {
	LessonID string
	Points   int
	Hearts   int
	Infinite bool
	Practice bool
}

// Summary builds the completion summary from current session state.
func (s *Session) Summary() Summary {
	return Summary{
		LessonID: s.lesson.ID,
		Points:   s.lesson.Len() * PointsPerChallenge,
		Hearts:   s.hearts,
		Infinite: s.infinite,
		Practice: s.practice,
	}
}
