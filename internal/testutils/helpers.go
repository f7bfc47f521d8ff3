package testutils

import (
	"time"

	"github.com/aretw0/pillars/internal/runtime"
	"github.com/aretw0/pillars/pkg/domain"
)

// FixedFaces returns a FaceSource that cycles through faces.
func FixedFaces(faces ...domain.Face) runtime.FaceSource {
	i := 0
	return runtime.FaceSourceFunc(func() domain.Face {
		f := faces[i%len(faces)]
		i++
		return f
	})
}

// FastSchedule returns a short schedule for tests that use real timers.
func FastSchedule() runtime.Schedule {
	return runtime.Schedule{Ticks: 3, BaseDelay: time.Millisecond, StepDelay: 0}
}
