package runtime

import (
	"math/rand/v2"

	"github.com/aretw0/pillars/pkg/domain"
)

// FaceSource produces the cosmetic faces shown while the die is rolling.
type FaceSource interface {
	Face() domain.Face
}

// FaceSourceFunc adapts a function to FaceSource.
type FaceSourceFunc func() domain.Face

func (f FaceSourceFunc) Face() domain.Face { return f() }

type globalSource struct{}

func (globalSource) Face() domain.Face {
	return domain.Face(rand.IntN(int(domain.MaxFace)) + 1)
}

// DefaultFaceSource uses the process-wide generator.
func DefaultFaceSource() FaceSource { return globalSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededFaceSource returns a reproducible source.
func NewSeededFaceSource(seed uint64) FaceSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Face() domain.Face {
	return domain.Face(s.r.IntN(int(domain.MaxFace)) + 1)
}
