package port

import "github.com/bnema/tintbar/internal/domain/entity"

// ColorGenerator produces a title-bar color for the given luminosity band.
// Pure per call and side-effect free; determinism is not required, only a
// well-distributed, legible color on each call.
type ColorGenerator interface {
	Generate(luminosity entity.Luminosity) entity.Color
}
