// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-08-21
// Last Modified: 2026-08-28

package steps

import (
	"github.com/templigh/templi-bot/internal/core/pipeline"
)

// RegisterAll registers all built-in steps with the registry.
func RegisterAll(r *pipeline.Registry) {
	r.Register("gatekeeper", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewGatekeeper(deps), nil
	})

	r.Register("classify", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewClassify(deps), nil
	})

	r.Register("validate", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewValidate(deps), nil
	})

	r.Register("compose", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewCompose(deps), nil
	})

	r.Register("synchronize", func(deps *pipeline.Dependencies) (pipeline.Step, error) {
		return NewSynchronize(deps), nil
	})
}
