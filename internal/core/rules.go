package core

import "stayflow/pkg/domain"

// NewDefaultRulesEngine builds a rules engine with the built-in policy set:
// transition-table enforcement, completion-time stamping, room reference
// integrity, and per-field value bounds.
func NewDefaultRulesEngine() *RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(StatusTransitionRule())
	engine.Register(CompletionStampRule())
	engine.Register(RoomReferenceRule())
	engine.Register(FieldBoundsRule())
	return engine
}
