package model

// Origin tells who produced a ledger entry's decision.
type Origin string

// Available Origin values.
const (
	OriginUser     Origin = "user"
	OriginPolicy   Origin = "policy"
	OriginResolver Origin = "resolver"
)

// LedgerEntry records one reviewed occurrence. Entries are never revised.
type LedgerEntry struct {
	Module   Path       `yaml:"module"`
	Old      string     `yaml:"old"`
	New      string     `yaml:"new"`
	Kind     SymbolKind `yaml:"kind"`
	Accepted bool       `yaml:"accepted"`
	Origin   Origin     `yaml:"origin"`
	Affected []Path     `yaml:"affected,omitempty"`
}

// WarningKind enumerates the warnings a run can emit.
type WarningKind string

// Available WarningKind values.
const (
	WarnPreExistingCollision WarningKind = "PRE_EXISTING_COLLISION"
	WarnMergeCollision       WarningKind = "MERGE_COLLISION"
	WarnResolveSkipped       WarningKind = "RESOLVE_SKIPPED"
	WarnStalePreimage        WarningKind = "STALE_PREIMAGE"
	WarnStaleImage           WarningKind = "STALE_IMAGE"
	WarnLeftoverQuarantine   WarningKind = "LEFTOVER_QUARANTINE"
	WarnSweepSkipped         WarningKind = "SWEEP_SKIPPED"
)

// IsCollision reports whether the kind is raised by the ledger while
// decisions are being made.
func (k WarningKind) IsCollision() bool {
	return k == WarnPreExistingCollision || k == WarnMergeCollision
}

// IsPostPass reports whether the kind is raised by the final verification.
func (k WarningKind) IsPostPass() bool {
	return k == WarnStalePreimage || k == WarnStaleImage
}

// Warning is purely informational and never blocks a run.
type Warning struct {
	Kind     WarningKind `yaml:"kind"`
	Module   Path        `yaml:"module,omitempty"`
	Old      string      `yaml:"old,omitempty"`
	New      string      `yaml:"new,omitempty"`
	Previous string      `yaml:"previous,omitempty"`
	Modules  []Path      `yaml:"modules,omitempty"`
	Detail   string      `yaml:"detail,omitempty"`
}
