package domain

// ItemType is the top-level bucket of a captured inbox item.
type ItemType string

const (
	ItemTypeNote        ItemType = "NOTE"
	ItemTypeActionIdea  ItemType = "ACTION_IDEA"
	ItemTypeOutcomeIdea ItemType = "OUTCOME_IDEA"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeNote, ItemTypeActionIdea, ItemTypeOutcomeIdea:
		return true
	}
	return false
}

// ChunkStatus is the visibility state of a chunk. It is independent of
// whether the chunk has been converted.
type ChunkStatus string

const (
	ChunkStatusActive   ChunkStatus = "ACTIVE"
	ChunkStatusArchived ChunkStatus = "ARCHIVED"
)

func (s ChunkStatus) String() string { return string(s) }

func (s ChunkStatus) IsValid() bool {
	switch s {
	case ChunkStatusActive, ChunkStatusArchived:
		return true
	}
	return false
}

// ConvertedToType identifies what kind of entity a chunk was converted into.
type ConvertedToType string

const (
	ConvertedToOutcome ConvertedToType = "OUTCOME"
)

func (t ConvertedToType) String() string { return string(t) }

// PostConversionAction is what the client should do after a conversion.
type PostConversionAction string

const (
	PostConversionStay     PostConversionAction = "STAY"
	PostConversionNavigate PostConversionAction = "NAVIGATE"
)

func (a PostConversionAction) String() string { return string(a) }

func (a PostConversionAction) IsValid() bool {
	switch a {
	case PostConversionStay, PostConversionNavigate:
		return true
	}
	return false
}

// ConversionStep is the persisted saga cursor of an in-flight conversion.
// Steps are strictly ordered; a resumed conversion continues after the last
// completed step.
type ConversionStep string

const (
	ConversionStepPending        ConversionStep = "PENDING"
	ConversionStepOutcomeCreated ConversionStep = "OUTCOME_CREATED"
	ConversionStepActionsCreated ConversionStep = "ACTIONS_CREATED"
	ConversionStepChunkUpdated   ConversionStep = "CHUNK_UPDATED"
	ConversionStepItemsTriaged   ConversionStep = "ITEMS_TRIAGED"
	ConversionStepDone           ConversionStep = "DONE"
)

var conversionStepOrder = map[ConversionStep]int{
	ConversionStepPending:        0,
	ConversionStepOutcomeCreated: 1,
	ConversionStepActionsCreated: 2,
	ConversionStepChunkUpdated:   3,
	ConversionStepItemsTriaged:   4,
	ConversionStepDone:           5,
}

func (s ConversionStep) String() string { return string(s) }

func (s ConversionStep) IsValid() bool {
	_, ok := conversionStepOrder[s]
	return ok
}

// Reached reports whether s is at or past other.
func (s ConversionStep) Reached(other ConversionStep) bool {
	return conversionStepOrder[s] >= conversionStepOrder[other]
}

// OutcomeStatus is the lifecycle state of an outcome.
type OutcomeStatus string

const (
	OutcomeStatusActive    OutcomeStatus = "ACTIVE"
	OutcomeStatusCompleted OutcomeStatus = "COMPLETED"
	OutcomeStatusArchived  OutcomeStatus = "ARCHIVED"
)

func (s OutcomeStatus) String() string { return string(s) }

// ActionPriority is the priority assigned to an action.
type ActionPriority string

const (
	ActionPriorityLow    ActionPriority = "LOW"
	ActionPriorityMedium ActionPriority = "MEDIUM"
	ActionPriorityHigh   ActionPriority = "HIGH"
)

func (p ActionPriority) String() string { return string(p) }

func (p ActionPriority) IsValid() bool {
	switch p {
	case ActionPriorityLow, ActionPriorityMedium, ActionPriorityHigh:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeInboxItem  EntityType = "INBOX_ITEM"
	EntityTypeChunk      EntityType = "CHUNK"
	EntityTypeOutcome    EntityType = "OUTCOME"
	EntityTypePreference EntityType = "PREFERENCE"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeInboxItem, EntityTypeChunk, EntityTypeOutcome, EntityTypePreference:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionConvert AuditAction = "CONVERT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionConvert:
		return true
	}
	return false
}
