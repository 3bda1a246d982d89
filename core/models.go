package core

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// Kind identifies which family of game records a pipeline seeds.
type Kind int

const (
	// KindItem seeds inventory items into the "items" collection.
	KindItem Kind = iota + 1
	// KindSkill seeds player skills into the "skills" collection.
	KindSkill
)

// Kinds lists every seedable kind in a stable order.
var Kinds = []Kind{KindItem, KindSkill}

// String returns the singular name of the kind.
func (k Kind) String() string {
	switch k {
	case KindItem:
		return "item"
	case KindSkill:
		return "skill"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Collection returns the fixed document collection the kind is written to.
func (k Kind) Collection() string {
	switch k {
	case KindItem:
		return "items"
	case KindSkill:
		return "skills"
	default:
		return ""
	}
}

// ParseKind maps "item"/"items"/"skill"/"skills" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "item", "items":
		return KindItem, nil
	case "skill", "skills":
		return KindSkill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// IDField is the mapping key that carries a record's identifier.
const IDField = "id"

// Record is one qualified entry destined for the document store.
// Data is the decoded mapping exactly as the model produced it, id included.
type Record struct {
	ID   string
	Data map[string]any
}

// Item is the typed view of an item record.
type Item struct {
	ID          string             `json:"id" firestore:"id"`
	Name        string             `json:"name" firestore:"name"`
	Description string             `json:"description" firestore:"description"`
	Type        string             `json:"type" firestore:"type"`
	IconPath    string             `json:"iconPath" firestore:"iconPath"`
	IsStackable bool               `json:"isStackable" firestore:"isStackable"`
	Effects     map[string]float64 `json:"effects" firestore:"effects"`
}

// ItemTypes are the category tags an item may carry.
var ItemTypes = []string{"potion", "key", "material", "collectible"}

// Skill is the typed view of a skill record.
// MPCost, DurationSeconds and CooldownSeconds are set only for active buffs.
type Skill struct {
	ID               string             `json:"id" firestore:"id"`
	Name             string             `json:"name" firestore:"name"`
	Description      string             `json:"description" firestore:"description"`
	SkillType        string             `json:"skillType" firestore:"skillType"`
	LevelRequirement float64            `json:"levelRequirement" firestore:"levelRequirement"`
	SkillPointCost   float64            `json:"skillPointCost" firestore:"skillPointCost"`
	StatRequirements map[string]float64 `json:"statRequirements" firestore:"statRequirements"`
	Effects          map[string]float64 `json:"effects" firestore:"effects"`
	MPCost           *float64           `json:"mpCost" firestore:"mpCost"`
	DurationSeconds  *float64           `json:"durationSeconds" firestore:"durationSeconds"`
	CooldownSeconds  *float64           `json:"cooldownSeconds" firestore:"cooldownSeconds"`
}

// Skill type tags.
const (
	SkillTypePassive    = "passive"
	SkillTypeActiveBuff = "activeBuff"
)

// StatNames are the stats a skill may require.
var StatNames = []string{"strength", "agility", "intelligence", "perception", "stamina"}

// RunID is a short content fingerprint of a raw model response.
// Identical responses produce identical run IDs, which makes archived
// responses and log lines easy to correlate.
type RunID uint64

// RunIDFromContent hashes text with 64-bit BLAKE2b.
func RunIDFromContent(text string) RunID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return RunID(binary.LittleEndian.Uint64(sum))
}

// String renders the run ID as 16 hex characters.
func (r RunID) String() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(r))
	return hex.EncodeToString(buf[:])
}
