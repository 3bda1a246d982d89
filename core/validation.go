// Copyright 2025 Riftforge Games
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Qualify decides whether a decoded JSON entry can be uploaded.
//
// Qualification rules:
//   - entry must be a mapping (JSON object)
//   - the mapping must carry a non-empty string "id"
//
// NOT validated (advisory only, see Inspect):
//   - the remaining fields, their types or enumerations
func Qualify(entry any) (*Record, error) {
	data, ok := entry.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %w (got %T)", ErrInvalidRecord, ErrNotMapping, entry)
	}

	id, _ := data[IDField].(string)
	if id == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, ErrMissingID)
	}

	return &Record{ID: id, Data: data}, nil
}

// Inspect compares a record against the documented schema of its kind and
// returns human-readable deviations. It never rejects a record; the pipeline
// logs the findings and uploads the record unchanged.
func Inspect(kind Kind, record *Record) []string {
	if record == nil {
		return nil
	}

	switch kind {
	case KindItem:
		var item Item
		if err := decodeInto(record.Data, &item); err != nil {
			return []string{err.Error()}
		}
		return inspectItem(&item)
	case KindSkill:
		var skill Skill
		if err := decodeInto(record.Data, &skill); err != nil {
			return []string{err.Error()}
		}
		return inspectSkill(&skill)
	}
	return nil
}

// decodeInto round-trips a generic mapping into a typed view.
func decodeInto(data map[string]any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cannot re-encode record: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}

func inspectItem(item *Item) []string {
	var issues []string
	if item.Name == "" {
		issues = append(issues, "name is empty")
	}
	if !slices.Contains(ItemTypes, item.Type) {
		issues = append(issues, fmt.Sprintf("unknown item type %q", item.Type))
	}
	if item.IconPath == "" {
		issues = append(issues, "iconPath is empty")
	}
	if item.Effects == nil {
		issues = append(issues, "effects is missing")
	}
	return issues
}

func inspectSkill(skill *Skill) []string {
	var issues []string
	if skill.Name == "" {
		issues = append(issues, "name is empty")
	}
	for stat := range skill.StatRequirements {
		if !slices.Contains(StatNames, stat) {
			issues = append(issues, fmt.Sprintf("unknown stat requirement %q", stat))
		}
	}

	activeOnly := skill.MPCost != nil || skill.DurationSeconds != nil || skill.CooldownSeconds != nil
	switch skill.SkillType {
	case SkillTypePassive:
		if activeOnly {
			issues = append(issues, "passive skill carries mpCost/durationSeconds/cooldownSeconds")
		}
	case SkillTypeActiveBuff:
		if skill.MPCost == nil || skill.DurationSeconds == nil || skill.CooldownSeconds == nil {
			issues = append(issues, "active buff is missing mpCost/durationSeconds/cooldownSeconds")
		}
	default:
		issues = append(issues, fmt.Sprintf("unknown skill type %q", skill.SkillType))
	}
	return issues
}
