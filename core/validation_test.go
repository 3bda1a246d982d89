package core

import (
	"errors"
	"strings"
	"testing"
)

func TestQualify(t *testing.T) {
	tests := []struct {
		name    string
		entry   any
		wantID  string
		wantErr error
	}{
		{
			name:   "mapping with id",
			entry:  map[string]any{"id": "potion_health_small", "name": "X"},
			wantID: "potion_health_small",
		},
		{
			name:   "mapping with only id",
			entry:  map[string]any{"id": "a"},
			wantID: "a",
		},
		{
			name:    "mapping without id",
			entry:   map[string]any{"name": "X"},
			wantErr: ErrMissingID,
		},
		{
			name:    "mapping with empty id",
			entry:   map[string]any{"id": ""},
			wantErr: ErrMissingID,
		},
		{
			name:    "mapping with null id",
			entry:   map[string]any{"id": nil},
			wantErr: ErrMissingID,
		},
		{
			name:    "mapping with numeric id",
			entry:   map[string]any{"id": float64(7)},
			wantErr: ErrMissingID,
		},
		{
			name:    "string entry",
			entry:   "potion",
			wantErr: ErrNotMapping,
		},
		{
			name:    "nested array",
			entry:   []any{map[string]any{"id": "a"}},
			wantErr: ErrNotMapping,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrNotMapping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Qualify(tt.entry)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Qualify() expected error %v, got nil", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Qualify() error = %v, want %v", err, tt.wantErr)
				}
				if !errors.Is(err, ErrInvalidRecord) {
					t.Errorf("Qualify() error should wrap ErrInvalidRecord, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Qualify() unexpected error: %v", err)
			}
			if record.ID != tt.wantID {
				t.Errorf("Qualify() ID = %q, want %q", record.ID, tt.wantID)
			}
			if record.Data[IDField] != tt.wantID {
				t.Errorf("Qualify() should keep id inside Data")
			}
		})
	}
}

func TestInspect_Item(t *testing.T) {
	valid := &Record{ID: "potion_health_small", Data: map[string]any{
		"id":          "potion_health_small",
		"name":        "Мале Зілля Здоров'я",
		"description": "Слабке зілля.",
		"type":        "potion",
		"iconPath":    "assets/icons/items/health_potion.svg",
		"isStackable": true,
		"effects":     map[string]any{"restoreHp": 25.0},
	}}
	if issues := Inspect(KindItem, valid); len(issues) != 0 {
		t.Errorf("Inspect() valid item reported issues: %v", issues)
	}

	odd := &Record{ID: "x", Data: map[string]any{
		"id":       "x",
		"name":     "X",
		"type":     "weapon",
		"iconPath": "a.svg",
		"effects":  map[string]any{},
	}}
	issues := Inspect(KindItem, odd)
	if len(issues) != 1 || !strings.Contains(issues[0], "weapon") {
		t.Errorf("Inspect() expected unknown type issue, got %v", issues)
	}

	wrongShape := &Record{ID: "x", Data: map[string]any{"id": "x", "isStackable": "yes"}}
	if issues := Inspect(KindItem, wrongShape); len(issues) == 0 {
		t.Errorf("Inspect() expected schema mismatch for string isStackable")
	}
}

func TestInspect_Skill(t *testing.T) {
	passive := &Record{ID: "passive_toughness_1", Data: map[string]any{
		"id":               "passive_toughness_1",
		"name":             "Фізична Закалка I",
		"skillType":        "passive",
		"levelRequirement": 5.0,
		"skillPointCost":   1.0,
		"statRequirements": map[string]any{"strength": 10.0},
		"effects":          map[string]any{"addStrength": 2.0},
		"mpCost":           nil,
		"durationSeconds":  nil,
		"cooldownSeconds":  nil,
	}}
	if issues := Inspect(KindSkill, passive); len(issues) != 0 {
		t.Errorf("Inspect() valid passive reported issues: %v", issues)
	}

	buff := &Record{ID: "active_rage_1", Data: map[string]any{
		"id":              "active_rage_1",
		"name":            "Лють",
		"skillType":       "activeBuff",
		"effects":         map[string]any{"multiplyMaxHp": 1.2},
		"mpCost":          20.0,
		"durationSeconds": 600.0,
	}}
	issues := Inspect(KindSkill, buff)
	if len(issues) != 1 || !strings.Contains(issues[0], "active buff") {
		t.Errorf("Inspect() expected missing cooldown issue, got %v", issues)
	}

	passiveWithCost := &Record{ID: "p", Data: map[string]any{
		"id":               "p",
		"name":             "P",
		"skillType":        "passive",
		"statRequirements": map[string]any{"luck": 3.0},
		"mpCost":           10.0,
	}}
	issues = Inspect(KindSkill, passiveWithCost)
	if len(issues) != 2 {
		t.Errorf("Inspect() expected 2 issues, got %v", issues)
	}
}

func TestInspect_Nil(t *testing.T) {
	if issues := Inspect(KindItem, nil); issues != nil {
		t.Errorf("Inspect(nil) = %v, want nil", issues)
	}
}
