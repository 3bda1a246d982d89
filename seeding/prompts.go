package seeding

import (
	"fmt"

	"github.com/riftforge/riftseed/core"
)

// ItemPrompt asks for ten items with one embedded example object.
const ItemPrompt = `
Згенеруй JSON-масив, що містить 10 унікальних предметів для RPG-гри в стилі "Solo Leveling".
Кожен об'єкт в масиві має представляти один предмет і мати наступну структуру:
- "id": унікальний рядок в стилі "type_name_level", наприклад, "potion_health_small".
- "name": назва предмету українською.
- "description": короткий опис предмету українською.
- "type": рядок, одне зі значень: "potion", "key", "material", "collectible".
- "iconPath": рядок, шлях до іконки, наприклад, "assets/icons/items/health_potion.svg".
- "isStackable": булеве значення (true/false). Зілля та матеріали мають бути true.
- "effects": об'єкт JSON з ефектами при використанні. Ключ - тип ефекту, значення - число. Можливі типи: "restoreHp", "restoreMp". Для предметів без ефекту (ключі, матеріали) це має бути порожній об'єкт {}.

Створи різноманітні предмети:
- 3-4 зілля (здоров'я, мана; мале/середнє).
- 2-3 ключі (для розломів/підземель різних рангів: E, D).
- 2-3 матеріали (напр., "Магічний камінь", "Фрагмент есенції").
- 1-2 колекційні предмети (напр., "Зуб вовка-тіні").

Надай відповідь ТІЛЬКИ у вигляді валідного JSON-масиву, без жодних коментарів.
Приклад одного елемента:
{
  "id": "potion_health_small",
  "name": "Мале Зілля Здоров'я",
  "description": "Слабке зілля, що відновлює невелику кількість здоров'я.",
  "type": "potion",
  "iconPath": "assets/icons/items/health_potion.svg",
  "isStackable": true,
  "effects": { "restoreHp": 25.0 }
}
`

// SkillPrompt asks for fifteen skills: ten passives and five active buffs.
const SkillPrompt = `
Згенеруй JSON-масив, що містить 15 унікальних навичок для RPG-гри в стилі "Solo Leveling".
Кожен об'єкт в масиві має представляти одну навичку і мати наступну структуру:
- "id": унікальний рядок в стилі "type_name_level", наприклад, "passive_toughness_1".
- "name": назва навички українською, наприклад, "Фізична Закалка I".
- "description": короткий опис ефекту навички українською.
- "skillType": рядок, одне зі значень: "passive", "activeBuff".
- "levelRequirement": число, мінімальний рівень гравця для вивчення (від 5 до 40).
- "skillPointCost": число, вартість вивчення (1 або 2).
- "statRequirements": об'єкт JSON з вимогами до характеристик. Ключ - назва стату (strength, agility, intelligence, perception, stamina), значення - число. Може бути порожнім.
- "effects": об'єкт JSON з ефектами. Ключ - тип ефекту, значення - число. Типи ефектів: addStrength, addStamina, multiplyMaxHp, multiplyMaxMp, multiplyXpGain.
- "mpCost": число, вартість в MP (тільки для "activeBuff", 10-50). Для "passive" має бути null.
- "durationSeconds": число, тривалість бафу в секундах (тільки для "activeBuff", 300-1200). Для "passive" має бути null.
- "cooldownSeconds": число, час перезарядки в секундах (тільки для "activeBuff", 1800-7200). Для "passive" має бути null.

Створи різноманітні навички: 10 пасивних та 5 активних бафів.
Назви мають бути епічними та відповідати стилю.
Надай відповідь ТІЛЬКИ у вигляді валідного JSON-масиву, без жодних коментарів або пояснень.
`

// PromptFor returns the fixed prompt for kind.
func PromptFor(kind core.Kind) (string, error) {
	switch kind {
	case core.KindItem:
		return ItemPrompt, nil
	case core.KindSkill:
		return SkillPrompt, nil
	}
	return "", fmt.Errorf("%w: %d", core.ErrInvalidKind, int(kind))
}
