package models

// Skill is one entry of the skills grid. Ordering is scoped within its
// category; the grouped view is produced by GroupSkillsByCategory.
type Skill struct {
	BaseModel
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Category string `gorm:"type:varchar(100);not null;index" json:"category"`
	Icon     string `gorm:"type:varchar(100)" json:"icon,omitempty"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
}

// SkillGroup is one category bucket of the skills display.
type SkillGroup struct {
	Category string  `json:"category"`
	Skills   []Skill `json:"skills"`
}

// GroupSkillsByCategory buckets an already-sorted skill list (category asc,
// order asc within category) into display groups, preserving that order.
func GroupSkillsByCategory(skills []Skill) []SkillGroup {
	groups := make([]SkillGroup, 0)
	index := make(map[string]int)
	for _, skill := range skills {
		i, ok := index[skill.Category]
		if !ok {
			i = len(groups)
			index[skill.Category] = i
			groups = append(groups, SkillGroup{Category: skill.Category})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}
