package model

// Section is the top level of the content tree for one grade level.
// swagger:model Section
type Section struct {
	UUIDBase
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	GradeLevel  int     `gorm:"index;not null" json:"gradeLevel"`
	OrderIndex  int     `gorm:"not null;default:0" json:"orderIndex"`
	Topics      []Topic `gorm:"foreignKey:SectionID" json:"topics"`
}

func (Section) TableName() string {
	return "sections"
}

// swagger:model Topic
type Topic struct {
	UUIDBase
	SectionID  string   `gorm:"index;type:varchar(36);not null" json:"sectionId"`
	Title      string   `gorm:"size:255;not null" json:"title"`
	Content    string   `gorm:"type:text" json:"content"`
	OrderIndex int      `gorm:"not null;default:0" json:"orderIndex"`
	Lessons    []Lesson `gorm:"foreignKey:TopicID" json:"lessons"`
}

func (Topic) TableName() string {
	return "topics"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	TopicID    string        `gorm:"index;type:varchar(36);not null" json:"topicId"`
	Title      string        `gorm:"size:255;not null" json:"title"`
	Content    string        `gorm:"type:text" json:"content"`
	OrderIndex int           `gorm:"not null;default:0" json:"orderIndex"`
	Media      []LessonMedia `gorm:"foreignKey:LessonID" json:"media"`
}

func (Lesson) TableName() string {
	return "lessons"
}
