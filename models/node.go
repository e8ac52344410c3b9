package models

// Node represents a graph vertex. Name and Color are pointers so that absent
// values are stored as NULL and round-trip as JSON null, never as "".
type Node struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  *string `gorm:"uniqueIndex;size:80" json:"name"`
	Color *string `gorm:"size:7;index" json:"_color"`
}
