package models

// Edge is a directed connection from a source node (Sid) to a target node
// (Tid). Both foreign keys cascade on node delete and id renumbering, and a
// check constraint rejects self-loops. Integrity lives in the schema, not in
// handler code, so a single insert stays atomic.
type Edge struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Sid   uint    `gorm:"not null;index" json:"sid"`
	Tid   uint    `gorm:"not null;index;check:chk_edges_no_self_loop,sid <> tid" json:"tid"`
	Name  *string `gorm:"uniqueIndex;size:80" json:"name"`
	Color *string `gorm:"size:7;index" json:"_color"`

	Source Node `gorm:"foreignKey:Sid;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Target Node `gorm:"foreignKey:Tid;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
