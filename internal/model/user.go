package model

import (
	"time"
)

type UserRole string

const (
	Student     UserRole = "student"
	Teacher     UserRole = "teacher"
	SchoolAdmin UserRole = "school_admin"
	Superadmin  UserRole = "superadmin"
)

// StaffRoles are the roles allowed to manage content owned by students.
var StaffRoles = []UserRole{Teacher, SchoolAdmin, Superadmin}

func (r UserRole) IsStaff() bool {
	return r == Teacher || r == SchoolAdmin || r == Superadmin
}

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"size:20;default:'student'" json:"role"`
	SchoolID   *uint     `gorm:"index" json:"schoolId,omitempty"`
	GradeLevel int       `gorm:"default:0" json:"gradeLevel"` // 0 = not a student of a specific grade
	Language   string    `gorm:"size:10;default:'ar'" json:"language"`
	Avatar     string    `gorm:"size:255" json:"avatar"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}

// swagger:model School
type School struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Region  string `gorm:"size:100" json:"region"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Active  bool   `gorm:"default:true" json:"active"`
}

func (School) TableName() string {
	return "schools"
}
