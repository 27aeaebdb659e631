package models

import "time"

// Project represents a portfolio project. Slug is unique and used in
// public URLs; the unique index is the real enforcement point for
// duplicate slugs.
type Project struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;type:varchar(255)" validate:"required,max=255"`
	Title           string     `json:"title" gorm:"type:varchar(255)" validate:"required,max=255"`
	Description     string     `json:"description" gorm:"type:text" validate:"required"`
	LongDescription string     `json:"longDescription" gorm:"type:text" validate:"required"`
	TechStack       StringList `json:"techStack" gorm:"type:text"`
	Category        string     `json:"category" gorm:"type:varchar(100)" validate:"required,max=100"`
	Featured        bool       `json:"featured"`
	ImageURL        *string    `json:"imageUrl,omitempty"`
	DemoURL         *string    `json:"demoUrl,omitempty"`
	RepoURL         *string    `json:"repoUrl,omitempty"`
	WhatBroke       *string    `json:"whatBroke,omitempty" gorm:"type:text"`
	Screenshots     StringList `json:"screenshots" gorm:"type:text"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
