// Package model はドメインモデルを定義する。
package model

import "time"

// SprintDays は2週間スプリントの固定日数。
const SprintDays = 14

// ProjectStatus はプロジェクトの状態を表す。
type ProjectStatus string

const (
	// ProjectStatusActive は進行中のプロジェクト。
	ProjectStatusActive ProjectStatus = "ACTIVE"
	// ProjectStatusCompleted は完了したプロジェクト。
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
	// ProjectStatusPaused は一時停止中のプロジェクト。
	ProjectStatusPaused ProjectStatus = "PAUSED"
)

// Project はファウンダーが立ち上げた2週間スプリントのプロジェクトを表す。
// EndDateは作成時にStartDateの14日後に固定される。
type Project struct {
	ID                string
	Name              string
	Description       string
	PointA            string
	PointB            string
	Status            ProjectStatus
	OpenToTeamMembers bool
	StartDate         time.Time
	EndDate           time.Time
	FounderID         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DailyUpdate はプロジェクトの日次進捗報告を表す。
// Dayはスプリント内の日番号（1〜14）。
type DailyUpdate struct {
	ID            string
	ProjectID     string
	UserID        string
	Day           int
	Date          time.Time
	WantToDoToday string
	WhatDid       string
	Challenges    string
	NextSteps     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Comment はプロジェクトへのコメントを表す。
// Contentはトリム後に空でないことが保証される。
type Comment struct {
	ID        string
	Content   string
	ProjectID string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
