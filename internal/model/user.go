// Package model はドメインモデルを定義する。
package model

import "time"

// UserRole はユーザーの役割を表す。
// 登録時に一度選択した役割は変更できない。
type UserRole string

const (
	// RoleFounder はプロジェクトを立ち上げるファウンダー。
	RoleFounder UserRole = "FOUNDER"
	// RoleExpert はメンタリングを提供するエキスパート。
	RoleExpert UserRole = "EXPERT"
	// RoleTeamMember はプロジェクトに参加するチームメンバー。
	RoleTeamMember UserRole = "TEAM_MEMBER"
)

// ValidUserRole は文字列が定義済みの役割かどうかを返す。
func ValidUserRole(s string) bool {
	switch UserRole(s) {
	case RoleFounder, RoleExpert, RoleTeamMember:
		return true
	}
	return false
}

// User はサービス利用ユーザーを表す。
// IDは外部IDサービスが発行した認証サブジェクトIDと一致する。
type User struct {
	ID         string
	Email      string
	Name       string
	Role       UserRole
	Bio        string
	Skills     []string
	OpenToTeam bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
