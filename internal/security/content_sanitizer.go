package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizer はユーザー入力テキストからHTMLを除去するサニタイザー。
// コメント、デイリーアップデート、プロフィールの自己紹介など、
// プレーンテキストとして保存すべきフィールドに適用する。
type ContentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer はStrictPolicyベースのサニタイザーを生成する。
// タグはすべて除去し、テキストのみを残す。
func NewContentSanitizer() *ContentSanitizer {
	return &ContentSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// SanitizeText はテキストからHTMLタグを除去し、エンティティを復元する。
// bluemondayはエスケープ済みの形で返すため、保存時はUnescapeして
// プレーンテキストに戻す。前後の空白は削除する。
func (s *ContentSanitizer) SanitizeText(text string) string {
	sanitized := s.policy.Sanitize(text)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}
