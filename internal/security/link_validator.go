package security

import (
	"fmt"
	"net/url"
)

// ValidateMeetingLink はミーティングURLの形式を検証する。
// http/httpsスキームとホスト名を持つ絶対URLのみ許可する。
// リンクは保存するだけでサーバーからアクセスはしない。
func ValidateMeetingLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("URLの解析に失敗しました: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("許可されていないスキームです: %s", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("ホスト名がありません")
	}
	return nil
}
