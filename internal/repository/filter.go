package repository

import "strings"

// contains 构造大小写不敏感的子串 LIKE 参数
func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
