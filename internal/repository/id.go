package repository

import "github.com/google/uuid"

// newID 时间有序的 v7 uuid：同一毫秒内的记录按生成顺序可比较，
// 列表用 created_at + id 排序时并列项保持插入顺序
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
