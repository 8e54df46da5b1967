// Package models - model bộ đếm sinh mã tuần tự.
package models

// Counter lưu giá trị sequence hiện tại cho một collection.
// _id là tên collection (users, complaints, admin_users).
type Counter struct {
	Name     string `json:"name" bson:"_id"`
	Sequence int64  `json:"sequence" bson:"sequence"`
}
