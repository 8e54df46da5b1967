// Package models - model người dân (Citizen) gửi phản ánh.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Citizen định nghĩa mô hình người dân.
// CitizenID là mã tuần tự sinh từ counter (USER001, ...), phản ánh tham chiếu qua userId.
type Citizen struct {
	ID                 primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	CitizenID          string             `json:"id" bson:"id" index:"unique"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email" index:"unique"`
	Phone              string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address            string             `json:"address,omitempty" bson:"address,omitempty"`
	TotalComplaints    int64              `json:"totalComplaints" bson:"totalComplaints"`
	ResolvedComplaints int64              `json:"resolvedComplaints" bson:"resolvedComplaints"`
	JoinedDate         string             `json:"joinedDate" bson:"joinedDate"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}
