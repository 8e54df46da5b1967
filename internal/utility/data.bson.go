// Package utility chứa các hàm tiện ích dùng chung.
package utility

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển struct/map bất kỳ sang map[string]interface{} thông qua BSON marshal,
// tôn trọng bson tags của model (omitempty, tên field).
func ToMap(s interface{}) (map[string]interface{}, error) {
	data, err := bson.Marshal(s)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}
