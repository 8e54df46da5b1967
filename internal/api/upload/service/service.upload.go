// Package uploadsvc lưu ảnh/video minh chứng xử lý phản ánh xuống đĩa.
package uploadsvc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Ujju04/smartjharkhand/internal/common"
	"github.com/Ujju04/smartjharkhand/internal/global"
	"github.com/Ujju04/smartjharkhand/internal/logger"
)

// StoredFile là kết quả lưu một file minh chứng
type StoredFile struct {
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

// UploadService lưu file minh chứng vào thư mục cấu hình
type UploadService struct {
	dir string
}

// NewUploadService tạo mới UploadService, đảm bảo thư mục upload tồn tại
func NewUploadService() (*UploadService, error) {
	dir := global.ServerConfig.UploadDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &UploadService{dir: dir}, nil
}

// IsAllowedContentType kiểm tra file minh chứng phải là ảnh hoặc video
func IsAllowedContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}

// Store lưu một file minh chứng với tên ngẫu nhiên giữ nguyên phần mở rộng,
// trả về URL công khai dạng /uploads/{tên file}.
func (s *UploadService) Store(originalName string, contentType string, data []byte) (*StoredFile, error) {
	if !IsAllowedContentType(contentType) {
		return nil, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("File %s không phải ảnh hoặc video", originalName),
			common.StatusBadRequest, nil)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.WithModule("upload").WithError(err).Error("Không ghi được file minh chứng " + originalName)
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}

	return &StoredFile{
		OriginalName: originalName,
		URL:          "/uploads/" + name,
		Size:         int64(len(data)),
		ContentType:  contentType,
	}, nil
}
