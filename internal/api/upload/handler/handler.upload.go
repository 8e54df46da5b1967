// Package uploadhdl - handler HTTP nhận file minh chứng qua multipart form.
package uploadhdl

import (
	"io"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Ujju04/smartjharkhand/internal/api/base/handler"
	uploadsvc "github.com/Ujju04/smartjharkhand/internal/api/upload/service"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// UploadHandler xử lý upload file minh chứng
type UploadHandler struct {
	basehdl.BaseHandler
	uploadService *uploadsvc.UploadService
}

// NewUploadHandler tạo mới UploadHandler
func NewUploadHandler() (*UploadHandler, error) {
	service, err := uploadsvc.NewUploadService()
	if err != nil {
		return nil, err
	}
	return &UploadHandler{uploadService: service}, nil
}

// HandleUpload nhận các file trong field "files" của multipart form,
// lưu xuống đĩa và trả về URL công khai của từng file.
// Một file không hợp lệ làm cả request thất bại, không lưu dở dang.
func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		form, err := c.MultipartForm()
		if err != nil {
			h.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationFormat, "Yêu cầu phải là multipart form", common.StatusBadRequest, nil))
			return nil
		}

		files := form.File["files"]
		if len(files) == 0 {
			h.HandleResponse(c, nil,
				common.NewError(common.ErrCodeValidationInput, "Thiếu file trong field files", common.StatusBadRequest, nil))
			return nil
		}

		// Kiểm tra toàn bộ trước khi ghi file nào xuống đĩa
		for _, fileHeader := range files {
			if !uploadsvc.IsAllowedContentType(fileHeader.Header.Get("Content-Type")) {
				h.HandleResponse(c, nil,
					common.NewError(common.ErrCodeValidationInput,
						"File "+fileHeader.Filename+" không phải ảnh hoặc video", common.StatusBadRequest, nil))
				return nil
			}
		}

		stored := make([]*uploadsvc.StoredFile, 0, len(files))
		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}

			result, err := h.uploadService.Store(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
			stored = append(stored, result)
		}

		h.HandleResponse(c, stored, nil)
		return nil
	})
}
