// Package citizenhdl - handler HTTP cho danh bạ người dân.
package citizenhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "github.com/Ujju04/smartjharkhand/internal/api/base/handler"
	citizendto "github.com/Ujju04/smartjharkhand/internal/api/citizen/dto"
	citizensvc "github.com/Ujju04/smartjharkhand/internal/api/citizen/service"
)

// CitizenHandler xử lý các yêu cầu HTTP trên danh bạ người dân
type CitizenHandler struct {
	basehdl.BaseHandler
	citizenService *citizensvc.CitizenService
}

// NewCitizenHandler tạo mới CitizenHandler
func NewCitizenHandler() (*CitizenHandler, error) {
	service, err := citizensvc.NewCitizenService()
	if err != nil {
		return nil, err
	}
	return &CitizenHandler{citizenService: service}, nil
}

// HandleList trả về danh bạ người dân, hỗ trợ tìm kiếm theo tên/email/mã
func (h *CitizenHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		query := &citizendto.ListQuery{Search: c.Query("search")}
		if err := h.ValidateInput(query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.citizenService.List(c.Context(), query, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet trả về một người dân theo mã nghiệp vụ
func (h *CitizenHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		citizen, err := h.citizenService.GetByID(c.Context(), h.GetIDFromContext(c))
		h.HandleResponse(c, citizen, err)
		return nil
	})
}

// HandleCreate đăng ký người dân mới vào danh bạ
func (h *CitizenHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(citizendto.CreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		citizen, err := h.citizenService.Create(c.Context(), input)
		h.HandleResponse(c, citizen, err)
		return nil
	})
}
