// Package complainthdl - handler HTTP cho domain complaint.
package complainthdl

import (
	"github.com/gofiber/fiber/v3"

	authmodels "github.com/Ujju04/smartjharkhand/internal/api/auth/models"
	basehdl "github.com/Ujju04/smartjharkhand/internal/api/base/handler"
	complaintdto "github.com/Ujju04/smartjharkhand/internal/api/complaint/dto"
	models "github.com/Ujju04/smartjharkhand/internal/api/complaint/models"
	complaintsvc "github.com/Ujju04/smartjharkhand/internal/api/complaint/service"
	"github.com/Ujju04/smartjharkhand/internal/api/middleware"
	"github.com/Ujju04/smartjharkhand/internal/common"
)

// ComplaintHandler xử lý các yêu cầu HTTP liên quan đến phản ánh
type ComplaintHandler struct {
	basehdl.BaseHandler
	complaintService *complaintsvc.ComplaintService
}

// NewComplaintHandler tạo mới ComplaintHandler
func NewComplaintHandler() (*ComplaintHandler, error) {
	service, err := complaintsvc.NewComplaintService()
	if err != nil {
		return nil, err
	}
	return &ComplaintHandler{complaintService: service}, nil
}

// workerFromLocals lấy worker đã xác thực do AuthMiddleware gắn vào context
func workerFromLocals(c fiber.Ctx) (*authmodels.AdminUser, error) {
	worker, ok := c.Locals(middleware.LocalWorker).(*authmodels.AdminUser)
	if !ok || worker == nil {
		return nil, common.ErrTokenInvalid
	}
	return worker, nil
}

// HandleList trả về danh sách phản ánh trong phạm vi của worker,
// hỗ trợ lọc theo status/priority/department và tìm kiếm
func (h *ComplaintHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		worker, err := workerFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		query := &complaintdto.ListQuery{
			Status:     c.Query("status"),
			Priority:   c.Query("priority"),
			Department: c.Query("department"),
			Search:     c.Query("search"),
		}
		if err := h.ValidateInput(query); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		result, err := h.complaintService.List(c.Context(), worker, query, page, limit)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGet trả về chi tiết một phản ánh theo mã nghiệp vụ
func (h *ComplaintHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		worker, err := workerFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaintID := h.GetIDFromContext(c)
		complaint, err := h.complaintService.GetByID(c.Context(), worker, complaintID)
		h.HandleResponse(c, complaint, err)
		return nil
	})
}

// HandleCreate tạo phản ánh mới thay mặt người dân (chỉ Main Admin)
func (h *ComplaintHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(complaintdto.CreateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaint, err := h.complaintService.Create(c.Context(), input)
		h.HandleResponse(c, complaint, err)
		return nil
	})
}

// HandleAssign giao phản ánh cho một nhân viên xử lý (chỉ Main Admin)
func (h *ComplaintHandler) HandleAssign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		complaintID := h.GetIDFromContext(c)
		input := new(complaintdto.AssignInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaint, err := h.complaintService.Assign(c.Context(), complaintID, input)
		h.HandleResponse(c, complaint, err)
		return nil
	})
}

// HandleTransfer chuyển phản ánh sang phòng ban khác (chỉ Main Admin)
func (h *ComplaintHandler) HandleTransfer(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		complaintID := h.GetIDFromContext(c)
		input := new(complaintdto.TransferInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaint, err := h.complaintService.Transfer(c.Context(), complaintID, input)
		h.HandleResponse(c, complaint, err)
		return nil
	})
}

// HandleUpdateStatus cập nhật tiến độ xử lý một phản ánh trong phạm vi của worker
func (h *ComplaintHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		worker, err := workerFromLocals(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaintID := h.GetIDFromContext(c)
		input := new(complaintdto.StatusUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		complaint, err := h.complaintService.UpdateStatus(c.Context(), worker, complaintID, input)
		h.HandleResponse(c, complaint, err)
		return nil
	})
}

// HandleAnalytics trả về số liệu tổng hợp cho dashboard (chỉ Main Admin)
func (h *ComplaintHandler) HandleAnalytics(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		analytics, err := h.complaintService.Analytics(c.Context())
		h.HandleResponse(c, analytics, err)
		return nil
	})
}

// HandleListDepartments trả về danh sách phòng ban hợp lệ
func (h *ComplaintHandler) HandleListDepartments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, models.Departments, nil)
		return nil
	})
}

// HandleListCategories trả về danh sách loại phản ánh hợp lệ
func (h *ComplaintHandler) HandleListCategories(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, models.Categories, nil)
		return nil
	})
}
