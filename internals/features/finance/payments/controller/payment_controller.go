// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bankinfoModel "clubhub_backend/internals/features/finance/bankinfo/model"
	feeplanModel "clubhub_backend/internals/features/finance/feeplans/model"
	"clubhub_backend/internals/features/finance/payments/dto"
	"clubhub_backend/internals/features/finance/payments/model"
	studentModel "clubhub_backend/internals/features/people/students/model"
	helper "clubhub_backend/internals/helpers"
	"clubhub_backend/internals/helpers/attachment"
	"clubhub_backend/internals/helpers/filterstate"
	helperOSS "clubhub_backend/internals/helpers/oss"
)

type PaymentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /payments)
// Filters: organization_id, club_id, student_id, status, method, currency,
// period (YYYY or YYYY-MM), search (notes)
// -----------------------------------------
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	f := filterstate.FromQuery(c.Queries())

	q := h.DB.Model(&model.Payment{})
	if f.OrganizationID != "" {
		if id, err := uuid.Parse(f.OrganizationID); err == nil {
			q = q.Where("payment_organization_id = ?", id)
		}
	}
	if f.ClubID != "" {
		if id, err := uuid.Parse(f.ClubID); err == nil {
			q = q.Where("payment_club_id = ?", id)
		}
	}
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		if id, err := uuid.Parse(sid); err == nil {
			q = q.Where("payment_student_id = ?", id)
		}
	}
	if f.Status != "" && !strings.EqualFold(f.Status, filterstate.All) {
		q = q.Where("payment_status = ?", strings.ToLower(f.Status))
	}
	if f.Method != "" && !strings.EqualFold(f.Method, filterstate.All) {
		q = q.Where("payment_method = ?", strings.ToLower(f.Method))
	}
	if f.Currency != "" && !strings.EqualFold(f.Currency, filterstate.All) {
		q = q.Where("payment_currency_code = ?", strings.ToUpper(f.Currency))
	}
	if start, end, ok := f.PeriodRange(); ok {
		q = q.Where("payment_created_at >= ? AND payment_created_at < ?", start, end)
	}
	if f.Search != "" {
		q = q.Where("payment_notes ILIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount",
		"paid_at":    "payment_paid_at",
		"status":     "payment_status",
	}
	var list []model.Payment
	if err := q.
		Preload("BankInformation").
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToPaymentResponses(list), helper.BuildMeta(total, p))
}

// GetByID (GET /payments/:id)
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "", dto.ToPaymentResponse(*m))
}

// -----------------------------------------
// Create (POST /payments) — multipart; amount and currency derive from the
// referenced plan assignment when the client omits them
// -----------------------------------------
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	form, _ := c.MultipartForm()
	req.BankInformationIDs = bankIDsFromForm(form)

	if strings.TrimSpace(req.StudentFeeID) != "" && (req.Amount == "" || req.CurrencyCode == "") {
		refs := h.feeRefs(req.StudentID)
		req.ApplyFeeDefaults(refs)
	}
	amount, ok := dto.ParseAmount(req.Amount)
	if !ok {
		return helper.JsonValidationError(c, map[string][]string{
			"amount": {"The amount field is required."},
		})
	}
	if strings.TrimSpace(req.CurrencyCode) == "" {
		return helper.JsonValidationError(c, map[string][]string{
			"currency_code": {"The currency code field is required."},
		})
	}

	m := req.ToModel()
	m.PaymentAmount = amount

	if err := h.applyAttachmentSlot(&m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return h.attachBanks(tx, &m, req.BankInformationIDs)
	}); err != nil {
		return err
	}

	return helper.JsonCreated(c, "payment created", dto.ToPaymentResponse(m))
}

// -----------------------------------------
// Update (PATCH /payments/:id)
// -----------------------------------------
func (h *PaymentController) Update(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}

	form, _ := c.MultipartForm()
	if form != nil {
		if _, ok := form.Value["bank_information[]"]; ok {
			req.BankInformationIDs = bankIDsFromForm(form)
		}
	}

	// a re-pointed assignment re-derives amount and currency
	if req.StudentFeeID != nil && strings.TrimSpace(*req.StudentFeeID) != "" {
		student := m.PaymentStudentID
		if req.StudentID != nil {
			student = req.StudentID
		}
		req.ApplyFeeDefaults(h.feeRefs(student))
	}

	dto.ApplyPaymentUpdate(m, req)

	if err := h.applyAttachmentSlot(m, form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if req.BankInformationIDs != nil {
			return h.attachBanks(tx, m, req.BankInformationIDs)
		}
		return nil
	}); err != nil {
		return err
	}

	return helper.JsonUpdated(c, "payment updated", dto.ToPaymentResponse(*m))
}

// UpdateStatus (PATCH /payments/:id/status)
func (h *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}

	var req dto.PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := helper.Validate(req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrorMap(err))
	}
	if !model.ValidPaymentStatus(req.Status) {
		return helper.JsonValidationError(c, map[string][]string{
			"status": {"The status field is invalid."},
		})
	}

	m.PaymentStatus = model.PaymentStatus(req.Status)
	switch m.PaymentStatus {
	case model.PaymentStatusPaid, model.PaymentStatusSuccessful:
		if m.PaymentPaidAt == nil {
			now := time.Now()
			m.PaymentPaidAt = &now
		}
	}

	if err := h.DB.Save(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "payment status updated", dto.ToPaymentResponse(*m))
}

// Delete (DELETE /payments/:id) — soft delete
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	m, err := h.find(c)
	if err != nil {
		return err
	}
	if err := h.DB.Delete(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "payment deleted", dto.ToPaymentResponse(*m))
}

// -----------------------------------------
// internals
// -----------------------------------------

func (h *PaymentController) find(c *fiber.Ctx) (*model.Payment, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}
	var m model.Payment
	if err := h.DB.Preload("BankInformation").First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "payment not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}

// feeRefs loads the student's plan assignments in resolver form, with the
// owning plan's currency alongside so the resolver can fall back to it.
func (h *PaymentController) feeRefs(studentID *uuid.UUID) []dto.FeeRef {
	if studentID == nil {
		return nil
	}
	var fees []studentModel.StudentFee
	if err := h.DB.
		Where("student_fee_student_id = ?", *studentID).
		Find(&fees).Error; err != nil {
		return nil
	}
	if len(fees) == 0 {
		return nil
	}

	planIDs := make([]uuid.UUID, 0, len(fees))
	seen := make(map[uuid.UUID]bool, len(fees))
	for _, fee := range fees {
		if !seen[fee.StudentFeeFeePlanID] {
			seen[fee.StudentFeeFeePlanID] = true
			planIDs = append(planIDs, fee.StudentFeeFeePlanID)
		}
	}
	var plans []feeplanModel.FeePlan
	_ = h.DB.Where("fee_plan_id IN ?", planIDs).Find(&plans).Error
	planCurrency := make(map[uuid.UUID]string, len(plans))
	for _, plan := range plans {
		planCurrency[plan.FeePlanID] = plan.FeePlanCurrencyCode
	}

	return buildFeeRefs(fees, planCurrency)
}

func buildFeeRefs(fees []studentModel.StudentFee, planCurrency map[uuid.UUID]string) []dto.FeeRef {
	refs := make([]dto.FeeRef, 0, len(fees))
	for _, fee := range fees {
		refs = append(refs, dto.FeeRef{
			StudentFeeID:     fee.StudentFeeID,
			EffectiveAmount:  fee.StudentFeeEffectiveAmount,
			CurrencyCode:     fee.StudentFeeCurrencyCode,
			PlanCurrencyCode: planCurrency[fee.StudentFeeFeePlanID],
		})
	}
	return refs
}

func bankIDsFromForm(form *multipart.Form) []int {
	if form == nil {
		return nil
	}
	vals := form.Value["bank_information[]"]
	if len(vals) == 0 {
		vals = form.Value["bank_information"]
	}
	if vals == nil {
		return nil
	}
	return dto.ParseIntList(vals)
}

// attachBanks replaces the payment's bank selections and refreshes the
// frozen snapshot.
func (h *PaymentController) attachBanks(tx *gorm.DB, m *model.Payment, ids []int) error {
	if ids == nil {
		return nil
	}
	var rows []bankinfoModel.BankInformation
	if len(ids) > 0 {
		if err := tx.
			Where("bank_information_id IN ?", ids).
			Where("bank_information_organization_id = ?", m.PaymentOrganizationID).
			Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}
	if err := tx.Model(m).Association("BankInformation").Replace(rows); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	m.BankInformation = rows

	snap, err := sonic.Marshal(rows)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	m.PaymentBankInfoSnapshot = snap
	return tx.Model(m).UpdateColumn("payment_bank_info_snapshot", snap).Error
}

// applyAttachmentSlot resolves the receipt slot (attachment /
// remove_attachment).
func (h *PaymentController) applyAttachmentSlot(m *model.Payment, form *multipart.Form) error {
	if form == nil {
		return nil
	}
	slot := attachment.FromMultipart(form, "attachment", "remove_attachment")
	switch slot.Action() {
	case attachment.ActionReplace:
		fh := slot.File()
		if fh.Size > helperOSS.MaxUploadSize {
			return errors.New("attachment exceeds the upload limit")
		}
		key := helperOSS.ObjectKey("payments/receipts", fh.Filename)
		if _, err := helperOSS.UploadMultipart(fh, key); err != nil {
			return errors.New("attachment upload failed: " + err.Error())
		}
		if m.PaymentAttachmentPath != nil {
			_ = helperOSS.DeleteObject(*m.PaymentAttachmentPath)
		}
		name := fh.Filename
		ctype := fh.Header.Get("Content-Type")
		size := fh.Size
		m.PaymentAttachmentPath = &key
		m.PaymentAttachmentName = &name
		m.PaymentAttachmentType = &ctype
		m.PaymentAttachmentSize = &size
	case attachment.ActionRemove:
		if m.PaymentAttachmentPath != nil {
			_ = helperOSS.DeleteObject(*m.PaymentAttachmentPath)
		}
		m.PaymentAttachmentPath = nil
		m.PaymentAttachmentName = nil
		m.PaymentAttachmentType = nil
		m.PaymentAttachmentSize = nil
	}
	return nil
}
