// file: internals/route/finance_routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bankinfoController "clubhub_backend/internals/features/finance/bankinfo/controller"
	feeplanController "clubhub_backend/internals/features/finance/feeplans/controller"
	paymentController "clubhub_backend/internals/features/finance/payments/controller"
	middlewares "clubhub_backend/internals/middlewares"
)

func FinanceRoutes(admin fiber.Router, db *gorm.DB) {
	plans := &feeplanController.FeePlanController{DB: db}
	banks := &bankinfoController.BankInformationController{DB: db}
	payments := &paymentController.PaymentController{DB: db}

	admin.Get("/fee-plans", plans.List)
	admin.Post("/fee-plans", plans.Create)
	admin.Patch("/fee-plans/:id", plans.Update)
	admin.Delete("/fee-plans/:id", plans.Delete)

	admin.Get("/bank-information", banks.List)
	admin.Post("/bank-information", banks.Create)
	admin.Patch("/bank-information/:id", banks.Update)
	admin.Delete("/bank-information/:id", banks.Delete)

	admin.Get("/payments", payments.List)
	admin.Get("/payments/:id", payments.GetByID)
	admin.Post("/payments", middlewares.UploadRateLimiter(), payments.Create)
	admin.Patch("/payments/:id", middlewares.UploadRateLimiter(), payments.Update)
	admin.Patch("/payments/:id/status", payments.UpdateStatus)
	admin.Delete("/payments/:id", payments.Delete)

	admin.Post("/payments/:id/attachment", middlewares.UploadRateLimiter(), payments.UploadAttachment)
	admin.Get("/payments/:id/attachment", payments.DownloadAttachment)
	admin.Delete("/payments/:id/attachment", payments.DeleteAttachment)

	admin.Get("/payments/:id/invoice", payments.Invoice)
	admin.Get("/payments/:id/invoice/download", payments.DownloadInvoice)
}
