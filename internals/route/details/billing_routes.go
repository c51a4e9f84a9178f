package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	invoicecontroller "sekolahku_backend/internals/features/billing/invoices/controller"
	paymentcontroller "sekolahku_backend/internals/features/billing/payments/controller"
)

// BillingRoutes: invoice, pembayaran, refund, kwitansi, checkout Snap.
func BillingRoutes(api fiber.Router, db *gorm.DB) {
	invoiceCtrl := &invoicecontroller.InvoiceController{DB: db}
	paymentCtrl := &paymentcontroller.PaymentController{DB: db}
	gatewayCtrl := &paymentcontroller.GatewayController{DB: db, MidtransServerKey: configs.MidtransServerKey}

	billing := authz.RequireRoles("billing", constants.CashierAndAbove...)

	invoices := api.Group("/invoices")
	invoices.Get("/", invoiceCtrl.List)
	invoices.Get("/:id", invoiceCtrl.Detail)
	invoices.Post("/generate", billing, invoiceCtrl.Generate)
	invoices.Post("/:id/items", billing, invoiceCtrl.AddItem)
	invoices.Patch("/:id/items/:item_id", billing, invoiceCtrl.UpdateItem)
	invoices.Delete("/:id/items/:item_id", billing, invoiceCtrl.DeleteItem)
	invoices.Post("/:id/cancel", billing, invoiceCtrl.Cancel)
	invoices.Delete("/:id", billing, invoiceCtrl.Delete)

	payments := api.Group("/payments")
	payments.Get("/", paymentCtrl.List)
	payments.Post("/", billing, paymentCtrl.Create)
	payments.Post("/gateway/checkout", gatewayCtrl.Checkout)
	payments.Get("/:id", paymentCtrl.Detail)
	payments.Get("/:id/receipt", paymentCtrl.Receipt)
	payments.Post("/:id/void", billing, paymentCtrl.Void)
	payments.Post("/:id/refund", billing, paymentCtrl.Refund)
}

// BillingPublicRoutes: webhook gateway, diverifikasi lewat signature
// bukan JWT.
func BillingPublicRoutes(app *fiber.App, db *gorm.DB) {
	gatewayCtrl := &paymentcontroller.GatewayController{DB: db, MidtransServerKey: configs.MidtransServerKey}
	app.Post("/api/public/payments/midtrans/webhook", gatewayCtrl.Webhook)
}
