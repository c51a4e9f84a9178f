package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/authz"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/payments/dto"
	"sekolahku_backend/internals/features/billing/payments/model"
	"sekolahku_backend/internals/features/billing/payments/service"
	helper "sekolahku_backend/internals/helpers"
)

// GatewayController: checkout Snap + webhook Midtrans.
type GatewayController struct {
	DB                *gorm.DB
	MidtransServerKey string
}

// -----------------------------------------
// Checkout (POST /payments/gateway/checkout)
// Guardian membuat pembayaran pending untuk invoice miliknya dan
// menerima token Snap untuk menyelesaikan di sisi klien.
// -----------------------------------------
func (h *GatewayController) Checkout(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.GatewayCheckoutDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var inv invoicemodel.InvoiceModel
	if err := h.DB.First(&inv, "invoice_id = ?", in.InvoiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionPay, authz.Resource{Kind: authz.ResInvoice, OwnerGuardianID: &inv.InvoiceGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh membayar invoice ini")
	}
	if inv.InvoiceStatus == invoicemodel.InvoiceStatusCancelled {
		return helper.JsonError(c, fiber.StatusConflict, "Invoice sudah dibatalkan")
	}
	remaining := inv.InvoiceTotalCents - inv.InvoicePaidCents
	if remaining <= 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Invoice sudah lunas")
	}

	orderID := "PAY-" + uuid.NewString()
	name, _ := c.Locals(helper.LocUserName).(string)
	email := h.userEmail(actor.UserID)

	token, err := service.GenerateSnapToken(orderID, remaining, name, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi gateway: "+err.Error())
	}

	p := model.PaymentModel{
		PaymentInvoiceID:      inv.InvoiceID,
		PaymentGuardianID:     inv.InvoiceGuardianID,
		PaymentAmountCents:    remaining,
		PaymentMethod:         model.PaymentMethodGateway,
		PaymentStatus:         model.PaymentStatusPending,
		PaymentGatewayOrderID: &orderID,
		PaymentGatewayToken:   &token,
	}
	if err := h.DB.Create(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "checkout dibuat", dto.GatewayCheckoutResponse{
		PaymentID: p.PaymentID,
		OrderID:   orderID,
		SnapToken: token,
	})
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, partial_refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

func (h *GatewayController) Webhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid: "+err.Error())
	}

	// SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + h.MidtransServerKey
	if want == "" || sha512sum(raw) != want {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var p model.PaymentModel
	if err := h.DB.First(&p, "payment_gateway_order_id = ?", notif.OrderID).Error; err != nil {
		// Balas 200 supaya Midtrans tidak retry terus untuk order yang tidak dikenal
		return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cur model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&cur, "payment_id = ?", p.PaymentID).Error; err != nil {
			return err
		}
		now := time.Now()
		cur.PaymentGatewayPayload = datatypes.JSONMap{
			"transaction_status": notif.TransactionStatus,
			"transaction_id":     notif.TransactionID,
			"payment_type":       notif.PaymentType,
			"fraud_status":       notif.FraudStatus,
			"gross_amount":       notif.GrossAmount,
			"settlement_time":    notif.SettlementTime,
		}

		switch notif.TransactionStatus {
		case "settlement", "capture":
			if notif.FraudStatus == "deny" {
				cur.PaymentStatus = model.PaymentStatusVoided
				break
			}
			// webhook bisa datang dua kali; konfirmasi hanya sekali
			if cur.PaymentStatus == model.PaymentStatusPending {
				cur.PaymentStatus = model.PaymentStatusConfirmed
				cur.PaymentPaidAt = &now
				if err := tx.Save(&cur).Error; err != nil {
					return err
				}
				if _, err := service.IssueReceipt(tx, cur, cur.PaymentGuardianID, now); err != nil {
					return err
				}
				_, err := service.Reconcile(tx, cur.PaymentInvoiceID, now)
				return err
			}
		case "deny", "cancel", "expire", "failure":
			if cur.PaymentStatus == model.PaymentStatusPending {
				cur.PaymentStatus = model.PaymentStatusVoided
			}
		}

		if err := tx.Save(&cur).Error; err != nil {
			return err
		}
		_, err := service.Reconcile(tx, cur.PaymentInvoiceID, now)
		return err
	})
	if txErr != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses notifikasi: "+txErr.Error())
	}

	return c.JSON(fiber.Map{
		"status":             "ok",
		"order_id":           notif.OrderID,
		"transaction_status": notif.TransactionStatus,
	})
}

func sha512sum(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (h *GatewayController) userEmail(userID uuid.UUID) string {
	var emails []string
	if err := h.DB.Table("users").
		Where("user_id = ?", userID).
		Limit(1).
		Pluck("user_email", &emails).Error; err != nil {
		log.Printf("[ERROR] gagal ambil email user %s: %v", userID, err)
	}
	if len(emails) == 0 {
		return ""
	}
	return emails[0]
}
