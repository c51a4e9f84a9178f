package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/authz"
	invoicemodel "sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/payments/dto"
	"sekolahku_backend/internals/features/billing/payments/model"
	"sekolahku_backend/internals/features/billing/payments/service"
	helper "sekolahku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /payments) - guardian dibatasi miliknya
// -----------------------------------------
func (h *PaymentController) List(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.PaymentModel{})
	if !actor.IsStaff() {
		if actor.GuardianID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak punya profil guardian")
		}
		q = q.Where("payment_guardian_id = ?", *actor.GuardianID)
	}
	if v := c.Query("invoice_id"); v != "" {
		q = q.Where("payment_invoice_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("payment_status = ?", v)
	}
	if v := c.Query("method"); v != "" {
		q = q.Where("payment_method = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "payment_created_at",
		"amount":     "payment_amount_cents",
		"status":     "payment_status",
	}
	var list []model.PaymentModel
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToPaymentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /payments/:id)
// -----------------------------------------
func (h *PaymentController) Detail(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.PaymentModel
	if err := h.DB.First(&m, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResPayment, OwnerGuardianID: &m.PaymentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat pembayaran ini")
	}
	return helper.JsonOK(c, "ok", dto.ToPaymentResponse(m))
}

// -----------------------------------------
// Create (POST /payments) - cashier/registrar catat pembayaran manual.
// Idempotency key yang sama mengembalikan pembayaran yang sudah ada,
// tidak dicatat dua kali.
// -----------------------------------------
func (h *PaymentController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !authz.Can(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResPayment}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya izin mencatat pembayaran")
	}

	var in dto.PaymentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	// submit ganda dengan kunci yang sama -> balas baris lama
	if in.PaymentIdempotencyKey != nil {
		key := strings.TrimSpace(*in.PaymentIdempotencyKey)
		if key != "" {
			var existing model.PaymentModel
			err := h.DB.First(&existing, "payment_idempotency_key = ?", key).Error
			if err == nil {
				return helper.JsonOK(c, "pembayaran sudah tercatat", dto.ToPaymentResponse(existing))
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
			in.PaymentIdempotencyKey = &key
		} else {
			in.PaymentIdempotencyKey = nil
		}
	}

	var out model.PaymentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var inv invoicemodel.InvoiceModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&inv, "invoice_id = ?", in.PaymentInvoiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "invoice tidak ditemukan")
			}
			return err
		}
		if inv.InvoiceStatus == invoicemodel.InvoiceStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah dibatalkan")
		}

		now := time.Now()
		out = model.PaymentModel{
			PaymentInvoiceID:      inv.InvoiceID,
			PaymentGuardianID:     inv.InvoiceGuardianID,
			PaymentAmountCents:    in.PaymentAmountCents,
			PaymentMethod:         in.PaymentMethod,
			PaymentStatus:         model.PaymentStatusConfirmed,
			PaymentIdempotencyKey: in.PaymentIdempotencyKey,
			PaymentProcessedBy:    &actor.UserID,
			PaymentPaidAt:         &now,
			PaymentNotes:          in.PaymentNotes,
		}
		if err := tx.Create(&out).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Pembayaran dengan kunci ini sudah tercatat")
			}
			return err
		}
		if _, err := service.IssueReceipt(tx, out, actor.UserID, now); err != nil {
			return err
		}
		_, err := service.Reconcile(tx, inv.InvoiceID, now)
		return err
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "pembayaran tercatat", dto.ToPaymentResponse(out))
}

// -----------------------------------------
// Void (POST /payments/:id/void)
// paid_cents dihitung ulang dari pembayaran yang tersisa; status
// invoice boleh mundur (paid -> partially_paid -> sent).
// -----------------------------------------
func (h *PaymentController) Void(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !authz.Can(actor, authz.ActionDelete, authz.Resource{Kind: authz.ResPayment}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya izin membatalkan pembayaran")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out model.PaymentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var p model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "payment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "pembayaran tidak ditemukan")
			}
			return err
		}
		if p.PaymentStatus == model.PaymentStatusVoided {
			return fiber.NewError(fiber.StatusConflict, "Pembayaran sudah void")
		}
		if p.PaymentRefundedCents > 0 {
			return fiber.NewError(fiber.StatusConflict, "Pembayaran dengan refund tidak bisa di-void")
		}
		p.PaymentStatus = model.PaymentStatusVoided
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		if _, err := service.Reconcile(tx, p.PaymentInvoiceID, time.Now()); err != nil {
			return err
		}
		out = p
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "pembayaran di-void", dto.ToPaymentResponse(out))
}

// -----------------------------------------
// Refund (POST /payments/:id/refund)
// Dibatasi sisa pembayaran asal; tercatat sebagai baris terpisah.
// -----------------------------------------
func (h *PaymentController) Refund(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !authz.Can(actor, authz.ActionRefund, authz.Resource{Kind: authz.ResPayment}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak punya izin refund")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.PaymentRefundDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.PaymentRefundModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var p model.PaymentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, "payment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "pembayaran tidak ditemukan")
			}
			return err
		}
		if err := service.ApplyRefund(&p, in.Amount); err != nil {
			return err
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		out = model.PaymentRefundModel{
			PaymentRefundPaymentID:   p.PaymentID,
			PaymentRefundAmountCents: in.Amount,
			PaymentRefundReason:      in.Reason,
			PaymentRefundRefundedBy:  actor.UserID,
		}
		if err := tx.Create(&out).Error; err != nil {
			return err
		}
		_, err := service.Reconcile(tx, p.PaymentInvoiceID, time.Now())
		return err
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "refund tercatat", dto.ToPaymentRefundResponse(out))
}

// -----------------------------------------
// Receipts (GET /payments/:id/receipt)
// -----------------------------------------
func (h *PaymentController) Receipt(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var p model.PaymentModel
	if err := h.DB.First(&p, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResReceipt, OwnerGuardianID: &p.PaymentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat kwitansi ini")
	}

	var r model.ReceiptModel
	if err := h.DB.First(&r, "receipt_payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "kwitansi belum terbit untuk pembayaran ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.ToReceiptResponse(r))
}
