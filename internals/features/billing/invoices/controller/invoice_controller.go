package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/authz"
	"sekolahku_backend/internals/features/billing/counters"
	"sekolahku_backend/internals/features/billing/invoices/dto"
	"sekolahku_backend/internals/features/billing/invoices/model"
	"sekolahku_backend/internals/features/billing/invoices/service"
	enrollmodel "sekolahku_backend/internals/features/enrollment/admissions/model"
	helper "sekolahku_backend/internals/helpers"
)

type InvoiceController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /invoices) - guardian dibatasi miliknya
// -----------------------------------------
func (h *InvoiceController) List(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.InvoiceModel{})
	if !actor.IsStaff() {
		if actor.GuardianID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak punya profil guardian")
		}
		q = q.Where("invoice_guardian_id = ?", *actor.GuardianID)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("invoice_status = ?", v)
	}
	if v := c.Query("enrollment_id"); v != "" {
		q = q.Where("invoice_enrollment_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at": "invoice_created_at",
		"number":     "invoice_number",
		"status":     "invoice_status",
		"total":      "invoice_total_cents",
	}
	var list []model.InvoiceModel
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToInvoiceResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /invoices/:id) - item ikut dimuat, urut posisi
// -----------------------------------------
func (h *InvoiceController) Detail(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.InvoiceModel
	if err := h.DB.
		Preload("InvoiceItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_item_position ASC")
		}).
		First(&m, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "invoice tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResInvoice, OwnerGuardianID: &m.InvoiceGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat invoice ini")
	}
	return helper.JsonOK(c, "ok", dto.ToInvoiceResponse(m))
}

// -----------------------------------------
// Generate (POST /invoices/generate)
// Buat invoice dari snapshot biaya enrollment: satu baris per
// komponen tidak nol + baris diskon negatif.
// -----------------------------------------
func (h *InvoiceController) Generate(c *fiber.Ctx) error {
	var in dto.InvoiceGenerateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var e enrollmodel.EnrollmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, "enrollment_id = ?", in.InvoiceEnrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "enrollment tidak ditemukan")
			}
			return err
		}
		if e.EnrollmentInvoiceID != nil {
			return fiber.NewError(fiber.StatusConflict, "Enrollment sudah punya invoice")
		}
		if e.EnrollmentStatus == enrollmodel.EnrollmentStatusPending ||
			e.EnrollmentStatus == enrollmodel.EnrollmentStatusRejected {
			return fiber.NewError(fiber.StatusConflict, "Enrollment belum disetujui, invoice belum bisa dibuat")
		}

		now := time.Now()
		seq, err := counters.Next(tx, counters.ScopeInvoice, now.Year())
		if err != nil {
			return err
		}

		out = model.InvoiceModel{
			InvoiceEnrollmentID: e.EnrollmentID,
			InvoiceGuardianID:   e.EnrollmentGuardianID,
			InvoiceNumber:       service.NumberFor(now.Year(), seq),
			InvoiceStatus:       model.InvoiceStatusSent,
			InvoicePaidCents:    e.EnrollmentAmountPaidCents,
			InvoiceDueDate:      in.InvoiceDueDate,
			InvoiceIssuedAt:     &now,
			InvoiceItems:        service.ItemsFromEnrollment(e),
		}
		if out.InvoiceDueDate == nil {
			out.InvoiceDueDate = e.EnrollmentPaymentDueDate
		}
		service.RecalcTotal(&out, now)
		if err := tx.Create(&out).Error; err != nil {
			return err
		}

		e.EnrollmentInvoiceID = &out.InvoiceID
		return tx.Save(&e).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "invoice dibuat", dto.ToInvoiceResponse(out))
}

// -----------------------------------------
// AddItem (POST /invoices/:id/items)
// Edit item menjumlah ulang total dan re-derive status satu transaksi.
// -----------------------------------------
func (h *InvoiceController) AddItem(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.InvoiceItemCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.InvoiceItemDescription = strings.TrimSpace(in.InvoiceItemDescription)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoiceWithItems(tx, id)
		if err != nil {
			return err
		}
		if inv.InvoiceStatus == model.InvoiceStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah dibatalkan")
		}
		item := model.InvoiceItemModel{
			InvoiceItemInvoiceID:      inv.InvoiceID,
			InvoiceItemDescription:    in.InvoiceItemDescription,
			InvoiceItemQuantity:       in.InvoiceItemQuantity,
			InvoiceItemUnitPriceCents: in.InvoiceItemUnitPriceCents,
			InvoiceItemPosition:       len(inv.InvoiceItems),
		}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		inv.InvoiceItems = append(inv.InvoiceItems, item)
		return saveRecalced(tx, inv, &out)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "item ditambahkan", dto.ToInvoiceResponse(out))
}

// -----------------------------------------
// UpdateItem (PATCH /invoices/:id/items/:item_id)
// -----------------------------------------
func (h *InvoiceController) UpdateItem(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	itemID, err := helper.ParseUUIDParam(c, "item_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.InvoiceItemUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoiceWithItems(tx, id)
		if err != nil {
			return err
		}
		if inv.InvoiceStatus == model.InvoiceStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah dibatalkan")
		}
		found := false
		for i := range inv.InvoiceItems {
			it := &inv.InvoiceItems[i]
			if it.InvoiceItemID != itemID {
				continue
			}
			found = true
			if in.InvoiceItemDescription != nil {
				it.InvoiceItemDescription = strings.TrimSpace(*in.InvoiceItemDescription)
			}
			if in.InvoiceItemQuantity != nil {
				it.InvoiceItemQuantity = *in.InvoiceItemQuantity
			}
			if in.InvoiceItemUnitPriceCents != nil {
				it.InvoiceItemUnitPriceCents = *in.InvoiceItemUnitPriceCents
			}
			it.InvoiceItemAmountCents = it.InvoiceItemQuantity * it.InvoiceItemUnitPriceCents
			if err := tx.Save(it).Error; err != nil {
				return err
			}
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "item tidak ditemukan")
		}
		return saveRecalced(tx, inv, &out)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "item diperbarui", dto.ToInvoiceResponse(out))
}

// -----------------------------------------
// DeleteItem (DELETE /invoices/:id/items/:item_id)
// -----------------------------------------
func (h *InvoiceController) DeleteItem(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	itemID, err := helper.ParseUUIDParam(c, "item_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoiceWithItems(tx, id)
		if err != nil {
			return err
		}
		if inv.InvoiceStatus == model.InvoiceStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah dibatalkan")
		}
		kept := inv.InvoiceItems[:0]
		found := false
		for _, it := range inv.InvoiceItems {
			if it.InvoiceItemID == itemID {
				found = true
				if err := tx.Delete(&it).Error; err != nil {
					return err
				}
				continue
			}
			kept = append(kept, it)
		}
		if !found {
			return fiber.NewError(fiber.StatusNotFound, "item tidak ditemukan")
		}
		inv.InvoiceItems = kept
		return saveRecalced(tx, inv, &out)
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "item dihapus", dto.ToInvoiceResponse(out))
}

// -----------------------------------------
// Cancel (POST /invoices/:id/cancel)
// -----------------------------------------
func (h *InvoiceController) Cancel(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoiceWithItems(tx, id)
		if err != nil {
			return err
		}
		if inv.InvoicePaidCents > 0 {
			return fiber.NewError(fiber.StatusConflict, "Invoice sudah menerima pembayaran, tidak bisa dibatalkan")
		}
		inv.InvoiceStatus = model.InvoiceStatusCancelled
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		out = *inv
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "invoice dibatalkan", dto.ToInvoiceResponse(out))
}

// -----------------------------------------
// Delete (DELETE /invoices/:id)
// Invoice dengan pembayaran tidak boleh dihapus (409).
// -----------------------------------------
func (h *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out model.InvoiceModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		inv, err := lockInvoiceWithItems(tx, id)
		if err != nil {
			return err
		}
		var cnt int64
		if err := tx.Table("payments").
			Where("payment_invoice_id = ? AND payment_deleted_at IS NULL", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 || inv.InvoicePaidCents > 0 {
			return fiber.NewError(fiber.StatusConflict, "Invoice punya pembayaran, tidak bisa dihapus")
		}
		if err := tx.Table("enrollments").
			Where("enrollment_invoice_id = ?", id).
			Update("enrollment_invoice_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_item_invoice_id = ?", id).
			Delete(&model.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(inv).Error; err != nil {
			return err
		}
		out = *inv
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonDeleted(c, "invoice dihapus", dto.ToInvoiceResponse(out))
}

func lockInvoiceWithItems(tx *gorm.DB, id interface{}) (*model.InvoiceModel, error) {
	var inv model.InvoiceModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&inv, "invoice_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "invoice tidak ditemukan")
		}
		return nil, err
	}
	if err := tx.Where("invoice_item_invoice_id = ?", inv.InvoiceID).
		Order("invoice_item_position ASC").
		Find(&inv.InvoiceItems).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func saveRecalced(tx *gorm.DB, inv *model.InvoiceModel, out *model.InvoiceModel) error {
	service.RecalcTotal(inv, time.Now())
	if err := tx.Omit("InvoiceItems").Save(inv).Error; err != nil {
		return err
	}
	*out = *inv
	return nil
}
