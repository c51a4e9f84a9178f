package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/authz"
	feemodel "sekolahku_backend/internals/features/academics/fees/model"
	yearmodel "sekolahku_backend/internals/features/academics/years/model"
	"sekolahku_backend/internals/features/enrollment/admissions/dto"
	"sekolahku_backend/internals/features/enrollment/admissions/model"
	"sekolahku_backend/internals/features/enrollment/admissions/service"
	studentmodel "sekolahku_backend/internals/features/users/families/model"
	helper "sekolahku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

// -----------------------------------------
// List (GET /enrollments)
// Guardian otomatis dibatasi ke miliknya sendiri.
// -----------------------------------------
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := h.DB.Model(&model.EnrollmentModel{})
	if !actor.IsStaff() {
		if actor.GuardianID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun tidak punya profil guardian")
		}
		q = q.Where("enrollment_guardian_id = ?", *actor.GuardianID)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}
	if v := c.Query("payment_status"); v != "" {
		q = q.Where("enrollment_payment_status = ?", v)
	}
	if v := c.Query("period_id"); v != "" {
		q = q.Where("enrollment_period_id = ?", v)
	}
	if v := c.Query("school_year_id"); v != "" {
		q = q.Where("enrollment_school_year_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowed := map[string]string{
		"created_at":  "enrollment_created_at",
		"status":      "enrollment_status",
		"grade_level": "enrollment_grade_level",
		"balance":     "enrollment_balance_cents",
	}
	var list []model.EnrollmentModel
	if err := q.
		Order(p.OrderClause(allowed, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonList(c, "ok", dto.ToEnrollmentResponses(list), helper.BuildMeta(total, p))
}

// -----------------------------------------
// Detail (GET /enrollments/:id)
// -----------------------------------------
func (h *EnrollmentController) Detail(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.EnrollmentModel
	if err := h.DB.First(&m, "enrollment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "enrollment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !authz.Can(actor, authz.ActionRead, authz.Resource{Kind: authz.ResEnrollment, OwnerGuardianID: &m.EnrollmentGuardianID}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Tidak boleh melihat enrollment ini")
	}
	return helper.JsonOK(c, "ok", dto.ToEnrollmentResponse(m))
}

// -----------------------------------------
// Create (POST /enrollments) - guardian mendaftarkan anaknya.
// Snapshot biaya diambil dari tarif yang cocok saat submit.
// -----------------------------------------
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if !authz.Can(actor, authz.ActionCreate, authz.Resource{Kind: authz.ResEnrollment}) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya guardian yang bisa mendaftarkan siswa")
	}
	guardianID, err := helper.GetGuardianIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.EnrollmentCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	in.EnrollmentGradeLevel = strings.TrimSpace(in.EnrollmentGradeLevel)
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.EnrollmentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// siswa harus milik guardian yang login
		var st studentmodel.StudentModel
		if err := tx.First(&st, "student_id = ?", in.EnrollmentStudentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "siswa tidak ditemukan")
			}
			return err
		}
		if st.StudentGuardianID != guardianID {
			return fiber.NewError(fiber.StatusForbidden, "Siswa bukan tanggungan Anda")
		}

		// periode harus open, jendela mencakup hari ini, grade dibuka
		var period yearmodel.EnrollmentPeriodModel
		if err := tx.First(&period, "enrollment_period_id = ?", in.EnrollmentPeriodID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "periode penerimaan tidak ditemukan")
			}
			return err
		}
		today := time.Now().UTC().Truncate(24 * time.Hour)
		if !period.EnrollmentPeriodIsOpen ||
			today.Before(period.EnrollmentPeriodStartsOn) ||
			today.After(period.EnrollmentPeriodEndsOn) {
			return fiber.NewError(fiber.StatusConflict, "Periode penerimaan tidak sedang dibuka")
		}
		if !period.AcceptsGrade(in.EnrollmentGradeLevel) {
			return fiber.NewError(fiber.StatusConflict, "Grade level tidak dibuka pada periode ini")
		}

		// satu siswa satu pendaftaran aktif per periode
		var dup int64
		if err := tx.Model(&model.EnrollmentModel{}).
			Where("enrollment_student_id = ? AND enrollment_period_id = ? AND enrollment_status <> ?",
				in.EnrollmentStudentID, in.EnrollmentPeriodID, model.EnrollmentStatusRejected).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return fiber.NewError(fiber.StatusConflict, "Siswa sudah terdaftar di periode ini")
		}

		var fee feemodel.GradeLevelFeeModel
		if err := tx.First(&fee,
			"grade_level_fee_grade_level = ? AND grade_level_fee_enrollment_period_id = ? AND grade_level_fee_payment_terms = ?",
			in.EnrollmentGradeLevel, in.EnrollmentPeriodID, in.EnrollmentPaymentTerms).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusConflict, "Tarif untuk grade/skema ini belum tersedia")
			}
			return err
		}

		out = model.EnrollmentModel{
			EnrollmentStudentID:      in.EnrollmentStudentID,
			EnrollmentGuardianID:     guardianID,
			EnrollmentSchoolYearID:   period.EnrollmentPeriodSchoolYearID,
			EnrollmentPeriodID:       in.EnrollmentPeriodID,
			EnrollmentGradeLevel:     in.EnrollmentGradeLevel,
			EnrollmentPaymentTerms:   in.EnrollmentPaymentTerms,
			EnrollmentStatus:         model.EnrollmentStatusPending,
			EnrollmentDiscountCents:  in.EnrollmentDiscountCents,
			EnrollmentPaymentDueDate: in.EnrollmentPaymentDueDate,
		}
		service.SeedFees(&out, fee)
		return tx.Create(&out).Error
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonCreated(c, "pendaftaran diterima, menunggu verifikasi registrar", dto.ToEnrollmentResponse(out))
}

// -----------------------------------------
// Approve (POST /enrollments/:id/approve) - registrar
// -----------------------------------------
func (h *EnrollmentController) Approve(c *fiber.Ctx) error {
	return h.transition(c, authz.ActionApprove, func(e *model.EnrollmentModel, actor authz.Actor) error {
		return service.Approve(e, actor.UserID, time.Now())
	})
}

// -----------------------------------------
// Reject (POST /enrollments/:id/reject) - registrar
// -----------------------------------------
func (h *EnrollmentController) Reject(c *fiber.Ctx) error {
	var in dto.EnrollmentRejectDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	return h.transition(c, authz.ActionReject, func(e *model.EnrollmentModel, actor authz.Actor) error {
		return service.Reject(e, actor.UserID, in.Reason, time.Now())
	})
}

// -----------------------------------------
// RequestInfo (POST /enrollments/:id/request-info) - registrar
// -----------------------------------------
func (h *EnrollmentController) RequestInfo(c *fiber.Ctx) error {
	var in dto.EnrollmentInfoRequestDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}
	return h.transition(c, authz.ActionUpdate, func(e *model.EnrollmentModel, actor authz.Actor) error {
		return service.RequestInfo(e, actor.UserID, in.Message, time.Now())
	})
}

// -----------------------------------------
// ReplyInfo (POST /enrollments/:id/reply-info) - guardian pemilik
// -----------------------------------------
func (h *EnrollmentController) ReplyInfo(c *fiber.Ctx) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var in dto.EnrollmentInfoReplyDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var out model.EnrollmentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var e model.EnrollmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, "enrollment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "enrollment tidak ditemukan")
			}
			return err
		}
		if !authz.Can(actor, authz.ActionUpdate, authz.Resource{Kind: authz.ResEnrollment, OwnerGuardianID: &e.EnrollmentGuardianID}) {
			return fiber.NewError(fiber.StatusForbidden, "Tidak boleh membalas enrollment ini")
		}
		if err := service.ReplyInfo(&e, in.Reply, time.Now()); err != nil {
			return err
		}
		if err := tx.Save(&e).Error; err != nil {
			return err
		}
		out = e
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "balasan terkirim", dto.ToEnrollmentResponse(out))
}

// -----------------------------------------
// Complete (POST /enrollments/:id/complete) - registrar
// -----------------------------------------
func (h *EnrollmentController) Complete(c *fiber.Ctx) error {
	return h.transition(c, authz.ActionComplete, func(e *model.EnrollmentModel, _ authz.Actor) error {
		return service.Complete(e)
	})
}

// -----------------------------------------
// MarkEnrolled (POST /enrollments/:id/mark-enrolled) - registrar,
// untuk pembayaran yang dikonfirmasi di luar modul billing.
// -----------------------------------------
func (h *EnrollmentController) MarkEnrolled(c *fiber.Ctx) error {
	return h.transition(c, authz.ActionApprove, func(e *model.EnrollmentModel, _ authz.Actor) error {
		return service.MarkEnrolled(e)
	})
}

// transition: pola umum aksi registrar. Baris dikunci FOR UPDATE di
// dalam transaksi supaya submit ganda tidak double-apply; transisi yang
// tidak sah keluar sebagai 409 tanpa perubahan state.
func (h *EnrollmentController) transition(
	c *fiber.Ctx,
	action authz.Action,
	apply func(*model.EnrollmentModel, authz.Actor) error,
) error {
	actor, err := authz.ActorFromCtx(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var out model.EnrollmentModel
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var e model.EnrollmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&e, "enrollment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "enrollment tidak ditemukan")
			}
			return err
		}
		if !authz.Can(actor, action, authz.Resource{Kind: authz.ResEnrollment, OwnerGuardianID: &e.EnrollmentGuardianID}) {
			return fiber.NewError(fiber.StatusForbidden, "Tidak punya izin untuk aksi ini")
		}
		if err := apply(&e, actor); err != nil {
			return err
		}
		service.RecalcTotals(&e, time.Now())
		if err := tx.Save(&e).Error; err != nil {
			return err
		}
		out = e
		return nil
	})
	if txErr != nil {
		return helper.FromFiberError(c, txErr)
	}
	return helper.JsonUpdated(c, "enrollment diperbarui", dto.ToEnrollmentResponse(out))
}
