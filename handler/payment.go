package handler

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"resort_booking/constants"
	"resort_booking/database"
	"resort_booking/helper"
	"resort_booking/model"
	"resort_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gateway signs hosted-checkout URLs and verifies callbacks. The checkout page
// itself is external; this side only agrees on the HMAC.
type Gateway struct {
	MerchantId string
	HashSecret string
	BaseURL    string
	ReturnURL  string
	IPNURL     string
}

func NewGateway() *Gateway {
	return &Gateway{
		MerchantId: os.Getenv("PAY_MERCHANT_ID"),
		HashSecret: os.Getenv("PAY_HASH_SECRET"),
		BaseURL:    os.Getenv("PAY_URL"),
		ReturnURL:  os.Getenv("APP_URL") + "/api/v1/payments/return",
		IPNURL:     os.Getenv("APP_URL") + "/api/v1/payments/ipn",
	}
}

func (g *Gateway) BuildPaymentUrl(req model.PaymentRequest) (string, error) {
	params := url.Values{}
	params.Add("pay_Version", "1.0")
	params.Add("pay_MerchantId", g.MerchantId)
	params.Add("pay_Amount", strconv.FormatInt(int64(req.Amount*100), 10)) // minor units
	params.Add("pay_Currency", req.Currency)
	params.Add("pay_CreateDate", time.Now().Format("20060102150405"))
	params.Add("pay_ExpireDate", time.Now().Add(15*time.Minute).Format("20060102150405"))
	params.Add("pay_IpAddr", req.IPAddr)
	params.Add("pay_OrderInfo", req.OrderInfo)
	params.Add("pay_ReturnUrl", g.ReturnURL)
	params.Add("pay_TxnRef", req.TxnRef)

	query := params.Encode()
	hash := g.generateHash(query)
	return g.BaseURL + "?" + query + "&pay_SecureHash=" + hash, nil
}

func (g *Gateway) VerifyCallback(query url.Values) model.PaymentResult {
	secureHash := query.Get("pay_SecureHash")
	query.Del("pay_SecureHash")

	if secureHash != g.generateHash(query.Encode()) {
		return model.PaymentResult{IsSuccess: false, Message: "Invalid hash"}
	}
	if query.Get("pay_ResponseCode") == "00" {
		return model.PaymentResult{IsSuccess: true, TxnRef: query.Get("pay_TxnRef")}
	}
	return model.PaymentResult{IsSuccess: false, TxnRef: query.Get("pay_TxnRef"), Message: "Payment declined"}
}

func (g *Gateway) generateHash(data string) string {
	h := hmac.New(sha512.New, []byte(g.HashSecret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// CreatePayment opens a payment attempt for a pending booking and returns the
// signed checkout URL.
func CreatePayment(c *fiber.Ctx) error {
	input := new(model.CreatePaymentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.BookingId == 0 || input.Method == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("bookingId and method are required"))
	}
	db := database.DB

	accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var booking model.Booking
	if err := db.First(&booking, input.BookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if booking.AccountId != accountInfo.AccountId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, helper.ErrForbidden)
	}
	if booking.Status != model.BookingPending || booking.PaymentStatus == model.PaymentCompleted {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Booking is not awaiting payment", errors.New("status "+booking.Status))
	}
	if booking.Total <= 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Nothing to pay", errors.New("non-positive total"))
	}

	payment := model.Payment{
		BookingId:   booking.ID,
		Amount:      booking.Total,
		Currency:    booking.Currency,
		Method:      input.Method,
		Status:      model.PaymentProcessing,
		PaymentCode: uuid.NewString(),
	}
	if err := db.Create(&payment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Model(&model.Booking{}).Where("id = ?", booking.ID).Update("payment_status", model.PaymentProcessing)

	gateway := NewGateway()
	paymentUrl, err := gateway.BuildPaymentUrl(model.PaymentRequest{
		Amount:    booking.Total,
		Currency:  booking.Currency,
		OrderInfo: fmt.Sprintf("Booking %s", booking.BookingNumber),
		TxnRef:    payment.PaymentCode,
		IPAddr:    c.IP(),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"paymentCode": payment.PaymentCode,
		"paymentUrl":  paymentUrl,
	})
}

// PaymentReturn handles the browser redirect back from the gateway.
func PaymentReturn(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	gateway := NewGateway()
	result := gateway.VerifyCallback(query)
	if err := settlePayment(result); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if result.IsSuccess {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"paid": true, "txnRef": result.TxnRef})
	}
	return utils.ErrorResponse(c, fiber.StatusPaymentRequired, "Payment failed", fmt.Errorf("%w: %s", helper.ErrPaymentFailed, result.Message))
}

// PaymentIPN is the server-to-server confirmation; it is the authoritative one.
func PaymentIPN(c *fiber.Ctx) error {
	query, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return c.JSON(fiber.Map{"RspCode": "99", "Message": "Invalid request"})
	}

	gateway := NewGateway()
	result := gateway.VerifyCallback(query)
	if err := settlePayment(result); err != nil {
		return c.JSON(fiber.Map{"RspCode": "99", "Message": "Update failed"})
	}

	if result.IsSuccess {
		return c.JSON(fiber.Map{"RspCode": "00", "Message": "Confirm success"})
	}
	return c.JSON(fiber.Map{"RspCode": "24", "Message": "Payment failed"})
}

// settlePayment records the gateway verdict. Success confirms the booking; a
// failed attempt leaves it PENDING so the guest can retry until the sweeper
// expires it.
func settlePayment(result model.PaymentResult) error {
	db := database.DB
	if result.TxnRef == "" {
		return nil
	}

	var payment model.Payment
	if err := db.Where("payment_code = ?", result.TxnRef).First(&payment).Error; err != nil {
		return err
	}
	if payment.Status == model.PaymentCompleted {
		// Duplicate callback, already settled.
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if result.IsSuccess {
			now := time.Now()
			if err := tx.Model(&model.Payment{}).Where("id = ?", payment.ID).Updates(map[string]any{
				"status":      model.PaymentCompleted,
				"gateway_ref": result.TxnRef,
				"paid_at":     now,
			}).Error; err != nil {
				return err
			}
			return tx.Model(&model.Booking{}).Where("id = ?", payment.BookingId).Updates(map[string]any{
				"status":         model.BookingConfirmed,
				"payment_status": model.PaymentCompleted,
			}).Error
		}

		if err := tx.Model(&model.Payment{}).Where("id = ?", payment.ID).
			Update("status", model.PaymentFailed).Error; err != nil {
			return err
		}
		return tx.Model(&model.Booking{}).Where("id = ?", payment.BookingId).
			Update("payment_status", model.PaymentPending).Error
	})
}

// ConfirmPayment settles a payment by hand, for bank transfers that never hit
// the gateway. Admin only.
func ConfirmPayment(c *fiber.Ctx) error {
	input := new(model.ConfirmPaymentInput)
	if err := c.BodyParser(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if input.PaymentCode == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("paymentCode is required"))
	}

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("admin only"))
	}

	if err := settlePayment(model.PaymentResult{IsSuccess: true, TxnRef: input.PaymentCode}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"paymentCode": input.PaymentCode, "status": model.PaymentCompleted})
}

// GetBookingPayments lists payment attempts of a booking for its owner.
func GetBookingPayments(c *fiber.Ctx) error {
	bookingId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	db := database.DB

	accountInfo, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return nil
	}

	var booking model.Booking
	if err := db.First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	if booking.AccountId != accountInfo.AccountId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_PERMISSION, helper.ErrForbidden)
	}

	var payments []model.Payment
	if err := db.Where("booking_id = ?", bookingId).Order("created_at desc").Find(&payments).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, payments)
}
