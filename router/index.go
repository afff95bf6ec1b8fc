package router

import (
	"resort_booking/handler"
	"resort_booking/middleware"
	"resort_booking/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	hotel := v1.Group("/hotels", logger.New())
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/managed", middleware.Protected(), handler.GetManagedHotels)
	hotel.Get("/slug/:slug", handler.GetHotelBySlug)
	hotel.Get("/:hotelId", validate.GetById("hotelId"), handler.GetHotelById)
	hotel.Get("/:hotelId/rooms", validate.GetById("hotelId"), handler.GetRoomsByHotel)
	hotel.Get("/:hotelId/reviews", validate.GetById("hotelId"), handler.GetHotelReviews)
	hotel.Get("/:hotelId/bookings", middleware.Protected(), validate.GetById("hotelId"), handler.GetHotelBookings)
	hotel.Get("/:hotelId/statistics", middleware.Protected(), validate.GetById("hotelId"), handler.GetHotelStatistics)
	hotel.Get("/:hotelId/availability/stats", middleware.Protected(), validate.GetById("hotelId"), handler.GetAvailabilityStats)
	hotel.Post("/", middleware.Protected(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Put("/:hotelId", middleware.Protected(), validate.EditHotel("hotelId"), handler.UpdateHotel)
	hotel.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteHotels)

	room := v1.Group("/rooms", logger.New())
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Get("/:roomId/rate-plans", validate.GetById("roomId"), handler.GetRatePlans)
	room.Get("/:roomId/calendar", middleware.Protected(), validate.GetById("roomId"), handler.GetAvailabilityCalendar)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Post("/:roomId/rate-plans", middleware.Protected(), validate.CreateRatePlan("roomId"), handler.CreateRatePlan)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.UpdateRoom)

	availability := v1.Group("/availability", logger.New())
	availability.Get("/check", validate.CheckAvailability(), handler.CheckAvailability)
	availability.Put("/", middleware.Protected(), validate.UpdateAvailability(), handler.UpdateAvailability)
	availability.Put("/bulk", middleware.Protected(), validate.BulkAvailability(), handler.BulkUpdateAvailability)
	availability.Post("/block", middleware.Protected(), validate.BlockDates(), handler.BlockDates)

	booking := v1.Group("/bookings", logger.New())
	booking.Post("/quote", validate.CreateBooking(), handler.QuoteBooking)
	booking.Post("/", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	booking.Get("/my", middleware.Protected(), handler.GetMyBookings)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingById)
	booking.Get("/:bookingId/payments", middleware.Protected(), validate.GetById("bookingId"), handler.GetBookingPayments)
	booking.Put("/:bookingId", middleware.Protected(), validate.UpdateBooking("bookingId"), handler.UpdateBooking)
	booking.Post("/:bookingId/cancel", middleware.Protected(), validate.CancelBooking("bookingId"), handler.CancelBooking)
	booking.Patch("/:bookingId/status", middleware.Protected(), validate.UpdateBookingStatus("bookingId"), handler.UpdateBookingStatus)

	promotion := v1.Group("/promotions", logger.New())
	promotion.Get("/", handler.GetPromotions)
	promotion.Post("/validate", validate.ValidatePromotion(), handler.ValidatePromotion)
	promotion.Post("/", middleware.Protected(), validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:promotionId", middleware.Protected(), validate.UpdatePromotion("promotionId"), handler.UpdatePromotion)
	promotion.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePromotions)

	payment := v1.Group("/payments", logger.New())
	payment.Post("/", middleware.Protected(), handler.CreatePayment)
	payment.Post("/confirm", middleware.Protected(), handler.ConfirmPayment)
	payment.Get("/return", handler.PaymentReturn)
	payment.Post("/ipn", handler.PaymentIPN)

	review := v1.Group("/reviews", logger.New())
	review.Post("/", middleware.Protected(), validate.CreateReview(), handler.CreateReview)
	review.Patch("/:reviewId/approve", middleware.Protected(), validate.GetById("reviewId"), handler.ApproveReview)

	content := v1.Group("/contents", logger.New())
	content.Get("/", handler.GetContents)
	content.Get("/:slug", handler.GetContentBySlug)
	content.Post("/", middleware.Protected(), validate.CreateContent(), handler.CreateContent)
	content.Put("/:contentId", middleware.Protected(), validate.UpdateContent("contentId"), handler.UpdateContent)
	content.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteContents)

	// live availability feed, one channel per hotel
	v1.Get("/ws/hotels/:id/availability", websocket.New(handler.AvailabilityFeed))
}
