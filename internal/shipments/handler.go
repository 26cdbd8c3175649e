package shipments

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/logismart/logismart/internal/profile"
)

// Handler exposes shipment HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a shipment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	SenderName   string `json:"sender_name"`
	SenderCity   string `json:"sender_city"`
	ReceiverCity string `json:"receiver_city"`
	ReceiverPIN  string `json:"receiver_pin"`
	WeightKg     string `json:"weight_kg"`
	Service      string `json:"service"`
}

type shipmentResponse struct {
	ID          string    `json:"id"`
	Customer    string    `json:"customer"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Amount      string    `json:"amount"`
}

// Create books a shipment. Responds 201 with the shipment when the
// wallet covered the price, or 202 with a payment session when the
// caller must complete a gateway flow first.
func (h *Handler) Create(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	weight := decimal.Zero
	if req.WeightKg != "" {
		var err error
		weight, err = decimal.NewFromString(req.WeightKg)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid weight")
		}
	}

	result, err := h.service.Create(c.UserContext(), CreateInput{
		Owner:        owner,
		SenderName:   req.SenderName,
		SenderCity:   req.SenderCity,
		ReceiverCity: req.ReceiverCity,
		ReceiverPIN:  req.ReceiverPIN,
		WeightKg:     weight,
		Service:      req.Service,
	})
	if err != nil {
		if errors.Is(err, ErrUnknownService) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	if result.Payment != nil {
		return c.Status(http.StatusAccepted).JSON(fiber.Map{
			"payment_required": true,
			"price":            result.Price.StringFixed(2),
			"session_id":       result.Payment.ID(),
			"state":            result.Payment.State().String(),
		})
	}

	return c.Status(http.StatusCreated).JSON(toShipmentResponse(*result.Shipment))
}

// List returns shipments filtered by status and date prefix, paginated.
func (h *Handler) List(c *fiber.Ctx) error {
	owner, _ := c.Locals("profile_owner").(string)
	result, err := h.service.List(c.UserContext(), ListInput{
		Owner:   owner,
		Status:  c.Query("status"),
		Date:    c.Query("date"),
		Page:    c.QueryInt("page", 1),
		PerPage: c.QueryInt("per_page", defaultPageSize),
	})
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	items := make([]shipmentResponse, 0, len(result.Items))
	for _, sh := range result.Items {
		items = append(items, toShipmentResponse(sh))
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"shipments":   items,
		"total_items": result.TotalItems,
		"page":        result.Page,
		"total_pages": result.TotalPages,
	})
}

// Quote prices a booking without creating anything.
func (h *Handler) Quote(c *fiber.Ctx) error {
	weight := decimal.Zero
	if q := c.Query("weight_kg"); q != "" {
		var err error
		weight, err = decimal.NewFromString(q)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, "invalid weight")
		}
	}
	price, err := Quote(c.Query("service", ServiceStandard), weight)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"price": price.StringFixed(2), "currency": "INR"})
}

func toShipmentResponse(sh profile.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:          sh.ID,
		Customer:    sh.Customer,
		Origin:      sh.Origin,
		Destination: sh.Destination,
		Date:        sh.Date,
		Status:      sh.Status,
		Amount:      sh.Amount.StringFixed(2),
	}
}
