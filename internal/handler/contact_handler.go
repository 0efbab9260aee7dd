package handler

import (
	"net/http"
	"strconv"
	"time"

	"indiepulse/backend/internal/database"
	"indiepulse/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MailSender delivers the admin's reply to the submitter. main wires the
// SMTP implementation; tests inject a fake.
type MailSender interface {
	Send(to, subject, body string) error
}

// Mail is the outbound mail transport for contact replies. When nil,
// replying is rejected rather than silently marking messages responded.
var Mail MailSender

// region --- DTOs ---

// ContactInput defines the structure for a contact form submission.
type ContactInput struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Message string `json:"message" binding:"required" example:"The price chart looks off."`
}

// ReplyInput defines the structure for an admin reply.
type ReplyInput struct {
	Response string `json:"response" binding:"required" example:"Thanks, fixed in the latest load."`
}

// ContactMessageResponse defines the structure for a contact message as seen by admins.
type ContactMessageResponse struct {
	ID          uint       `json:"id"`
	Reference   string     `json:"reference"`
	UserID      *uint      `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Message     string     `json:"message"`
	Response    string     `json:"response,omitempty"`
	Responded   bool       `json:"responded"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func newContactMessageResponse(m models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          m.ID,
		Reference:   m.Reference,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		Name:        m.Name,
		Email:       m.Email,
		Message:     m.Message,
		Response:    m.Response,
		Responded:   m.Responded,
		RespondedAt: m.RespondedAt,
	}
}

// endregion

// SubmitContact godoc
// @Summary      Submit a contact message
// @Description  Stores a contact form submission and returns its public reference.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        input body ContactInput true "Contact Info"
// @Success      201  {object}  map[string]string "{"reference": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /contact [post]
func SubmitContact(c *gin.Context) {
	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.ContactMessage{
		Reference: uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Message:   input.Message,
	}
	// Link the message to the submitter's account when they were logged in.
	if v, exists := c.Get("userID"); exists {
		userID := v.(uint)
		msg.UserID = &userID
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reference": msg.Reference})
}

// ListContactMessages godoc
// @Summary      List contact messages
// @Description  Retrieves contact messages with pagination, newest first.
// @Tags         admin-contact
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number" default(1)
// @Param        limit query     int  false  "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[ContactMessageResponse]
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Router       /admin/messages [get]
func ListContactMessages(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	result, err := Paginate[models.ContactMessage](database.DB.Order("created_at DESC"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	responses := make([]ContactMessageResponse, len(result.Data))
	for i, m := range result.Data {
		responses[i] = newContactMessageResponse(m)
	}
	c.JSON(http.StatusOK, PaginatedResponse[ContactMessageResponse]{
		Data: responses,
		Meta: result.Meta,
	})
}

// GetContactMessage godoc
// @Summary      Get a contact message
// @Description  Retrieves a single contact message by ID.
// @Tags         admin-contact
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  ContactMessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Message not found"
// @Router       /admin/messages/{id} [get]
func GetContactMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, newContactMessageResponse(msg))
}

// ReplyContactMessage godoc
// @Summary      Reply to a contact message
// @Description  Emails the stored reply to the submitter and marks the message responded. A message can only be replied to once.
// @Tags         admin-contact
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Message ID"
// @Param        input body      ReplyInput true  "Reply"
// @Success      200  {object}  ContactMessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Admin access required"
// @Failure      404  {object}  ErrorResponse "Message not found"
// @Failure      409  {object}  ErrorResponse "Already responded"
// @Failure      502  {object}  ErrorResponse "Mail delivery failed"
// @Router       /admin/messages/{id}/reply [post]
func ReplyContactMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var input ReplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var msg models.ContactMessage
	if err := database.DB.First(&msg, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	if msg.Responded {
		c.JSON(http.StatusConflict, gin.H{"error": "Message already responded to"})
		return
	}
	if Mail == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Mail delivery is not configured"})
		return
	}

	// The message is only marked responded once the mail actually went out.
	if err := Mail.Send(msg.Email, "Reply to your message", input.Response); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send reply email"})
		return
	}

	now := time.Now()
	msg.Response = input.Response
	msg.Responded = true
	msg.RespondedAt = &now
	if err := database.DB.Save(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reply"})
		return
	}

	c.JSON(http.StatusOK, newContactMessageResponse(msg))
}
