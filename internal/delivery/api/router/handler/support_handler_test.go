package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"licensing/internal/domain/entity"
	mockUsecase "licensing/internal/mocks/usecase"
	"licensing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSupportHandler(t *testing.T) (*SupportHandler, *mockUsecase.MockTicketUsecase, *mockUsecase.MockReportUsecase) {
	ticketUC := mockUsecase.NewMockTicketUsecase(t)
	reportUC := mockUsecase.NewMockReportUsecase(t)

	return NewSupportHandler(SupportHandlerParams{TicketUC: ticketUC, ReportUC: reportUC, Logger: newDiscardLogger()}), ticketUC, reportUC
}

type formFile struct {
	name        string
	contentType string
	body        string
}

func multipartRequest(t *testing.T, target string, fields map[string]string, files []formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="attachments"; filename="`+f.name+`"`)
		header.Set(echo.HeaderContentType, f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	return req
}

func TestSupportHandler_CreateTicket_WithAttachments(t *testing.T) {
	h, ticketUC, _ := newSupportHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/tickets", h.CreateTicket)

	var received []string
	ticketUC.EXPECT().
		CreateTicket(mock.Anything, ownerPrincipal, mock.AnythingOfType("*usecase.CreateTicketInput")).
		RunAndReturn(func(_ context.Context, _ entity.Principal, in *usecase.CreateTicketInput) (*entity.Ticket, error) {
			assert.Equal(t, "Stall roof leaking", in.Subject)
			for _, f := range in.Files {
				body, err := io.ReadAll(f.Body)
				require.NoError(t, err)
				received = append(received, f.Filename+":"+f.ContentType+":"+string(body))
			}

			return &entity.Ticket{ID: uuid.New(), Subject: in.Subject, Status: entity.TicketStatusPending}, nil
		})

	req := multipartRequest(t, "/api/v1/tickets",
		map[string]string{"subject": "Stall roof leaking", "description": "Water on the goods"},
		[]formFile{
			{name: "roof.png", contentType: "image/png", body: "png-bytes"},
			{name: "notes.pdf", contentType: "application/pdf", body: "pdf-bytes"},
		})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"roof.png:image/png:png-bytes", "notes.pdf:application/pdf:pdf-bytes"}, received)
}

func TestSupportHandler_CreateTicket_FormWithoutFiles(t *testing.T) {
	h, ticketUC, _ := newSupportHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/tickets", h.CreateTicket)

	ticketUC.EXPECT().
		CreateTicket(mock.Anything, ownerPrincipal, mock.MatchedBy(func(in *usecase.CreateTicketInput) bool {
			return in.Subject == "Invoice question" && len(in.Files) == 0
		})).
		Return(&entity.Ticket{ID: uuid.New()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets", strings.NewReader("subject=Invoice+question&description=Charged+twice"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSupportHandler_CreateReport_InvalidReportedUser(t *testing.T) {
	h, _, _ := newSupportHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/reports", h.CreateReport)

	req := multipartRequest(t, "/api/v1/reports",
		map[string]string{"reportedUserId": "nobody", "subject": "Harassment", "description": "At the gate"}, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field=reportedUserId; rule=uuid", decodeEnvelope(t, rec).Error.Details)
}

func TestSupportHandler_CreateReport(t *testing.T) {
	h, _, reportUC := newSupportHandler(t)
	e := newTestEcho(&ownerPrincipal)
	e.POST("/api/v1/reports", h.CreateReport)
	reported := uuid.New()

	reportUC.EXPECT().
		CreateReport(mock.Anything, ownerPrincipal, mock.MatchedBy(func(in *usecase.CreateReportInput) bool {
			return in.ReportedUserID == reported && len(in.Files) == 1
		})).
		Return(&entity.UserReport{ID: uuid.New()}, nil)

	req := multipartRequest(t, "/api/v1/reports",
		map[string]string{"reportedUserId": reported.String(), "subject": "Harassment", "description": "At the gate"},
		[]formFile{{name: "photo.jpg", contentType: "image/jpeg", body: "jpg"}})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSupportHandler_UpdateTicketStatus(t *testing.T) {
	h, ticketUC, _ := newSupportHandler(t)
	e := newTestEcho(&supportPrincipal)
	e.PUT("/api/v1/tickets/:id/status", h.UpdateTicketStatus)
	ticketID := uuid.New()

	ticketUC.EXPECT().
		UpdateTicketStatus(mock.Anything, supportPrincipal, ticketID, &usecase.StatusUpdateInput{Status: "resolved", Comment: "Roof patched"}).
		Return(&entity.Ticket{ID: ticketID, Status: entity.TicketStatusResolved}, nil)

	rec := doJSON(e, http.MethodPut, "/api/v1/tickets/"+ticketID.String()+"/status", `{"status":"resolved","comment":"Roof patched"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSupportHandler_UnansweredCount(t *testing.T) {
	h, ticketUC, _ := newSupportHandler(t)
	e := newTestEcho(&adminPrincipal)
	e.GET("/api/v1/tickets/unanswered-count", h.UnansweredCount)

	ticketUC.EXPECT().UnansweredCount(mock.Anything, adminPrincipal).Return(int64(4), nil)

	rec := doJSON(e, http.MethodGet, "/api/v1/tickets/unanswered-count", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":4}`, string(decodeEnvelope(t, rec).Data))
}

func TestSupportHandler_ListTickets_BadStatus(t *testing.T) {
	h, _, _ := newSupportHandler(t)
	e := newTestEcho(&supportPrincipal)
	e.GET("/api/v1/tickets", h.ListTickets)

	rec := doJSON(e, http.MethodGet, "/api/v1/tickets?status=closed", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
