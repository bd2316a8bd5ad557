package handler

import (
	"net/http"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/pagination"
	"hospital-booking-api/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// GetNotifications supports ?patient_id=, ?doctor_id= and ?unread=true.
func (h *NotificationHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	patientID, ok := queryID(r, "patient_id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}
	doctorID, ok := queryID(r, "doctor_id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	filter := entity.NotificationFilter{
		PatientID:  patientID,
		DoctorID:   doctorID,
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}
	params := pagination.FromRequest(r)

	notifications, total, err := h.notificationUsecase.GetNotifications(r.Context(), filter, params)
	if err != nil {
		writeError(w, err, "Failed to get notifications")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notifications retrieved successfully", notifications, params.Meta(total))
}

func (h *NotificationHandler) MarkAsOpened(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid notification ID", nil)
		return
	}

	notification, err := h.notificationUsecase.MarkAsOpened(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to open notification")
		return
	}

	response.Success(w, http.StatusOK, "Notification opened", notification)
}
